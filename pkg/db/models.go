package db

import (
	"time"

	"github.com/openrota/weekshift/pkg/core/model"
)

// Employee is one member of the user directory. The directory owns the
// employee record; this system only appends to and mutates the blocked-dates
// list and reads the username and email.
type Employee struct {
	ID          string
	Username    string
	Email       string
	Admin       bool
	MemberSince time.Time

	// BlockedDates is the employee's owned list of block-date requests,
	// loaded together with the record.
	BlockedDates []BlockDateRequest
}

// BlockDateRequest is one employee's claim that a specific calendar date is
// unavailable. Date is kept in its submitted "dd-mm-yyyy" string form and
// duplicates are detected by exact string equality.
type BlockDateRequest struct {
	ID         string
	Date       string
	Comment    string
	Approved   bool
	ApprovedBy string
}

// Shift is one persisted schedule version. Versions are append-only: every
// publish or import creates a new row and nothing mutates an existing one.
// ID is store-assigned and monotonic, so the latest shift is the one with
// the highest ID regardless of its anchor date.
type Shift struct {
	ID        int64
	Name      string
	Data      model.Schedule
	SavedBy   string
	Date      time.Time
	CreatedAt time.Time
}
