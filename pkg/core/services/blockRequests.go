package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openrota/weekshift/pkg/db"
)

// BlockRequestOutcome is the expected business result of a block-request
// operation. Outcomes are normal responses the caller must handle, not
// failures.
type BlockRequestOutcome string

const (
	BlockRequestCreated   BlockRequestOutcome = "Created"
	BlockRequestDuplicate BlockRequestOutcome = "DuplicateRequest"
)

var (
	// ErrEmployeeNotFound reports that the named employee does not exist in
	// the directory.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrRequestNotFound reports that a single-entity operation targeted a
	// block request that does not exist. Unlike batch ingestion, targeted
	// operations fail loudly instead of skipping.
	ErrRequestNotFound = errors.New("block request not found")
)

// BlockRequestStore defines the database operations the block-request
// lifecycle needs.
type BlockRequestStore interface {
	GetEmployeeByID(ctx context.Context, id string) (*db.Employee, error)
	GetEmployeeByUsername(ctx context.Context, username string) (*db.Employee, error)
	AppendBlockRequest(ctx context.Context, employeeID string, request db.BlockDateRequest) error
	SetBlockRequestApproval(ctx context.Context, employeeID, requestID string, approved bool, approvedBy string) error
	RemoveBlockRequest(ctx context.Context, employeeID, requestID string) error
}

// CreateBlockRequest records that an employee is unavailable on a date. At
// most one request may exist per (employee, date); the date is compared by
// exact string equality, so "01-01-2024" and "1-1-2024" are distinct dates.
func CreateBlockRequest(ctx context.Context, store BlockRequestStore, logger *zap.Logger, username, date, comment string) (BlockRequestOutcome, error) {
	employee, err := store.GetEmployeeByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to fetch employee: %w", err)
	}
	if employee == nil {
		return "", ErrEmployeeNotFound
	}

	for _, existing := range employee.BlockedDates {
		if existing.Date == date {
			logger.Info("Duplicate block request rejected",
				zap.String("username", username),
				zap.String("date", date))
			return BlockRequestDuplicate, nil
		}
	}

	request := db.BlockDateRequest{
		ID:      uuid.New().String(),
		Date:    date,
		Comment: comment,
	}

	if err := store.AppendBlockRequest(ctx, employee.ID, request); err != nil {
		return "", fmt.Errorf("failed to append block request: %w", err)
	}

	logger.Info("Block request created",
		zap.String("username", username),
		zap.String("date", date),
		zap.String("request_id", request.ID))

	return BlockRequestCreated, nil
}

// GetBlockRequest retrieves one of an employee's block requests by id.
func GetBlockRequest(ctx context.Context, store BlockRequestStore, employeeID, requestID string) (*db.BlockDateRequest, error) {
	employee, err := store.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee: %w", err)
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	for i := range employee.BlockedDates {
		if employee.BlockedDates[i].ID == requestID {
			return &employee.BlockedDates[i], nil
		}
	}

	return nil, ErrRequestNotFound
}

// ToggleResult reports the new approval state of a toggled request and the
// employee it belongs to.
type ToggleResult struct {
	Approved bool
	Username string
}

// ToggleBlockApproval flips the approval state of one block request. Turning
// approval on records the acting administrator; turning it off clears the
// approver. The read-then-write is not atomic with respect to other
// concurrent toggles on the same request; last write wins, which this
// human-paced workflow accepts.
func ToggleBlockApproval(ctx context.Context, store BlockRequestStore, logger *zap.Logger, employeeID, requestID, adminUsername string) (*ToggleResult, error) {
	employee, err := store.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee: %w", err)
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	var current *db.BlockDateRequest
	for i := range employee.BlockedDates {
		if employee.BlockedDates[i].ID == requestID {
			current = &employee.BlockedDates[i]
			break
		}
	}
	if current == nil {
		return nil, ErrRequestNotFound
	}

	approved := !current.Approved
	approvedBy := ""
	if approved {
		approvedBy = adminUsername
	}

	if err := store.SetBlockRequestApproval(ctx, employeeID, requestID, approved, approvedBy); err != nil {
		return nil, fmt.Errorf("failed to update approval: %w", err)
	}

	logger.Info("Block request approval toggled",
		zap.String("username", employee.Username),
		zap.String("request_id", requestID),
		zap.Bool("approved", approved),
		zap.String("approved_by", approvedBy))

	return &ToggleResult{Approved: approved, Username: employee.Username}, nil
}

// DeleteBlockRequest removes one block request unconditionally, in any
// approval state. Deleting a request that no longer exists is not an error.
func DeleteBlockRequest(ctx context.Context, store BlockRequestStore, logger *zap.Logger, employeeID, requestID string) error {
	if err := store.RemoveBlockRequest(ctx, employeeID, requestID); err != nil {
		return fmt.Errorf("failed to remove block request: %w", err)
	}

	logger.Info("Block request deleted",
		zap.String("employee_id", employeeID),
		zap.String("request_id", requestID))

	return nil
}
