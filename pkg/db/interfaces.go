package db

import "context"

// EmployeeDirectory defines the user-directory operations this system
// consumes: lookups, the minimal projection used for attendee resolution,
// and directory management.
type EmployeeDirectory interface {
	GetEmployeeByID(ctx context.Context, id string) (*Employee, error)
	GetEmployeeByUsername(ctx context.Context, username string) (*Employee, error)
	GetEmployeeByEmail(ctx context.Context, email string) (*Employee, error)
	ListEmployees(ctx context.Context) ([]Employee, error)
	InsertEmployee(ctx context.Context, employee *Employee) error
	UpdateEmployee(ctx context.Context, employee *Employee) error
	DeleteEmployee(ctx context.Context, id string) error
}

// BlockRequestStore defines the operations on an employee's owned list of
// block-date requests.
type BlockRequestStore interface {
	AppendBlockRequest(ctx context.Context, employeeID string, request BlockDateRequest) error
	SetBlockRequestApproval(ctx context.Context, employeeID, requestID string, approved bool, approvedBy string) error
	RemoveBlockRequest(ctx context.Context, employeeID, requestID string) error
}

// ShiftStore defines the versioned persistence for published schedules.
// GetLatestShift returns (nil, nil) when no shift has ever been saved.
type ShiftStore interface {
	InsertShift(ctx context.Context, shift *Shift) error
	GetLatestShift(ctx context.Context) (*Shift, error)
	ListShifts(ctx context.Context) ([]Shift, error)
	DeleteShift(ctx context.Context, id int64) error
}
