package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openrota/weekshift/pkg/db"
)

// EmployeeOutcome is the expected business result of a directory operation.
type EmployeeOutcome string

const (
	EmployeeRegistered    EmployeeOutcome = "Registered"
	EmployeeUpdated       EmployeeOutcome = "Updated"
	EmployeeUsernameEmpty EmployeeOutcome = "UsernameIsEmpty"
	// Registration and update report uniqueness clashes under distinct
	// labels; clients key off the exact strings.
	EmployeeUserExists    EmployeeOutcome = "UserAlreadyExists"
	EmployeeEmailExists   EmployeeOutcome = "EmailAlreadyExists"
	EmployeeUsernameTaken EmployeeOutcome = "UsernameTaken"
	EmployeeEmailTaken    EmployeeOutcome = "EmailTaken"
)

// DirectoryStore defines the database operations for managing the employee
// directory.
type DirectoryStore interface {
	GetEmployeeByID(ctx context.Context, id string) (*db.Employee, error)
	GetEmployeeByUsername(ctx context.Context, username string) (*db.Employee, error)
	GetEmployeeByEmail(ctx context.Context, email string) (*db.Employee, error)
	ListEmployees(ctx context.Context) ([]db.Employee, error)
	InsertEmployee(ctx context.Context, employee *db.Employee) error
	UpdateEmployee(ctx context.Context, employee *db.Employee) error
	DeleteEmployee(ctx context.Context, id string) error
}

// RegisterEmployee creates a new directory record after checking username
// and email uniqueness. Taken names are outcomes, not errors.
func RegisterEmployee(ctx context.Context, store DirectoryStore, logger *zap.Logger, username, email string, admin bool) (EmployeeOutcome, *db.Employee, error) {
	if username == "" {
		return EmployeeUsernameEmpty, nil, nil
	}

	existing, err := store.GetEmployeeByUsername(ctx, username)
	if err != nil {
		return "", nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return EmployeeUserExists, nil, nil
	}

	if email != "" {
		existing, err = store.GetEmployeeByEmail(ctx, email)
		if err != nil {
			return "", nil, fmt.Errorf("failed to check email: %w", err)
		}
		if existing != nil {
			return EmployeeEmailExists, nil, nil
		}
	}

	employee := &db.Employee{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		Admin:        admin,
		MemberSince:  time.Now(),
		BlockedDates: []db.BlockDateRequest{},
	}
	if err := store.InsertEmployee(ctx, employee); err != nil {
		return "", nil, fmt.Errorf("failed to insert employee: %w", err)
	}

	logger.Info("Employee registered",
		zap.String("username", username),
		zap.Bool("admin", admin))

	return EmployeeRegistered, employee, nil
}

// UpdateEmployeeInput carries the directory fields an administrator may
// change.
type UpdateEmployeeInput struct {
	ID       string
	Username string
	Email    string
}

// UpdateEmployee changes an employee's username or email, enforcing the same
// uniqueness rules as registration. An empty username is rejected as an
// outcome rather than applied.
func UpdateEmployee(ctx context.Context, store DirectoryStore, logger *zap.Logger, input UpdateEmployeeInput) (EmployeeOutcome, error) {
	if input.Username == "" {
		return EmployeeUsernameEmpty, nil
	}

	employee, err := store.GetEmployeeByID(ctx, input.ID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch employee: %w", err)
	}
	if employee == nil {
		return "", ErrEmployeeNotFound
	}

	byUsername, err := store.GetEmployeeByUsername(ctx, input.Username)
	if err != nil {
		return "", fmt.Errorf("failed to check username: %w", err)
	}
	if byUsername != nil && byUsername.ID != input.ID {
		return EmployeeUsernameTaken, nil
	}

	if input.Email != "" {
		byEmail, err := store.GetEmployeeByEmail(ctx, input.Email)
		if err != nil {
			return "", fmt.Errorf("failed to check email: %w", err)
		}
		if byEmail != nil && byEmail.ID != input.ID {
			return EmployeeEmailTaken, nil
		}
	}

	employee.Username = input.Username
	employee.Email = input.Email
	if err := store.UpdateEmployee(ctx, employee); err != nil {
		return "", fmt.Errorf("failed to update employee: %w", err)
	}

	logger.Info("Employee updated",
		zap.String("employee_id", input.ID),
		zap.String("username", input.Username))

	return EmployeeUpdated, nil
}

// RemoveEmployee deletes a directory record together with its block
// requests. Removing an unknown id is not an error.
func RemoveEmployee(ctx context.Context, store DirectoryStore, logger *zap.Logger, id string) error {
	if err := store.DeleteEmployee(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	logger.Info("Employee removed", zap.String("employee_id", id))
	return nil
}

// ListDirectory returns every employee with their block requests.
func ListDirectory(ctx context.Context, store DirectoryStore) ([]db.Employee, error) {
	employees, err := store.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}
