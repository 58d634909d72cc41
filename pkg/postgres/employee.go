package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/openrota/weekshift/pkg/db"
)

// GetEmployeeByID retrieves one employee with their block-date requests.
// Returns (nil, nil) when no employee has that id.
func (d *DB) GetEmployeeByID(ctx context.Context, id string) (*db.Employee, error) {
	return d.getEmployee(ctx, `WHERE id = $1`, id)
}

// GetEmployeeByUsername retrieves one employee with their block-date
// requests. Returns (nil, nil) when the username is unknown.
func (d *DB) GetEmployeeByUsername(ctx context.Context, username string) (*db.Employee, error) {
	return d.getEmployee(ctx, `WHERE username = $1`, username)
}

// GetEmployeeByEmail retrieves one employee by email. Returns (nil, nil)
// when the email is unknown.
func (d *DB) GetEmployeeByEmail(ctx context.Context, email string) (*db.Employee, error) {
	return d.getEmployee(ctx, `WHERE email = $1`, email)
}

func (d *DB) getEmployee(ctx context.Context, where string, arg any) (*db.Employee, error) {
	var e db.Employee
	err := d.pool.QueryRow(ctx, `
		SELECT id, username, COALESCE(email, ''), admin, member_since
		FROM employee `+where,
		arg,
	).Scan(&e.ID, &e.Username, &e.Email, &e.Admin, &e.MemberSince)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query employee: %w", err)
	}

	e.BlockedDates, err = d.blockRequestsFor(ctx, e.ID)
	if err != nil {
		return nil, err
	}

	return &e, nil
}

// ListEmployees retrieves every employee with their block-date requests.
func (d *DB) ListEmployees(ctx context.Context) ([]db.Employee, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, username, COALESCE(email, ''), admin, member_since
		FROM employee
		ORDER BY username
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []db.Employee
	index := make(map[string]int)
	for rows.Next() {
		var e db.Employee
		if err := rows.Scan(&e.ID, &e.Username, &e.Email, &e.Admin, &e.MemberSince); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		e.BlockedDates = []db.BlockDateRequest{}
		index[e.ID] = len(employees)
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	reqRows, err := d.pool.Query(ctx, `
		SELECT employee_id, id, block_date, comment, approved, approved_by
		FROM block_date_request
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query block requests: %w", err)
	}
	defer reqRows.Close()

	for reqRows.Next() {
		var employeeID string
		var r db.BlockDateRequest
		if err := reqRows.Scan(&employeeID, &r.ID, &r.Date, &r.Comment, &r.Approved, &r.ApprovedBy); err != nil {
			return nil, fmt.Errorf("failed to scan block request: %w", err)
		}
		if i, ok := index[employeeID]; ok {
			employees[i].BlockedDates = append(employees[i].BlockedDates, r)
		}
	}
	if err := reqRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating block requests: %w", err)
	}

	return employees, nil
}

// InsertEmployee inserts a new directory record. An empty email is stored as
// NULL so the unique constraint only applies to real addresses.
func (d *DB) InsertEmployee(ctx context.Context, employee *db.Employee) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO employee (id, username, email, admin, member_since)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
	`, employee.ID, employee.Username, employee.Email, employee.Admin, employee.MemberSince)
	if err != nil {
		return fmt.Errorf("failed to insert employee: %w", err)
	}
	return nil
}

// UpdateEmployee updates the mutable directory fields of one employee.
func (d *DB) UpdateEmployee(ctx context.Context, employee *db.Employee) error {
	_, err := d.pool.Exec(ctx, `
		UPDATE employee
		SET username = $2, email = NULLIF($3, ''), admin = $4
		WHERE id = $1
	`, employee.ID, employee.Username, employee.Email, employee.Admin)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

// DeleteEmployee removes one employee and, via cascade, their block-date
// requests. Deleting an unknown id is not an error.
func (d *DB) DeleteEmployee(ctx context.Context, id string) error {
	_, err := d.pool.Exec(ctx, `DELETE FROM employee WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
