package postgres

import (
	"context"
	"fmt"

	"github.com/openrota/weekshift/pkg/db"
)

func (d *DB) blockRequestsFor(ctx context.Context, employeeID string) ([]db.BlockDateRequest, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, block_date, comment, approved, approved_by
		FROM block_date_request
		WHERE employee_id = $1
		ORDER BY created_at
	`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query block requests: %w", err)
	}
	defer rows.Close()

	requests := []db.BlockDateRequest{}
	for rows.Next() {
		var r db.BlockDateRequest
		if err := rows.Scan(&r.ID, &r.Date, &r.Comment, &r.Approved, &r.ApprovedBy); err != nil {
			return nil, fmt.Errorf("failed to scan block request: %w", err)
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating block requests: %w", err)
	}

	return requests, nil
}

// AppendBlockRequest adds one request to an employee's blocked-dates list.
func (d *DB) AppendBlockRequest(ctx context.Context, employeeID string, request db.BlockDateRequest) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO block_date_request (id, employee_id, block_date, comment, approved, approved_by)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, request.ID, employeeID, request.Date, request.Comment, request.Approved, request.ApprovedBy)
	if err != nil {
		return fmt.Errorf("failed to insert block request: %w", err)
	}
	return nil
}

// SetBlockRequestApproval writes the approval state of one request.
func (d *DB) SetBlockRequestApproval(ctx context.Context, employeeID, requestID string, approved bool, approvedBy string) error {
	_, err := d.pool.Exec(ctx, `
		UPDATE block_date_request
		SET approved = $3, approved_by = $4
		WHERE id = $2 AND employee_id = $1
	`, employeeID, requestID, approved, approvedBy)
	if err != nil {
		return fmt.Errorf("failed to update block request approval: %w", err)
	}
	return nil
}

// RemoveBlockRequest deletes one request from an employee's list. Removing
// an unknown id is not an error.
func (d *DB) RemoveBlockRequest(ctx context.Context, employeeID, requestID string) error {
	_, err := d.pool.Exec(ctx, `
		DELETE FROM block_date_request
		WHERE id = $2 AND employee_id = $1
	`, employeeID, requestID)
	if err != nil {
		return fmt.Errorf("failed to delete block request: %w", err)
	}
	return nil
}
