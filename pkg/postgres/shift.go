package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/openrota/weekshift/pkg/core/model"
	"github.com/openrota/weekshift/pkg/db"
)

// InsertShift persists a new schedule version and fills in the store-assigned
// id and creation timestamp. A single INSERT either fully applies or not at
// all; a failed save never leaves a partial row.
func (d *DB) InsertShift(ctx context.Context, shift *db.Shift) error {
	data, err := json.Marshal(shift.Data)
	if err != nil {
		return fmt.Errorf("failed to encode schedule: %w", err)
	}

	err = d.pool.QueryRow(ctx, `
		INSERT INTO shift (name, saved_by, anchor_date, data)
		VALUES ($1, $2, $3, $4::jsonb)
		RETURNING id, created_at
	`, shift.Name, shift.SavedBy, shift.Date, string(data)).Scan(&shift.ID, &shift.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert shift: %w", err)
	}

	return nil
}

// GetLatestShift returns the most recently created shift, by store-assigned
// id rather than anchor date, so a backfilled past-dated import saved last
// is still the latest. Returns (nil, nil) when the store is empty.
func (d *DB) GetLatestShift(ctx context.Context) (*db.Shift, error) {
	shift, err := d.scanShift(d.pool.QueryRow(ctx, `
		SELECT id, name, saved_by, anchor_date, data, created_at
		FROM shift
		ORDER BY id DESC
		LIMIT 1
	`))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest shift: %w", err)
	}
	return shift, nil
}

// ListShifts returns every saved schedule version.
func (d *DB) ListShifts(ctx context.Context) ([]db.Shift, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, saved_by, anchor_date, data, created_at
		FROM shift
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []db.Shift
	for rows.Next() {
		shift, err := d.scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, *shift)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shifts: %w", err)
	}

	return shifts, nil
}

// DeleteShift removes one schedule version. Deleting an unknown id is not an
// error.
func (d *DB) DeleteShift(ctx context.Context, id int64) error {
	_, err := d.pool.Exec(ctx, `DELETE FROM shift WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

func (d *DB) scanShift(row pgx.Row) (*db.Shift, error) {
	var s db.Shift
	var data []byte
	if err := row.Scan(&s.ID, &s.Name, &s.SavedBy, &s.Date, &data, &s.CreatedAt); err != nil {
		return nil, err
	}

	var schedule model.Schedule
	if err := json.Unmarshal(data, &schedule); err != nil {
		return nil, fmt.Errorf("failed to decode schedule: %w", err)
	}
	s.Data = schedule

	return &s, nil
}
