package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/boxtrack/internal/model"
)

// CreateBox provisions a box with an initial status.
func (s *Store) CreateBox(ctx context.Context, size string, num int64, status string) (*model.Box, error) {
	if size == "" {
		return nil, fmt.Errorf("box size required")
	}
	if status == "" {
		status = model.StatusAway
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM boxes WHERE box_size = ? AND box_num = ?`, size, num,
	).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("checking box: %w", err)
	}
	if count > 0 {
		return nil, ErrBoxExists
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO boxes (box_size, box_num, status) VALUES (?, ?, ?)`,
		size, num, status,
	); err != nil {
		return nil, fmt.Errorf("creating box: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing box: %w", err)
	}
	return &model.Box{Size: size, Number: num, Status: status}, nil
}

// GetBox returns a box or ErrBoxNotFound.
func (s *Store) GetBox(ctx context.Context, size string, num int64) (*model.Box, error) {
	b := &model.Box{}
	err := s.DB.QueryRowContext(ctx,
		`SELECT box_size, box_num, status FROM boxes WHERE box_size = ? AND box_num = ?`,
		size, num,
	).Scan(&b.Size, &b.Number, &b.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBoxNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting box: %w", err)
	}
	return b, nil
}

// GetStatus returns the current status of a box.
func (s *Store) GetStatus(ctx context.Context, size string, num int64) (string, error) {
	b, err := s.GetBox(ctx, size, num)
	if err != nil {
		return "", err
	}
	return b.Status, nil
}

// IsAway reports whether the box is checked out.
func (s *Store) IsAway(ctx context.Context, size string, num int64) (bool, error) {
	status, err := s.GetStatus(ctx, size, num)
	if err != nil {
		return false, err
	}
	return model.IsAway(status), nil
}

// ListBoxes returns all boxes ordered by size and number.
func (s *Store) ListBoxes(ctx context.Context) ([]model.Box, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT box_size, box_num, status FROM boxes ORDER BY box_size, box_num`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing boxes: %w", err)
	}
	defer rows.Close()

	var boxes []model.Box
	for rows.Next() {
		var b model.Box
		if err := rows.Scan(&b.Size, &b.Number, &b.Status); err != nil {
			return nil, fmt.Errorf("scanning box: %w", err)
		}
		boxes = append(boxes, b)
	}
	return boxes, rows.Err()
}
