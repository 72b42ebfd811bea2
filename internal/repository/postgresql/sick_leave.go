package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/sickleave"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const sickLeaveColumns = `id, employee_id, start_date, end_date, reference_code, notes, created_by, created_at`

type sickLeaveRepositoryImpl struct {
	db *database.DB
}

func NewSickLeaveRepository(db *database.DB) sickleave.SickLeaveRepository {
	return &sickLeaveRepositoryImpl{db: db}
}

func scanSickLeave(row pgx.Row) (sickleave.SickLeave, error) {
	var s sickleave.SickLeave
	err := row.Scan(&s.ID, &s.EmployeeID, &s.StartDate, &s.EndDate, &s.ReferenceCode, &s.Notes, &s.CreatedBy, &s.CreatedAt)
	return s, err
}

// Create implements sickleave.SickLeaveRepository.
func (r *sickLeaveRepositoryImpl) Create(ctx context.Context, s sickleave.SickLeave) (sickleave.SickLeave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sick_leaves (id, employee_id, start_date, end_date, reference_code, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + sickLeaveColumns

	created, err := scanSickLeave(q.QueryRow(ctx, query,
		newID(), s.EmployeeID, s.StartDate, s.EndDate, s.ReferenceCode, s.Notes, s.CreatedBy,
	))
	if err != nil {
		if err := translatePgError(err, sickleave.ErrDuplicateSickLeave); errors.Is(err, sickleave.ErrDuplicateSickLeave) {
			return sickleave.SickLeave{}, err
		}
		return sickleave.SickLeave{}, fmt.Errorf("failed to create sick leave: %w", err)
	}
	return created, nil
}

// GetByID implements sickleave.SickLeaveRepository.
func (r *sickLeaveRepositoryImpl) GetByID(ctx context.Context, id string) (sickleave.SickLeave, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanSickLeave(q.QueryRow(ctx, `SELECT `+sickLeaveColumns+` FROM sick_leaves WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sickleave.SickLeave{}, sickleave.ErrSickLeaveNotFound
		}
		return sickleave.SickLeave{}, fmt.Errorf("failed to get sick leave with id %s: %w", id, err)
	}
	return s, nil
}

// ListByEmployee implements sickleave.SickLeaveRepository.
func (r *sickLeaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]sickleave.SickLeave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sickLeaveColumns + `
		FROM sick_leaves
		WHERE employee_id = $1
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sick leaves: %w", err)
	}
	defer rows.Close()

	var leaves []sickleave.SickLeave
	for rows.Next() {
		s, err := scanSickLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sick leave: %w", err)
		}
		leaves = append(leaves, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sick leaves: %w", err)
	}

	return leaves, nil
}

// Delete implements sickleave.SickLeaveRepository.
func (r *sickLeaveRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM sick_leaves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sick leave with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return sickleave.ErrSickLeaveNotFound
	}
	return nil
}
