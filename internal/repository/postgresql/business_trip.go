package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/trip"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const businessTripColumns = `id, employee_id, start_date, end_date, destination, status, reason,
		reviewed_by, reviewed_at, created_at, updated_at`

type businessTripRepositoryImpl struct {
	db *database.DB
}

func NewBusinessTripRepository(db *database.DB) trip.BusinessTripRepository {
	return &businessTripRepositoryImpl{db: db}
}

func scanBusinessTrip(row pgx.Row) (trip.BusinessTrip, error) {
	var t trip.BusinessTrip
	err := row.Scan(
		&t.ID, &t.EmployeeID, &t.StartDate, &t.EndDate, &t.Destination, &t.Status, &t.Reason,
		&t.ReviewedBy, &t.ReviewedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// Create implements trip.BusinessTripRepository.
func (r *businessTripRepositoryImpl) Create(ctx context.Context, t trip.BusinessTrip) (trip.BusinessTrip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO business_trips (id, employee_id, start_date, end_date, destination, status, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + businessTripColumns

	created, err := scanBusinessTrip(q.QueryRow(ctx, query,
		newID(), t.EmployeeID, t.StartDate, t.EndDate, t.Destination, t.Status, t.Reason,
	))
	if err != nil {
		return trip.BusinessTrip{}, fmt.Errorf("failed to create business trip: %w", err)
	}
	return created, nil
}

// GetByID implements trip.BusinessTripRepository.
func (r *businessTripRepositoryImpl) GetByID(ctx context.Context, id string) (trip.BusinessTrip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + businessTripColumns + ` FROM business_trips WHERE id = $1`

	t, err := scanBusinessTrip(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return trip.BusinessTrip{}, trip.ErrBusinessTripNotFound
		}
		return trip.BusinessTrip{}, fmt.Errorf("failed to get business trip with id %s: %w", id, err)
	}
	return t, nil
}

// List implements trip.BusinessTripRepository.
func (r *businessTripRepositoryImpl) List(ctx context.Context, filter trip.ListFilter) ([]trip.BusinessTrip, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.EmployeeID != nil {
		whereClause += fmt.Sprintf(" AND employee_id = $%d", argIndex)
		args = append(args, *filter.EmployeeID)
		argIndex++
	}
	if filter.Status != nil {
		whereClause += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, *filter.Status)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM business_trips
		%s
		ORDER BY start_date, created_at
	`, businessTripColumns, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list business trips: %w", err)
	}
	defer rows.Close()

	var trips []trip.BusinessTrip
	for rows.Next() {
		t, err := scanBusinessTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business trip: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate business trips: %w", err)
	}

	return trips, nil
}

// UpdateStatus implements trip.BusinessTripRepository.
func (r *businessTripRepositoryImpl) UpdateStatus(ctx context.Context, id string, status trip.Status, reviewedBy *string) (trip.BusinessTrip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE business_trips
		SET status = $1, reviewed_by = $2, reviewed_at = NOW(), updated_at = NOW()
		WHERE id = $3
		RETURNING ` + businessTripColumns

	t, err := scanBusinessTrip(q.QueryRow(ctx, query, status, reviewedBy, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return trip.BusinessTrip{}, trip.ErrBusinessTripNotFound
		}
		return trip.BusinessTrip{}, fmt.Errorf("failed to update business trip with id %s: %w", id, err)
	}
	return t, nil
}

// Delete implements trip.BusinessTripRepository.
func (r *businessTripRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM business_trips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete business trip with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return trip.ErrBusinessTripNotFound
	}
	return nil
}
