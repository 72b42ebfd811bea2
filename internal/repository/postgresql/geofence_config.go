package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/geofence"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type geofenceConfigRepositoryImpl struct {
	db *database.DB
}

func NewGeofenceConfigRepository(db *database.DB) geofence.ConfigRepository {
	return &geofenceConfigRepositoryImpl{db: db}
}

// Get implements geofence.ConfigRepository.
func (r *geofenceConfigRepositoryImpl) Get(ctx context.Context) (geofence.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT latitude, longitude, radius_meters, checkout_enabled, updated_at
		FROM geofence_configs
		WHERE singleton
	`

	var cfg geofence.Config
	err := q.QueryRow(ctx, query).Scan(&cfg.Latitude, &cfg.Longitude, &cfg.RadiusMeters, &cfg.CheckoutEnabled, &cfg.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return geofence.Config{}, geofence.ErrGeofenceNotFound
		}
		return geofence.Config{}, fmt.Errorf("failed to get geofence config: %w", err)
	}
	return cfg, nil
}

// Upsert implements geofence.ConfigRepository.
func (r *geofenceConfigRepositoryImpl) Upsert(ctx context.Context, cfg geofence.Config) (geofence.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO geofence_configs (singleton, latitude, longitude, radius_meters, checkout_enabled)
		VALUES (TRUE, $1, $2, $3, $4)
		ON CONFLICT (singleton) DO UPDATE SET
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			radius_meters = EXCLUDED.radius_meters,
			checkout_enabled = EXCLUDED.checkout_enabled,
			updated_at = NOW()
		RETURNING latitude, longitude, radius_meters, checkout_enabled, updated_at
	`

	var saved geofence.Config
	err := q.QueryRow(ctx, query, cfg.Latitude, cfg.Longitude, cfg.Radius(), cfg.CheckoutEnabled).Scan(
		&saved.Latitude, &saved.Longitude, &saved.RadiusMeters, &saved.CheckoutEnabled, &saved.UpdatedAt,
	)
	if err != nil {
		return geofence.Config{}, fmt.Errorf("failed to save geofence config: %w", err)
	}
	return saved, nil
}
