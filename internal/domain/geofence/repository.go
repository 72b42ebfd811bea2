package geofence

import "context"

type ConfigRepository interface {
	// Get returns the geofence configuration or ErrGeofenceNotFound.
	Get(ctx context.Context) (Config, error)
	Upsert(ctx context.Context, cfg Config) (Config, error)
}
