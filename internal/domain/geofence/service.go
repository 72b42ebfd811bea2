package geofence

import "context"

type GeofenceService interface {
	GetGeofence(ctx context.Context) (ConfigResponse, error)
	UpdateGeofence(ctx context.Context, req UpdateConfigRequest) (ConfigResponse, error)
}
