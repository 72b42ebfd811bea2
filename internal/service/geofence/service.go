package geofence

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/conflict"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/geofence"
)

type geofenceServiceImpl struct {
	configRepo geofence.ConfigRepository
}

func NewGeofenceService(configRepo geofence.ConfigRepository) geofence.GeofenceService {
	return &geofenceServiceImpl{configRepo: configRepo}
}

// GetGeofence implements geofence.GeofenceService.
// A missing configuration reads as an unconfigured geofence with check-out enabled.
func (s *geofenceServiceImpl) GetGeofence(ctx context.Context) (geofence.ConfigResponse, error) {
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, geofence.ErrGeofenceNotFound) {
			return geofence.ToResponse(geofence.Config{CheckoutEnabled: true}), nil
		}
		return geofence.ConfigResponse{}, conflict.Storage("get geofence", err)
	}
	return geofence.ToResponse(cfg), nil
}

// UpdateGeofence implements geofence.GeofenceService.
func (s *geofenceServiceImpl) UpdateGeofence(ctx context.Context, req geofence.UpdateConfigRequest) (geofence.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return geofence.ConfigResponse{}, err
	}

	cfg, err := s.configRepo.Upsert(ctx, req.ToEntity())
	if err != nil {
		return geofence.ConfigResponse{}, conflict.Storage("update geofence", err)
	}
	return geofence.ToResponse(cfg), nil
}
