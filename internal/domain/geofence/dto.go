package geofence

import "github.com/cmlabs-hris/presence-backend-go/internal/pkg/validator"

type UpdateConfigRequest struct {
	Latitude        *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude       *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	RadiusMeters    int      `json:"radius_meters" validate:"gte=0,lte=100000"`
	CheckoutEnabled bool     `json:"checkout_enabled"`
}

func (r *UpdateConfigRequest) Validate() error {
	errs := validator.Struct(r)

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: ErrIncompleteCoordinates.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *UpdateConfigRequest) ToEntity() Config {
	return Config{
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
		RadiusMeters:    r.RadiusMeters,
		CheckoutEnabled: r.CheckoutEnabled,
	}
}

type ConfigResponse struct {
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	RadiusMeters    int      `json:"radius_meters"`
	CheckoutEnabled bool     `json:"checkout_enabled"`
}

func ToResponse(cfg Config) ConfigResponse {
	return ConfigResponse{
		Latitude:        cfg.Latitude,
		Longitude:       cfg.Longitude,
		RadiusMeters:    cfg.Radius(),
		CheckoutEnabled: cfg.CheckoutEnabled,
	}
}
