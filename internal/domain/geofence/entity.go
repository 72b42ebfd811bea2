package geofence

import "time"

// DefaultRadiusMeters applies when the configuration leaves the radius unset.
const DefaultRadiusMeters = 500

// Config is the company geofence. Nil coordinates mean geofencing is not configured.
type Config struct {
	Latitude        *float64
	Longitude       *float64
	RadiusMeters    int
	CheckoutEnabled bool
	UpdatedAt       time.Time
}

// Configured reports whether both company coordinates are set.
func (c *Config) Configured() bool {
	return c != nil && c.Latitude != nil && c.Longitude != nil
}

// Radius returns the configured radius, falling back to DefaultRadiusMeters.
func (c *Config) Radius() int {
	if c == nil || c.RadiusMeters <= 0 {
		return DefaultRadiusMeters
	}
	return c.RadiusMeters
}

// Result is the outcome of a geofence check.
type Result struct {
	IsValid        bool     `json:"is_valid"`
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
	Message        string   `json:"message,omitempty"`
}
