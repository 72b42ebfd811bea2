package config

import (
	"fmt"
	"os"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/geofence"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/schedule"
	"gopkg.in/yaml.v3"
)

// CompanyDefaults seeds the company settings when none are stored yet.
// Either section may be omitted.
type CompanyDefaults struct {
	WorkSchedule *WorkScheduleDefaults `yaml:"work_schedule"`
	Geofence     *GeofenceDefaults     `yaml:"geofence"`
}

type WorkScheduleDefaults struct {
	StartTime        string   `yaml:"start_time"`
	EndTime          string   `yaml:"end_time"`
	ToleranceMinutes int      `yaml:"tolerance_minutes"`
	WorkingDays      []string `yaml:"working_days"`
}

type GeofenceDefaults struct {
	Latitude        *float64 `yaml:"latitude"`
	Longitude       *float64 `yaml:"longitude"`
	RadiusMeters    int      `yaml:"radius_meters"`
	CheckoutEnabled *bool    `yaml:"checkout_enabled"`
}

// LoadCompanyDefaults reads and validates the YAML file at path.
func LoadCompanyDefaults(path string) (*CompanyDefaults, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read company defaults %s: %w", path, err)
	}

	var defaults CompanyDefaults
	if err := yaml.Unmarshal(b, &defaults); err != nil {
		return nil, fmt.Errorf("config: parse company defaults: %w", err)
	}

	if req := defaults.ScheduleRequest(); req != nil {
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("config: work_schedule: %w", err)
		}
	}
	if req := defaults.GeofenceRequest(); req != nil {
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("config: geofence: %w", err)
		}
	}

	return &defaults, nil
}

// ScheduleRequest returns the work schedule section as an update request, or nil.
func (d *CompanyDefaults) ScheduleRequest() *schedule.UpdateWorkScheduleRequest {
	if d == nil || d.WorkSchedule == nil {
		return nil
	}
	return &schedule.UpdateWorkScheduleRequest{
		StartTime:        d.WorkSchedule.StartTime,
		EndTime:          d.WorkSchedule.EndTime,
		ToleranceMinutes: d.WorkSchedule.ToleranceMinutes,
		WorkingDays:      d.WorkSchedule.WorkingDays,
	}
}

// GeofenceRequest returns the geofence section as an update request, or nil.
// Check-out stays enabled unless the file disables it.
func (d *CompanyDefaults) GeofenceRequest() *geofence.UpdateConfigRequest {
	if d == nil || d.Geofence == nil {
		return nil
	}
	checkout := true
	if d.Geofence.CheckoutEnabled != nil {
		checkout = *d.Geofence.CheckoutEnabled
	}
	return &geofence.UpdateConfigRequest{
		Latitude:        d.Geofence.Latitude,
		Longitude:       d.Geofence.Longitude,
		RadiusMeters:    d.Geofence.RadiusMeters,
		CheckoutEnabled: checkout,
	}
}
