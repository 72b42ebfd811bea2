package geofence

import (
	"fmt"
	"math"

	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/utils"
)

// Validate checks a reported coordinate against the company geofence.
// Business-trip events and an unconfigured geofence always pass.
func Validate(cfg *Config, lat, lon float64, isBusinessTrip bool) Result {
	if isBusinessTrip || !cfg.Configured() {
		return Result{IsValid: true}
	}

	distance := utils.CalculateHaversineDistance(lat, lon, *cfg.Latitude, *cfg.Longitude)
	return checkDistance(distance, cfg.Radius())
}

func checkDistance(distance float64, radius int) Result {
	res := Result{
		IsValid:        distance <= float64(radius),
		DistanceMeters: &distance,
	}
	if !res.IsValid {
		res.Message = fmt.Sprintf(
			"Sei fuori dall'area consentita: raggio massimo %d m, distanza rilevata %d m",
			radius, int64(math.Round(distance)),
		)
	}
	return res
}
