package geofence

import "errors"

var (
	ErrGeofenceNotFound      = errors.New("geofence configuration not found")
	ErrIncompleteCoordinates = errors.New("latitude and longitude must be set together")
)
