package trip

import "errors"

var (
	ErrBusinessTripNotFound         = errors.New("business trip not found")
	ErrBusinessTripAlreadyProcessed = errors.New("business trip already processed")
)
