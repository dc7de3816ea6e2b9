package tracking

import "errors"

var (
	ErrInvalidDeliveryID  = errors.New("invalid delivery id")
	ErrInvalidCoordinates = errors.New("coordinates out of range")
	ErrNoKnownPosition    = errors.New("no known position for delivery")
)
