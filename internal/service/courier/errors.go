package courier

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCourierID      = errors.New("invalid courier id")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidVehicle        = errors.New("invalid vehicle type")
	ErrInvalidCoordinates    = errors.New("invalid coordinates")

	ErrCourierNotFound = errors.New("courier not found")
	ErrCourierExists   = errors.New("courier already registered for this user")
	ErrNotVerified     = errors.New("courier is not verified")
)
