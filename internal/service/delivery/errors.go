package delivery

import "errors"

var (
	ErrInvalidOrderID          = errors.New("invalid order id")
	ErrInvalidDeliveryID       = errors.New("invalid delivery id")
	ErrInvalidCourierID        = errors.New("invalid courier id")
	ErrInvalidStars            = errors.New("stars must be between 1 and 5")
	ErrInvalidConfirmationCode = errors.New("confirmation code must be 4 digits")

	ErrDeliveryNotFound = errors.New("delivery not found")
	ErrOrderNotFound    = errors.New("order not found")

	// ErrForbidden — действующее лицо не связано с доставкой.
	ErrForbidden = errors.New("actor is not related to this delivery")

	// ErrUnexpectedStatus — переход недопустим из текущего статуса,
	// в том числе когда гонку за один и тот же переход выиграл другой.
	ErrUnexpectedStatus = errors.New("delivery is no longer in expected status")

	ErrOrderAlreadyAssigned     = errors.New("order already has a delivery")
	ErrAlreadyRated             = errors.New("delivery already rated")
	ErrConfirmationCodeMismatch = errors.New("confirmation code mismatch")
)
