package wallet

import "errors"

var (
	ErrInvalidCourierID = errors.New("invalid courier id")
	ErrInvalidFee       = errors.New("invalid delivery fee")
	ErrCourierNotFound  = errors.New("courier not found")

	ErrBelowCashoutMinimum = errors.New("wallet balance below cashout minimum")
)
