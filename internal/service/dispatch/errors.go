package dispatch

import "errors"

var (
	ErrInvalidDeliveryID = errors.New("invalid delivery id")
	ErrDeliveryNotFound  = errors.New("delivery not found")

	// ErrDeliveryNotSearching — повторный вызов для доставки, которая уже
	// ушла из SEARCHING. Для вызывающих это штатный no-op.
	ErrDeliveryNotSearching = errors.New("delivery is not in searching status")

	// ErrNoCourierAvailable — кандидатов нет ни в одном радиусе.
	// Не ошибка системы: доставка остаётся в SEARCHING.
	ErrNoCourierAvailable = errors.New("no courier available")

	// ErrCandidateTaken — кандидата успели занять параллельной
	// диспетчеризацией, пробуем следующего.
	ErrCandidateTaken = errors.New("candidate courier already holds an active delivery")
)
