package entities

import "time"

// CourierTransaction — строка финансового журнала, только append.
type CourierTransaction struct {
	ID         int64
	CourierID  int64
	DeliveryID *int64
	Type       TransactionType
	Amount     int64
	Status     TransactionStatusType
	Note       string
	CreatedAt  time.Time
}

type TransactionType string

const (
	TransactionCredit TransactionType = "CREDIT"
	TransactionDebit  TransactionType = "DEBIT"
)

func (t TransactionType) String() string {
	return string(t)
}

type TransactionStatusType string

const (
	TransactionSuccess TransactionStatusType = "SUCCESS"
	TransactionPending TransactionStatusType = "PENDING"
	TransactionFailed  TransactionStatusType = "FAILED"
)

func (s TransactionStatusType) String() string {
	return string(s)
}
