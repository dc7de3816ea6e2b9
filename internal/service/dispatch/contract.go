//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Repository interface {
	GetDeliveryByID(ctx context.Context, deliveryID int64) (*entities.Delivery, error)
	GetAvailableCouriers(ctx context.Context) ([]entities.Courier, error)
	AssignCourier(ctx context.Context, deliveryID, courierID int64, assignedAt time.Time) (*entities.Delivery, error)
}

type Markers interface {
	IsRejected(deliveryID, courierID int64) bool
	SetPendingAcceptance(deliveryID, courierID int64)
}

type Push interface {
	Notify(ctx context.Context, userID int64, category, title, body string, data map[string]string)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
