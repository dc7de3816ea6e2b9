//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, delivery entities.Delivery) (*entities.Delivery, error)
	GetByID(ctx context.Context, deliveryID int64) (*entities.Delivery, error)
	GetByOrderID(ctx context.Context, orderID string) (*entities.Delivery, error)
	GetActiveByCourier(ctx context.Context, courierID int64) (*entities.Delivery, error)
	ListByCourier(ctx context.Context, courierID int64, limit, offset int64) ([]entities.Delivery, int64, error)

	// Условные переходы: ноль затронутых строк означает, что доставка
	// уже не в ожидаемом статусе.
	Release(ctx context.Context, deliveryID, courierID int64) (*entities.Delivery, error)
	MarkAccepted(ctx context.Context, deliveryID, courierID int64, acceptedAt time.Time) (*entities.Delivery, error)
	MarkPickedUp(ctx context.Context, deliveryID, courierID int64, pickedUpAt time.Time) (*entities.Delivery, error)
	Complete(ctx context.Context, completion entities.DeliveryModify) (*entities.Delivery, error)
	SetRating(ctx context.Context, deliveryID int64, stars int32, comment *string) error

	ListExpiredAssignments(ctx context.Context, window time.Duration) ([]entities.Delivery, error)
	ListStaleSearching(ctx context.Context, olderThan time.Duration) ([]int64, error)
}

type OrderRepository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatusType) error
}

type CourierRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)
	Update(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error)
}

type Dispatcher interface {
	DispatchDelivery(ctx context.Context, deliveryID int64) (*entities.DeliveryAssignment, error)
}

type Settler interface {
	Settle(ctx context.Context, courierID, deliveryID, fee int64) (courierShare, platformShare int64, err error)
}

type Markers interface {
	MarkRejected(deliveryID, courierID int64)
	ClearPendingAcceptance(deliveryID int64)
}

type Push interface {
	Notify(ctx context.Context, userID int64, category, title, body string, data map[string]string)
}

// Broadcaster доставляет события наблюдателям доставки по принципу
// at-most-once: сбой рассылки никогда не влияет на результат операции.
type Broadcaster interface {
	BroadcastStatus(deliveryID int64, status entities.DeliveryStatusType)
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
