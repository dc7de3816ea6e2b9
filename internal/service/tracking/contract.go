//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Append(ctx context.Context, location entities.DeliveryLocation) (*entities.DeliveryLocation, error)
	GetLatest(ctx context.Context, deliveryID int64) (*entities.DeliveryLocation, error)
}

type Markers interface {
	SetDeliveryPosition(deliveryID int64, position entities.Position)
	DeliveryPosition(deliveryID int64) (entities.Position, bool)
}

type Broadcaster interface {
	BroadcastLocation(deliveryID int64, position entities.Position)
}
