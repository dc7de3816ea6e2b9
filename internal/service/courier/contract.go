//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, registration entities.CourierRegistration) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)
	Update(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error)
}

type Markers interface {
	SetCourierPosition(courierID int64, position entities.Position)
}

type Push interface {
	Notify(ctx context.Context, userID int64, category, title, body string, data map[string]string)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
