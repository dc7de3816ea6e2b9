//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=wallet_test
package wallet

import (
	"context"

	"dispatch/internal/entities"
)

type CourierRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)
	CreditWallet(ctx context.Context, courierID, amount int64) (*entities.Courier, error)
	Update(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, transaction entities.CourierTransaction) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
