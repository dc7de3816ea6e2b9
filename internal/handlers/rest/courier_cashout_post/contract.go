//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_cashout_post_test
package courier_cashout_post

import (
	"context"

	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Cashout(ctx context.Context, courierID int64) (int64, error)
}
