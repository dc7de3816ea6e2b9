//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_rate_post_test
package delivery_rate_post

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
	RateDelivery(ctx context.Context, customerID, deliveryID int64, stars int32, comment *string) error
}
