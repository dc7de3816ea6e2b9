//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_history_get_test
package courier_history_get

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetCourierHistory(ctx context.Context, courierID, page, limit int64) ([]entities.Delivery, int64, error)
}
