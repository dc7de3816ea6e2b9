package tracking

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Service interface {
	RecordLocation(ctx context.Context, deliveryID int64, lat, lng float64, speed *float64) (*entities.DeliveryLocation, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
