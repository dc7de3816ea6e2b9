package push

import (
	"context"

	"dispatch/pkg/logger"
)

type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

type gatewayLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
