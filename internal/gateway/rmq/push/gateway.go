package push

import (
	"context"
	"encoding/json"
	"fmt"

	"dispatch/pkg/logger"
)

// Gateway публикует push-уведомления в обменник, откуда их забирает
// сервис доставки уведомлений. Семантика fire-and-forget: сбой
// публикации логируется и не влияет на вызывающую операцию.
type Gateway struct {
	publisher Publisher
	log       gatewayLogger
}

type message struct {
	UserID   int64             `json:"userId"`
	Category string            `json:"category"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Data     map[string]string `json:"data,omitempty"`
}

func New(log gatewayLogger, publisher Publisher) *Gateway {
	return &Gateway{
		publisher: publisher,
		log:       log.With(),
	}
}

func (g *Gateway) Notify(ctx context.Context, userID int64, category, title, body string, data map[string]string) {
	payload, err := json.Marshal(message{
		UserID:   userID,
		Category: category,
		Title:    title,
		Body:     body,
		Data:     data,
	})
	if err != nil {
		g.log.With(
			logger.NewField("user", userID),
			logger.NewField("error", err),
		).Error("push gateway failed to marshal notification")
		return
	}

	routingKey := fmt.Sprintf("push.%s", category)
	if err := g.publisher.Publish(ctx, routingKey, payload); err != nil {
		g.log.With(
			logger.NewField("user", userID),
			logger.NewField("routing_key", routingKey),
			logger.NewField("error", err),
		).Error("push gateway failed to publish notification")
	}
}
