package rabbitmq

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

// Client держит соединение и канал RabbitMQ. Канал не потокобезопасен,
// все публикации идут через одного владельца клиента.
type Client struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// New подключается к брокеру с экспоненциальными повторами: на старте
// сервиса брокер может подниматься параллельно.
func New(ctx context.Context, url, exchange string) (*Client, error) {
	retryConfig := retrier.Config{
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		MaxElapsedTime:  30 * time.Second,
		Randomization:   0.5,
		Multiplier:      2,
	}

	var conn *amqp.Connection
	err := backoff_adapter.New(retryConfig).ExecuteWithContext(ctx, func(_ context.Context) error {
		var dialErr error
		conn, dialErr = amqp.Dial(url)
		return dialErr
	})
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	if err := channel.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &Client{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

func (c *Client) Publish(ctx context.Context, routingKey string, body []byte) error {
	return c.channel.PublishWithContext(
		ctx,
		c.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (c *Client) Close() error {
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			return fmt.Errorf("close rabbitmq channel: %w", err)
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			return fmt.Errorf("close rabbitmq connection: %w", err)
		}
	}
	return nil
}
