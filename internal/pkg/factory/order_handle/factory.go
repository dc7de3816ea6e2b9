package order_handle

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	deliveryservice "dispatch/internal/service/delivery"
	"dispatch/internal/service/order"
)

type StatusHandlerFactory struct {
	deliveryService order.DeliveryService
}

func NewStatusHandlerFactory(deliveryService order.DeliveryService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		deliveryService: deliveryService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (order.ExecuteFn, error) {
	switch status {
	case entities.OrderPaid:
		return f.paidHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

// paidHandler создаёт доставку для оплаченного заказа. Повторная
// доставка одного заказа невозможна, поэтому ретрай того же события
// после частичного сбоя безопасен.
func (f *StatusHandlerFactory) paidHandler(ctx context.Context, orderID string) error {
	_, err := f.deliveryService.CreateForOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, deliveryservice.ErrOrderAlreadyAssigned) {
			return nil
		}
		return fmt.Errorf("create delivery for paid order %s: %w", orderID, err)
	}
	return nil
}

// cancelledHandler освобождает курьера отменённого заказа.
func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, orderID string) error {
	if err := f.deliveryService.HandleOrderCancelled(ctx, orderID); err != nil {
		return fmt.Errorf("release delivery for cancelled order %s: %w", orderID, err)
	}
	return nil
}
