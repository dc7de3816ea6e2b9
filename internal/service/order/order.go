package order

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
)

type Service struct {
	orderRepository OrderRepository
	statusFactory   HandlerFactory
}

func New(orderRepository OrderRepository, statusFactory HandlerFactory) *Service {
	return &Service{
		orderRepository: orderRepository,
		statusFactory:   statusFactory,
	}
}

// ProcessOrderStatusChange обрабатывает событие смены статуса заказа.
// Источник правды — строка заказа в БД, событие лишь триггер: действие
// выбирается по сохранённому статусу, а не по телу события.
func (s *Service) ProcessOrderStatusChange(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || orderModify.Status == nil {
		return nil, fmt.Errorf("order id and status are required")
	}

	order, err := s.orderRepository.GetByID(ctx, *orderModify.ID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if order.Status != *orderModify.Status {
		// Событие опоздало, заказ уже уехал дальше.
		return order, fmt.Errorf("%w: event %s, stored %s", ErrStatusMismatch, *orderModify.Status, order.Status)
	}

	executeFn, err := s.statusFactory.GetHandler(order.Status)
	if err != nil {
		// необрабатываемые статусы просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return order, nil
		}
		return order, err
	}

	if err := executeFn(ctx, order.ID); err != nil {
		return nil, err
	}

	return order, nil
}
