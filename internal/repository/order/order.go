package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	orderservice "dispatch/internal/service/order"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `
		SELECT id, user_id, status, pickup_lat, pickup_lng, dropoff_lat, dropoff_lng, total_amount, created_at
		FROM orders
		WHERE id = $1
	`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).
		Scan(
			&orderModel.ID,
			&orderModel.UserID,
			&orderModel.Status,
			&orderModel.PickupLat,
			&orderModel.PickupLng,
			&orderModel.DropoffLat,
			&orderModel.DropoffLng,
			&orderModel.TotalAmount,
			&orderModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatusType) error {
	query := `
		UPDATE orders
		SET status = $2
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, orderID, status.String())
	if err != nil {
		return fmt.Errorf("unexpected order repository updatestatus error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return orderservice.ErrOrderNotFound
	}

	return nil
}
