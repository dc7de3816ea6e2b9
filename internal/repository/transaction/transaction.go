package transaction

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/wallet"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, transaction entities.CourierTransaction) (int64, error) {
	query := `
		INSERT INTO courier_transactions (courier_id, delivery_id, type, amount, status, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		transaction.CourierID,
		transaction.DeliveryID,
		transaction.Type.String(),
		transaction.Amount,
		transaction.Status.String(),
		transaction.Note,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return 0, wallet.ErrCourierNotFound
		}
		return 0, fmt.Errorf("unexpected transaction repository create error: %w", err)
	}

	return id, nil
}
