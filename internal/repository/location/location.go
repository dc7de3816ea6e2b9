package location

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/tracking"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Append(ctx context.Context, location entities.DeliveryLocation) (*entities.DeliveryLocation, error) {
	query := `
		INSERT INTO delivery_locations (delivery_id, lat, lng, speed)
		VALUES ($1, $2, $3, $4)
		RETURNING id, delivery_id, lat, lng, speed, recorded_at
	`

	locationModel, err := r.scanLocation(r.querier.QueryRow(
		ctx,
		query,
		location.DeliveryID,
		location.Lat,
		location.Lng,
		location.Speed,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, tracking.ErrInvalidDeliveryID
		}
		return nil, fmt.Errorf("unexpected location repository append error: %w", err)
	}

	return ToDomain(locationModel), nil
}

func (r *Repository) GetLatest(ctx context.Context, deliveryID int64) (*entities.DeliveryLocation, error) {
	query := `
		SELECT id, delivery_id, lat, lng, speed, recorded_at
		FROM delivery_locations
		WHERE delivery_id = $1
		ORDER BY recorded_at DESC, id DESC
		LIMIT 1
	`

	locationModel, err := r.scanLocation(r.querier.QueryRow(ctx, query, deliveryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tracking.ErrNoKnownPosition
		}
		return nil, fmt.Errorf("unexpected location repository getlatest error: %w", err)
	}

	return ToDomain(locationModel), nil
}

func (r *Repository) scanLocation(row pgx.Row) (*LocationDB, error) {
	var locationModel LocationDB
	err := row.Scan(
		&locationModel.ID,
		&locationModel.DeliveryID,
		&locationModel.Lat,
		&locationModel.Lng,
		&locationModel.Speed,
		&locationModel.RecordedAt,
	)
	if err != nil {
		return nil, err
	}
	return &locationModel, nil
}
