package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	deliveryservice "dispatch/internal/service/delivery"
)

const deliveryColumns = `id, order_id, status, courier_id,
		pickup_lat, pickup_lng, dropoff_lat, dropoff_lng,
		delivery_fee, confirmation_code,
		assigned_at, accepted_at, picked_up_at, delivered_at, proof_photo_url,
		courier_share, platform_share, rating_stars, rating_comment, created_at`

// activeStatuses — статусы, в которых доставка занимает курьера.
const activeStatuses = `'ASSIGNED', 'PICKED_UP', 'IN_TRANSIT'`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, delivery entities.Delivery) (*entities.Delivery, error) {
	query := `
		INSERT INTO deliveries (order_id, status, pickup_lat, pickup_lng, dropoff_lat, dropoff_lng,
			delivery_fee, confirmation_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + deliveryColumns

	deliveryModel, err := r.scanDelivery(r.querier.QueryRow(
		ctx,
		query,
		delivery.OrderID,
		delivery.Status.String(),
		delivery.PickupLat,
		delivery.PickupLng,
		delivery.DropoffLat,
		delivery.DropoffLng,
		delivery.DeliveryFee,
		delivery.ConfirmationCode,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, deliveryservice.ErrOrderAlreadyAssigned
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, deliveryservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(deliveryModel), nil
}

func (r *Repository) GetByID(ctx context.Context, deliveryID int64) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE id = $1`

	deliveryModel, err := r.scanDelivery(r.querier.QueryRow(ctx, query, deliveryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryservice.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository getbyid error: %w", err)
	}

	return ToDomain(deliveryModel), nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE order_id = $1`

	deliveryModel, err := r.scanDelivery(r.querier.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryservice.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository getbyorderid error: %w", err)
	}

	return ToDomain(deliveryModel), nil
}

func (r *Repository) GetActiveByCourier(ctx context.Context, courierID int64) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE courier_id = $1 AND status IN (` + activeStatuses + `)`

	deliveryModel, err := r.scanDelivery(r.querier.QueryRow(ctx, query, courierID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryservice.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository getactive error: %w", err)
	}

	return ToDomain(deliveryModel), nil
}

func (r *Repository) ListByCourier(ctx context.Context, courierID int64, limit, offset int64) ([]entities.Delivery, int64, error) {
	query := `SELECT ` + deliveryColumns + `, COUNT(*) OVER() AS total
		FROM deliveries
		WHERE courier_id = $1 AND status = 'DELIVERED'
		ORDER BY delivered_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.querier.Query(ctx, query, courierID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected delivery repository listbycourier error: %w", err)
	}
	defer rows.Close()

	var total int64
	deliveryModels := make([]DeliveryDB, 0, limit)
	for rows.Next() {
		var deliveryModel DeliveryDB
		err := rows.Scan(
			&deliveryModel.ID,
			&deliveryModel.OrderID,
			&deliveryModel.Status,
			&deliveryModel.CourierID,
			&deliveryModel.PickupLat,
			&deliveryModel.PickupLng,
			&deliveryModel.DropoffLat,
			&deliveryModel.DropoffLng,
			&deliveryModel.DeliveryFee,
			&deliveryModel.ConfirmationCode,
			&deliveryModel.AssignedAt,
			&deliveryModel.AcceptedAt,
			&deliveryModel.PickedUpAt,
			&deliveryModel.DeliveredAt,
			&deliveryModel.ProofPhotoURL,
			&deliveryModel.CourierShare,
			&deliveryModel.PlatformShare,
			&deliveryModel.RatingStars,
			&deliveryModel.RatingComment,
			&deliveryModel.CreatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("unexpected delivery repository listbycourier error: %w", err)
		}
		deliveryModels = append(deliveryModels, deliveryModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected delivery repository listbycourier error: %w", err)
	}

	return ToDomainList(deliveryModels), total, nil
}

// Release снимает курьера и возвращает доставку в поиск. Условный
// переход: ноль строк означает, что доставка уже не ASSIGNED за этим
// курьером.
func (r *Repository) Release(ctx context.Context, deliveryID, courierID int64) (*entities.Delivery, error) {
	query := `UPDATE deliveries
		SET status = 'SEARCHING', courier_id = NULL, assigned_at = NULL, accepted_at = NULL
		WHERE id = $1 AND courier_id = $2 AND status = 'ASSIGNED'
		RETURNING ` + deliveryColumns

	deliveryModel, err := r.scanDelivery(r.querier.QueryRow(ctx, query, deliveryID, courierID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryservice.ErrUnexpectedStatus
		}
		return nil, fmt.Errorf("unexpected delivery repository release error: %w", err)
	}

	return ToDomain(deliveryModel), nil
}

// MarkAccepted долговечно фиксирует принятие назначения. Фоновый обход
// истекших назначений не трогает строки с заполненным accepted_at.
func (r *Repository) MarkAccepted(ctx context.Context, deliveryID, courierID int64, acceptedAt time.Time) (*entities.Delivery, error) {
	query := `UPDATE deliveries
		SET accepted_at = $3
		WHERE id = $1 AND courier_id = $2 AND status = 'ASSIGNED'
		RETURNING ` + deliveryColumns

	deliveryModel, err := r.scanDelivery(r.querier.QueryRow(ctx, query, deliveryID, courierID, acceptedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryservice.ErrUnexpectedStatus
		}
		return nil, fmt.Errorf("unexpected delivery repository markaccepted error: %w", err)
	}

	return ToDomain(deliveryModel), nil
}

func (r *Repository) MarkPickedUp(ctx context.Context, deliveryID, courierID int64, pickedUpAt time.Time) (*entities.Delivery, error) {
	query := `UPDATE deliveries
		SET status = 'PICKED_UP', picked_up_at = $3
		WHERE id = $1 AND courier_id = $2 AND status = 'ASSIGNED'
		RETURNING ` + deliveryColumns

	deliveryModel, err := r.scanDelivery(r.querier.QueryRow(ctx, query, deliveryID, courierID, pickedUpAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryservice.ErrUnexpectedStatus
		}
		return nil, fmt.Errorf("unexpected delivery repository markpickedup error: %w", err)
	}

	return ToDomain(deliveryModel), nil
}

func (r *Repository) Complete(ctx context.Context, completion entities.DeliveryModify) (*entities.Delivery, error) {
	query := `UPDATE deliveries
		SET status = 'DELIVERED',
		    delivered_at = $3,
		    proof_photo_url = $4,
		    courier_share = $5,
		    platform_share = $6
		WHERE id = $1 AND courier_id = $2 AND status IN ('PICKED_UP', 'IN_TRANSIT')
		RETURNING ` + deliveryColumns

	deliveryModel, err := r.scanDelivery(r.querier.QueryRow(
		ctx,
		query,
		completion.ID,
		completion.CourierID,
		completion.DeliveredAt,
		completion.ProofPhotoURL,
		completion.CourierShare,
		completion.PlatformShare,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryservice.ErrUnexpectedStatus
		}
		return nil, fmt.Errorf("unexpected delivery repository complete error: %w", err)
	}

	return ToDomain(deliveryModel), nil
}

func (r *Repository) SetRating(ctx context.Context, deliveryID int64, stars int32, comment *string) error {
	query := `UPDATE deliveries
		SET rating_stars = $2, rating_comment = $3
		WHERE id = $1 AND rating_stars IS NULL`

	result, err := r.querier.Exec(ctx, query, deliveryID, stars, comment)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository setrating error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return deliveryservice.ErrAlreadyRated
	}

	return nil
}

func (r *Repository) ListExpiredAssignments(ctx context.Context, window time.Duration) ([]entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE status = 'ASSIGNED'
		  AND accepted_at IS NULL
		  AND assigned_at < NOW() - make_interval(secs => $1)
		ORDER BY assigned_at`

	rows, err := r.querier.Query(ctx, query, window.Seconds())
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository listexpired error: %w", err)
	}
	defer rows.Close()

	deliveryModels := make([]DeliveryDB, 0, 8)
	for rows.Next() {
		var deliveryModel DeliveryDB
		err := rows.Scan(
			&deliveryModel.ID,
			&deliveryModel.OrderID,
			&deliveryModel.Status,
			&deliveryModel.CourierID,
			&deliveryModel.PickupLat,
			&deliveryModel.PickupLng,
			&deliveryModel.DropoffLat,
			&deliveryModel.DropoffLng,
			&deliveryModel.DeliveryFee,
			&deliveryModel.ConfirmationCode,
			&deliveryModel.AssignedAt,
			&deliveryModel.AcceptedAt,
			&deliveryModel.PickedUpAt,
			&deliveryModel.DeliveredAt,
			&deliveryModel.ProofPhotoURL,
			&deliveryModel.CourierShare,
			&deliveryModel.PlatformShare,
			&deliveryModel.RatingStars,
			&deliveryModel.RatingComment,
			&deliveryModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository listexpired error: %w", err)
		}
		deliveryModels = append(deliveryModels, deliveryModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository listexpired error: %w", err)
	}

	return ToDomainList(deliveryModels), nil
}

// ListStaleSearching не возвращает доставки отменённых заказов:
// их незачем переподбирать.
func (r *Repository) ListStaleSearching(ctx context.Context, olderThan time.Duration) ([]int64, error) {
	query := `SELECT d.id
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id
		WHERE d.status = 'SEARCHING'
		  AND o.status <> 'cancelled'
		  AND d.created_at < NOW() - make_interval(secs => $1)
		ORDER BY d.created_at`

	rows, err := r.querier.Query(ctx, query, olderThan.Seconds())
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository liststale error: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0, 8)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unexpected delivery repository liststale error: %w", err)
		}
		ids = append(ids, id)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository liststale error: %w", err)
	}

	return ids, nil
}

func (r *Repository) scanDelivery(row pgx.Row) (*DeliveryDB, error) {
	var deliveryModel DeliveryDB
	err := row.Scan(
		&deliveryModel.ID,
		&deliveryModel.OrderID,
		&deliveryModel.Status,
		&deliveryModel.CourierID,
		&deliveryModel.PickupLat,
		&deliveryModel.PickupLng,
		&deliveryModel.DropoffLat,
		&deliveryModel.DropoffLng,
		&deliveryModel.DeliveryFee,
		&deliveryModel.ConfirmationCode,
		&deliveryModel.AssignedAt,
		&deliveryModel.AcceptedAt,
		&deliveryModel.PickedUpAt,
		&deliveryModel.DeliveredAt,
		&deliveryModel.ProofPhotoURL,
		&deliveryModel.CourierShare,
		&deliveryModel.PlatformShare,
		&deliveryModel.RatingStars,
		&deliveryModel.RatingComment,
		&deliveryModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &deliveryModel, nil
}
