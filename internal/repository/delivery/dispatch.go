package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/service/dispatch"
)

const courierColumns = `id, user_id, vehicle, plate_number, id_card_url, selfie_url,
		is_verified, is_online, current_lat, current_lng,
		avg_rating, total_ratings, wallet_balance, created_at, updated_at`

func (r *Repository) GetDeliveryByID(ctx context.Context, deliveryID int64) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE id = $1`

	deliveryModel, err := r.scanDelivery(r.querier.QueryRow(ctx, query, deliveryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository getdeliverybyid error: %w", err)
	}

	return ToDomain(deliveryModel), nil
}

// GetAvailableCouriers возвращает курьеров, пригодных для назначения:
// проверенных, на линии, с известной позицией и без активной доставки.
func (r *Repository) GetAvailableCouriers(ctx context.Context) ([]entities.Courier, error) {
	query := `
		SELECT ` + courierColumns + `
		FROM couriers c
		WHERE c.is_verified
		  AND c.is_online
		  AND c.current_lat IS NOT NULL
		  AND c.current_lng IS NOT NULL
		  AND NOT EXISTS (
			SELECT 1 FROM deliveries d
			WHERE d.courier_id = c.id
			  AND d.status IN (` + activeStatuses + `)
		  )
		ORDER BY c.id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getavailablecouriers error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]AvailableCourierDB, 0, 8)
	for rows.Next() {
		var courierModel AvailableCourierDB
		err := rows.Scan(
			&courierModel.ID,
			&courierModel.UserID,
			&courierModel.Vehicle,
			&courierModel.PlateNumber,
			&courierModel.IDCardURL,
			&courierModel.SelfieURL,
			&courierModel.IsVerified,
			&courierModel.IsOnline,
			&courierModel.CurrentLat,
			&courierModel.CurrentLng,
			&courierModel.AvgRating,
			&courierModel.TotalRatings,
			&courierModel.WalletBalance,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository getavailablecouriers error: %w", err)
		}
		courierModels = append(courierModels, courierModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getavailablecouriers error: %w", err)
	}

	return ToCourierDomainList(courierModels), nil
}

// AssignCourier — условное назначение. Переход выполняется только если
// доставка всё ещё в SEARCHING и у курьера нет другой активной доставки,
// это защищает инвариант "одна активная доставка на курьера" под
// конкурентной диспетчеризацией.
func (r *Repository) AssignCourier(ctx context.Context, deliveryID, courierID int64, assignedAt time.Time) (*entities.Delivery, error) {
	query := `UPDATE deliveries
		SET status = 'ASSIGNED', courier_id = $2, assigned_at = $3, accepted_at = NULL
		WHERE id = $1
		  AND status = 'SEARCHING'
		  AND NOT EXISTS (
			SELECT 1 FROM deliveries d2
			WHERE d2.courier_id = $2
			  AND d2.status IN (` + activeStatuses + `)
		  )
		RETURNING ` + deliveryColumns

	deliveryModel, err := r.scanDelivery(r.querier.QueryRow(ctx, query, deliveryID, courierID, assignedAt))
	if err == nil {
		return ToDomain(deliveryModel), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected delivery repository assigncourier error: %w", err)
	}

	// Ноль строк: различаем проигранную гонку за курьера и уехавшую
	// из SEARCHING доставку.
	current, err := r.GetDeliveryByID(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	if current.Status != entities.DeliverySearching {
		return nil, dispatch.ErrDeliveryNotSearching
	}
	return nil, dispatch.ErrCandidateTaken
}
