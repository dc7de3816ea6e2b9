package courier

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/courier"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const courierColumns = `id, user_id, vehicle, plate_number, id_card_url, selfie_url,
		is_verified, is_online, current_lat, current_lng,
		avg_rating, total_ratings, wallet_balance, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, registration entities.CourierRegistration) (int64, error) {
	query := `INSERT INTO couriers (user_id, vehicle, plate_number, id_card_url, selfie_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		registration.UserID,
		registration.Vehicle.String(),
		registration.PlateNumber,
		registration.IDCardURL,
		registration.SelfieURL,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, courier.ErrCourierExists
		}
		return 0, fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE id = $1`

	courierModel, err := r.scanCourier(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	return ToDomain(courierModel), nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE user_id = $1`

	courierModel, err := r.scanCourier(r.querier.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository getbyuserid error: %w", err)
	}

	return ToDomain(courierModel), nil
}

func (r *Repository) Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)

	builder := qb.
		Update("couriers")

	// опциональные поля
	if courierModifyModel.Vehicle != nil {
		builder = builder.Set("vehicle", courierModifyModel.Vehicle)
	}
	if courierModifyModel.PlateNumber != nil {
		builder = builder.Set("plate_number", courierModifyModel.PlateNumber)
	}
	if courierModifyModel.IsVerified != nil {
		builder = builder.Set("is_verified", courierModifyModel.IsVerified)
	}
	if courierModifyModel.IsOnline != nil {
		builder = builder.Set("is_online", courierModifyModel.IsOnline)
	}
	if courierModifyModel.CurrentLat != nil {
		builder = builder.Set("current_lat", courierModifyModel.CurrentLat)
	}
	if courierModifyModel.CurrentLng != nil {
		builder = builder.Set("current_lng", courierModifyModel.CurrentLng)
	}
	if courierModifyModel.AvgRating != nil {
		builder = builder.Set("avg_rating", courierModifyModel.AvgRating)
	}
	if courierModifyModel.TotalRatings != nil {
		builder = builder.Set("total_ratings", courierModifyModel.TotalRatings)
	}
	if courierModifyModel.WalletBalance != nil {
		builder = builder.Set("wallet_balance", courierModifyModel.WalletBalance)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": courierModifyModel.ID}).
		Suffix("RETURNING " + courierColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	courierModel, err := r.scanCourier(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	return ToDomain(courierModel), nil
}

// CreditWallet атомарно увеличивает баланс на уровне строки БД,
// без чтения-модификации-записи на стороне приложения.
func (r *Repository) CreditWallet(ctx context.Context, courierID, amount int64) (*entities.Courier, error) {
	query := `UPDATE couriers
		SET wallet_balance = wallet_balance + $2,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + courierColumns

	courierModel, err := r.scanCourier(r.querier.QueryRow(ctx, query, courierID, amount))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository creditwallet error: %w", err)
	}

	return ToDomain(courierModel), nil
}

func (r *Repository) scanCourier(row pgx.Row) (*CourierDB, error) {
	var courierModel CourierDB
	err := row.Scan(
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
		return nil, err
	}
	return &courierModel, nil
}
