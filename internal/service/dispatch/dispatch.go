package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

// Лестница радиусов поиска фиксирована: останавливаемся на первом
// радиусе, давшем кандидата, за 8 км не выходим.
var searchRadiiKm = []float64{3, 5, 8}

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 1 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Dispatch struct {
	log        serviceLogger
	repository Repository
	markers    Markers
	push       Push
	txManager  TxManager
	retrier    retrierconfig.Retrier
}

func New(log serviceLogger, repository Repository, markers Markers, push Push, txManager TxManager) *Dispatch {
	// Ретраим только чтение кандидатов: оно идемпотентно.
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil,
	}

	return &Dispatch{
		log:        log.With(),
		repository: repository,
		markers:    markers,
		push:       push,
		txManager:  txManager,
		retrier:    backoff_adapter.New(retryConfig),
	}
}

// DispatchDelivery выполняет одну попытку подбора курьера для доставки
// в статусе SEARCHING. Возвращает ErrNoCourierAvailable, если кандидатов
// нет ни в одном радиусе, и ErrDeliveryNotSearching при повторном вызове
// для уже назначенной доставки — оба исхода штатные.
//
// Безопасен при конкурентных вызовах: назначение выполняется условным
// обновлением в сериализуемой транзакции, и курьер с активной доставкой
// не может быть назначен второй раз.
func (d *Dispatch) DispatchDelivery(ctx context.Context, deliveryID int64) (*entities.DeliveryAssignment, error) {
	if deliveryID <= 0 {
		return nil, ErrInvalidDeliveryID
	}

	DispatchAttemptsTotal.Inc()

	delivery, err := d.repository.GetDeliveryByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	if delivery.Status != entities.DeliverySearching {
		return nil, ErrDeliveryNotSearching
	}

	couriers, err := d.getAvailableCouriersWithRetry(ctx)
	if err != nil {
		return nil, fmt.Errorf("get available couriers: %w", err)
	}

	eligible := make([]entities.Courier, 0, len(couriers))
	for _, courier := range couriers {
		if d.markers.IsRejected(deliveryID, courier.ID) {
			continue
		}
		eligible = append(eligible, courier)
	}

	for _, radiusKm := range searchRadiiKm {
		candidates := rank(buildCandidates(eligible, delivery.PickupLat, delivery.PickupLng, radiusKm))
		if len(candidates) == 0 {
			continue
		}

		assignment, err := d.assignBestCandidate(ctx, delivery, candidates)
		if err != nil {
			return nil, err
		}
		if assignment != nil {
			DispatchAssignmentsTotal.WithLabelValues(strconv.FormatFloat(radiusKm, 'f', -1, 64)).Inc()
			return assignment, nil
		}
		// Всех кандидатов радиуса заняли параллельные попытки —
		// расширяем радиус.
	}

	DispatchNoCourierTotal.Inc()
	d.log.With(
		logger.NewField("delivery", deliveryID),
	).Warn("no courier found for delivery")

	return nil, ErrNoCourierAvailable
}

// assignBestCandidate пробует кандидатов в порядке убывания балла.
// Проигранная гонка за курьера не ошибка: берём следующего.
func (d *Dispatch) assignBestCandidate(ctx context.Context, delivery *entities.Delivery, candidates []Candidate) (*entities.DeliveryAssignment, error) {
	for _, candidate := range candidates {
		assignedAt := time.Now().UTC()

		var assigned *entities.Delivery
		err := d.txManager.Do(ctx, func(ctx context.Context) error {
			var err error
			assigned, err = d.repository.AssignCourier(ctx, delivery.ID, candidate.CourierID, assignedAt)
			return err
		})
		if err != nil {
			if errors.Is(err, ErrCandidateTaken) {
				continue
			}
			if errors.Is(err, ErrDeliveryNotSearching) {
				// Доставку успела назначить параллельная попытка.
				return nil, ErrDeliveryNotSearching
			}
			return nil, fmt.Errorf("assign courier: %w", err)
		}

		d.markers.SetPendingAcceptance(delivery.ID, candidate.CourierID)

		d.push.Notify(ctx, candidate.UserID, "DELIVERY_UPDATE",
			"Nouvelle course disponible !",
			fmt.Sprintf("Une commande vous attend à %.1f km", candidate.DistanceKm),
			map[string]string{"deliveryId": strconv.FormatInt(delivery.ID, 10)},
		)

		d.log.With(
			logger.NewField("delivery", delivery.ID),
			logger.NewField("courier", candidate.CourierID),
			logger.NewField("distance_km", fmt.Sprintf("%.1f", candidate.DistanceKm)),
		).Info("courier assigned to delivery")

		return &entities.DeliveryAssignment{
			DeliveryID: delivery.ID,
			CourierID:  candidate.CourierID,
			UserID:     candidate.UserID,
			DistanceKm: candidate.DistanceKm,
			AssignedAt: *assigned.AssignedAt,
		}, nil
	}

	return nil, nil
}

func (d *Dispatch) getAvailableCouriersWithRetry(ctx context.Context) ([]entities.Courier, error) {
	var couriers []entities.Courier
	err := d.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		var err error
		couriers, err = d.repository.GetAvailableCouriers(ctx)
		return err
	})
	return couriers, err
}
