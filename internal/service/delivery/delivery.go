package delivery

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"

	"dispatch/internal/cache"
	"dispatch/internal/entities"
	"dispatch/internal/service/dispatch"
	"dispatch/pkg/logger"
)

const (
	confirmationCodeLength = 4

	// Базовая стоимость доставки в минорных единицах валюты.
	baseDeliveryFee = 500

	historyDefaultLimit = 20
	historyMaxLimit     = 100
)

type Delivery struct {
	log               serviceLogger
	repository        Repository
	orderRepository   OrderRepository
	courierRepository CourierRepository
	dispatcher        Dispatcher
	settler           Settler
	markers           Markers
	push              Push
	broadcaster       Broadcaster
	txManager         TxManager
}

func New(
	log serviceLogger,
	repository Repository,
	orderRepository OrderRepository,
	courierRepository CourierRepository,
	dispatcher Dispatcher,
	settler Settler,
	markers Markers,
	push Push,
	broadcaster Broadcaster,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		log:               log.With(),
		repository:        repository,
		orderRepository:   orderRepository,
		courierRepository: courierRepository,
		dispatcher:        dispatcher,
		settler:           settler,
		markers:           markers,
		push:              push,
		broadcaster:       broadcaster,
		txManager:         txManager,
	}
}

// CreateForOrder создаёт доставку для оплаченного заказа и сразу
// запускает подбор курьера. Если курьера нет, доставка остаётся в
// SEARCHING — это штатный исход, не ошибка.
func (d *Delivery) CreateForOrder(ctx context.Context, orderID string) (*entities.Delivery, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := d.orderRepository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	created, err := d.repository.Create(ctx, entities.Delivery{
		OrderID:          orderID,
		Status:           entities.DeliverySearching,
		PickupLat:        order.PickupLat,
		PickupLng:        order.PickupLng,
		DropoffLat:       order.DropoffLat,
		DropoffLng:       order.DropoffLng,
		DeliveryFee:      baseDeliveryFee,
		ConfirmationCode: generateConfirmationCode(),
	})
	if err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}

	_, err = d.dispatcher.DispatchDelivery(ctx, created.ID)
	if err != nil && !errors.Is(err, dispatch.ErrNoCourierAvailable) {
		return nil, fmt.Errorf("dispatch delivery: %w", err)
	}

	// Перечитываем: успешная диспетчеризация уже перевела доставку в ASSIGNED.
	delivery, err := d.repository.GetByID(ctx, created.ID)
	if err != nil {
		return nil, fmt.Errorf("get created delivery: %w", err)
	}
	return delivery, nil
}

// AcceptDelivery подтверждает назначение. Принятие фиксируется в
// долговечном состоянии (accepted_at) той же транзакцией: это решает
// гонку с истечением окна — если к моменту вызова доставка всё ещё
// ASSIGNED за этим курьером, принятие выигрывает, и ни обход истекших
// назначений, ни отложенный коллбек кеша её уже не снимут.
func (d *Delivery) AcceptDelivery(ctx context.Context, courierID, deliveryID int64) error {
	if err := validateActor(courierID, deliveryID); err != nil {
		return err
	}

	var customerID int64
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		delivery, err := d.guardAssignedCourier(ctx, courierID, deliveryID)
		if err != nil {
			return err
		}

		if _, err := d.repository.MarkAccepted(ctx, deliveryID, courierID, time.Now()); err != nil {
			return fmt.Errorf("mark accepted: %w", err)
		}

		order, err := d.orderRepository.GetByID(ctx, delivery.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		customerID = order.UserID
		return nil
	})
	if err != nil {
		return err
	}

	// Маркер снимается только после фиксации долговечного состояния,
	// чтобы истечение в окне гонки не перебило принятие.
	d.markers.ClearPendingAcceptance(deliveryID)

	d.push.Notify(ctx, customerID, "DELIVERY_UPDATE",
		"Livreur en route !",
		"Un livreur a accepté votre commande et se dirige vers le restaurant.",
		deliveryData(deliveryID),
	)
	d.broadcaster.BroadcastStatus(deliveryID, entities.DeliveryAssigned)

	return nil
}

// RejectDelivery снимает курьера с доставки, помечает его отказавшимся
// на час и немедленно запускает повторный подбор. Отсутствие нового
// курьера не всплывает к отказавшемуся — для него отказ всегда успешен.
func (d *Delivery) RejectDelivery(ctx context.Context, courierID, deliveryID int64) (*entities.Delivery, error) {
	if err := validateActor(courierID, deliveryID); err != nil {
		return nil, err
	}

	var released *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := d.guardAssignedCourier(ctx, courierID, deliveryID); err != nil {
			return err
		}

		var err error
		released, err = d.repository.Release(ctx, deliveryID, courierID)
		if err != nil {
			return fmt.Errorf("release delivery: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.markers.MarkRejected(deliveryID, courierID)
	d.markers.ClearPendingAcceptance(deliveryID)
	d.broadcaster.BroadcastStatus(deliveryID, entities.DeliverySearching)

	_, err = d.dispatcher.DispatchDelivery(ctx, deliveryID)
	if err != nil && !errors.Is(err, dispatch.ErrNoCourierAvailable) && !errors.Is(err, dispatch.ErrDeliveryNotSearching) {
		d.log.With(
			logger.NewField("delivery", deliveryID),
			logger.NewField("error", err),
		).Error("re-dispatch after rejection failed")
	}

	return released, nil
}

// HandleAcceptanceTimeout — путь истечения окна принятия. Кеш лишь
// подсказка: сначала перечитываем долговечный статус, и если курьер
// успел принять или доставка ушла дальше, ничего не делаем.
func (d *Delivery) HandleAcceptanceTimeout(ctx context.Context, deliveryID, courierID int64) error {
	if err := validateActor(courierID, deliveryID); err != nil {
		return err
	}

	timedOut := false
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		delivery, err := d.repository.GetByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		if delivery.Status != entities.DeliveryAssigned ||
			delivery.CourierID == nil || *delivery.CourierID != courierID {
			return nil
		}
		if delivery.AcceptedAt != nil {
			// Курьер успел принять: назначение больше не истекает.
			return nil
		}
		if delivery.AssignedAt != nil && time.Since(*delivery.AssignedAt) < cache.AcceptanceWindow {
			// Свежее переназначение того же курьера, окно ещё идёт.
			return nil
		}

		if _, err := d.repository.Release(ctx, deliveryID, courierID); err != nil {
			return fmt.Errorf("release delivery: %w", err)
		}
		timedOut = true
		return nil
	})
	if err != nil {
		return err
	}

	if !timedOut {
		return nil
	}

	d.log.With(
		logger.NewField("delivery", deliveryID),
		logger.NewField("courier", courierID),
	).Warn("acceptance window expired, re-dispatching")

	// Тайм-аут эквивалентен отказу, включая часовой маркер.
	d.markers.MarkRejected(deliveryID, courierID)
	d.broadcaster.BroadcastStatus(deliveryID, entities.DeliverySearching)

	_, err = d.dispatcher.DispatchDelivery(ctx, deliveryID)
	if err != nil && !errors.Is(err, dispatch.ErrNoCourierAvailable) && !errors.Is(err, dispatch.ErrDeliveryNotSearching) {
		return fmt.Errorf("re-dispatch after timeout: %w", err)
	}
	return nil
}

// HandleOrderCancelled снимает курьера с доставки отменённого заказа.
// Отмена не вина курьера: часовой маркер не ставится, курьер сразу
// снова доступен для подбора.
func (d *Delivery) HandleOrderCancelled(ctx context.Context, orderID string) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}

	var (
		released   bool
		deliveryID int64
		courierID  int64
	)
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		delivery, err := d.repository.GetByOrderID(ctx, orderID)
		if err != nil {
			if errors.Is(err, ErrDeliveryNotFound) {
				return nil
			}
			return fmt.Errorf("get delivery: %w", err)
		}

		deliveryID = delivery.ID
		if delivery.Status != entities.DeliveryAssigned || delivery.CourierID == nil {
			return nil
		}

		courierID = *delivery.CourierID
		if _, err := d.repository.Release(ctx, delivery.ID, courierID); err != nil {
			return fmt.Errorf("release delivery: %w", err)
		}
		released = true
		return nil
	})
	if err != nil {
		return err
	}

	if !released {
		return nil
	}

	d.markers.ClearPendingAcceptance(deliveryID)

	courier, err := d.courierRepository.GetByID(ctx, courierID)
	if err != nil {
		d.log.With(
			logger.NewField("courier", courierID),
			logger.NewField("error", err),
		).Error("get courier for cancellation notice")
		return nil
	}
	d.push.Notify(ctx, courier.UserID, "DELIVERY_UPDATE",
		"Course annulée",
		"La commande a été annulée. Vous êtes de nouveau disponible.",
		deliveryData(deliveryID),
	)

	return nil
}

// PickupDelivery переводит доставку в PICKED_UP и двигает статус заказа
// в той же транзакции.
func (d *Delivery) PickupDelivery(ctx context.Context, courierID, deliveryID int64) (*entities.Delivery, error) {
	if err := validateActor(courierID, deliveryID); err != nil {
		return nil, err
	}

	var (
		pickedUp   *entities.Delivery
		customerID int64
	)
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		delivery, err := d.guardAssignedCourier(ctx, courierID, deliveryID)
		if err != nil {
			return err
		}
		if err := delivery.Status.CanTransitionTo(entities.DeliveryPickedUp); err != nil {
			return ErrUnexpectedStatus
		}

		pickedUp, err = d.repository.MarkPickedUp(ctx, deliveryID, courierID, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("mark picked up: %w", err)
		}

		if err := d.orderRepository.UpdateStatus(ctx, delivery.OrderID, entities.OrderPickedUp); err != nil {
			return fmt.Errorf("advance order status: %w", err)
		}

		order, err := d.orderRepository.GetByID(ctx, delivery.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		customerID = order.UserID
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.markers.ClearPendingAcceptance(deliveryID)

	d.push.Notify(ctx, customerID, "DELIVERY_UPDATE",
		"Commande récupérée !",
		"Le livreur a récupéré votre commande et se dirige vers vous.",
		deliveryData(deliveryID),
	)
	d.broadcaster.BroadcastStatus(deliveryID, entities.DeliveryPickedUp)

	return pickedUp, nil
}

// ConfirmDelivery завершает доставку: сверяет код подтверждения и
// атомарно со сменой статуса проводит расчёт 80/20. Неверный код
// отклоняется до каких-либо записей.
func (d *Delivery) ConfirmDelivery(ctx context.Context, courierID, deliveryID int64, confirmationCode string, proofPhotoURL *string) (*entities.Delivery, error) {
	if err := validateActor(courierID, deliveryID); err != nil {
		return nil, err
	}
	if !isValidConfirmationCode(confirmationCode) {
		return nil, ErrInvalidConfirmationCode
	}

	var (
		completed  *entities.Delivery
		customerID int64
	)
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		delivery, err := d.repository.GetByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}
		if delivery.CourierID == nil || *delivery.CourierID != courierID {
			return ErrForbidden
		}
		if err := delivery.Status.CanTransitionTo(entities.DeliveryDelivered); err != nil {
			return ErrUnexpectedStatus
		}

		// Строгое строковое сравнение, без нормализации.
		if delivery.ConfirmationCode != confirmationCode {
			return ErrConfirmationCodeMismatch
		}

		courierShare, platformShare, err := d.settler.Settle(ctx, courierID, deliveryID, delivery.DeliveryFee)
		if err != nil {
			return fmt.Errorf("settle delivery: %w", err)
		}

		deliveredAt := time.Now().UTC()
		completed, err = d.repository.Complete(ctx, entities.DeliveryModify{
			ID:            &deliveryID,
			CourierID:     &courierID,
			DeliveredAt:   &deliveredAt,
			ProofPhotoURL: proofPhotoURL,
			CourierShare:  &courierShare,
			PlatformShare: &platformShare,
		})
		if err != nil {
			return fmt.Errorf("complete delivery: %w", err)
		}

		if err := d.orderRepository.UpdateStatus(ctx, delivery.OrderID, entities.OrderDelivered); err != nil {
			return fmt.Errorf("advance order status: %w", err)
		}

		order, err := d.orderRepository.GetByID(ctx, delivery.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		customerID = order.UserID
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.push.Notify(ctx, customerID, "DELIVERY_UPDATE",
		"Commande livrée !",
		"Votre commande a été livrée avec succès. Bon appétit !",
		deliveryData(deliveryID),
	)
	d.broadcaster.BroadcastStatus(deliveryID, entities.DeliveryDelivered)

	return completed, nil
}

// RateDelivery принимает ровно одну оценку 1–5 за доставку и
// пересчитывает средний рейтинг курьера с точностью до одного знака.
func (d *Delivery) RateDelivery(ctx context.Context, customerID, deliveryID int64, stars int32, comment *string) error {
	if deliveryID <= 0 {
		return ErrInvalidDeliveryID
	}
	if !isValidStars(stars) {
		return ErrInvalidStars
	}

	return d.txManager.Do(ctx, func(ctx context.Context) error {
		delivery, err := d.repository.GetByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		order, err := d.orderRepository.GetByID(ctx, delivery.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if order.UserID != customerID {
			return ErrForbidden
		}

		if delivery.Status != entities.DeliveryDelivered {
			return ErrUnexpectedStatus
		}
		if delivery.RatingStars != nil {
			return ErrAlreadyRated
		}
		if delivery.CourierID == nil {
			return ErrUnexpectedStatus
		}

		if err := d.repository.SetRating(ctx, deliveryID, stars, comment); err != nil {
			return fmt.Errorf("set rating: %w", err)
		}

		courier, err := d.courierRepository.GetByID(ctx, *delivery.CourierID)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}

		newAvg, newTotal := recalcRating(courier.AvgRating, courier.TotalRatings, stars)
		_, err = d.courierRepository.Update(ctx, entities.CourierModify{
			ID:           delivery.CourierID,
			AvgRating:    &newAvg,
			TotalRatings: &newTotal,
		})
		if err != nil {
			return fmt.Errorf("update courier rating: %w", err)
		}
		return nil
	})
}

func (d *Delivery) GetActiveDelivery(ctx context.Context, courierID int64) (*entities.Delivery, error) {
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}
	return d.repository.GetActiveByCourier(ctx, courierID)
}

// GetDeliveryByOrder — чтение для клиента, только владелец заказа.
func (d *Delivery) GetDeliveryByOrder(ctx context.Context, customerID int64, orderID string) (*entities.Delivery, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := d.orderRepository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order.UserID != customerID {
		return nil, ErrForbidden
	}

	return d.repository.GetByOrderID(ctx, orderID)
}

func (d *Delivery) GetCourierHistory(ctx context.Context, courierID, page, limit int64) ([]entities.Delivery, int64, error) {
	if courierID <= 0 {
		return nil, 0, ErrInvalidCourierID
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = historyDefaultLimit
	}
	if limit > historyMaxLimit {
		limit = historyMaxLimit
	}

	return d.repository.ListByCourier(ctx, courierID, limit, (page-1)*limit)
}

// ProcessExpiredAssignments — фоновая страховка пути истечения:
// при рестарте процесса in-memory маркеры теряются, и зависшие
// назначения добирает периодический обход БД.
func (d *Delivery) ProcessExpiredAssignments(ctx context.Context) (int64, error) {
	expired, err := d.repository.ListExpiredAssignments(ctx, cache.AcceptanceWindow)
	if err != nil {
		return 0, fmt.Errorf("list expired assignments: %w", err)
	}

	var processed int64
	for _, delivery := range expired {
		if delivery.CourierID == nil {
			continue
		}
		if err := d.HandleAcceptanceTimeout(ctx, delivery.ID, *delivery.CourierID); err != nil {
			d.log.With(
				logger.NewField("delivery", delivery.ID),
				logger.NewField("error", err),
			).Error("acceptance sweep failed for delivery")
			continue
		}
		processed++
	}
	return processed, nil
}

// RetryStaleSearches повторяет подбор для доставок, надолго застрявших
// в SEARCHING. Автоматической отмены нет намеренно: без курьера доставка
// ждёт ручного вмешательства или следующего прохода.
func (d *Delivery) RetryStaleSearches(ctx context.Context, olderThan time.Duration) (int64, error) {
	stale, err := d.repository.ListStaleSearching(ctx, olderThan)
	if err != nil {
		return 0, fmt.Errorf("list stale searching: %w", err)
	}

	var assigned int64
	for _, deliveryID := range stale {
		_, err := d.dispatcher.DispatchDelivery(ctx, deliveryID)
		switch {
		case err == nil:
			assigned++
		case errors.Is(err, dispatch.ErrNoCourierAvailable), errors.Is(err, dispatch.ErrDeliveryNotSearching):
		default:
			d.log.With(
				logger.NewField("delivery", deliveryID),
				logger.NewField("error", err),
			).Error("search retry failed for delivery")
		}
	}
	return assigned, nil
}

// guardAssignedCourier перечитывает долговечное состояние и проверяет
// право курьера действовать над доставкой в статусе ASSIGNED.
func (d *Delivery) guardAssignedCourier(ctx context.Context, courierID, deliveryID int64) (*entities.Delivery, error) {
	delivery, err := d.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	if delivery.CourierID == nil || *delivery.CourierID != courierID {
		return nil, ErrForbidden
	}
	if delivery.Status != entities.DeliveryAssigned {
		return nil, ErrUnexpectedStatus
	}
	return delivery, nil
}

func validateActor(courierID, deliveryID int64) error {
	if courierID <= 0 {
		return ErrInvalidCourierID
	}
	if deliveryID <= 0 {
		return ErrInvalidDeliveryID
	}
	return nil
}

func recalcRating(oldAvg float64, oldTotal int64, stars int32) (float64, int64) {
	newTotal := oldTotal + 1
	newAvg := (oldAvg*float64(oldTotal) + float64(stars)) / float64(newTotal)
	return math.Round(newAvg*10) / 10, newTotal
}

func generateConfirmationCode() string {
	return strconv.Itoa(1000 + rand.Intn(9000))
}

func deliveryData(deliveryID int64) map[string]string {
	return map[string]string{"deliveryId": strconv.FormatInt(deliveryID, 10)}
}
