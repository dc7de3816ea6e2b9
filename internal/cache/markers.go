package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"dispatch/internal/entities"
)

const (
	// AcceptanceWindow — время, за которое курьер обязан принять назначение.
	AcceptanceWindow = 60 * time.Second

	// RejectionTTL — срок, на который отказавшийся курьер исключается
	// из повторного подбора по этой же доставке.
	RejectionTTL = time.Hour

	positionTTL = 5 * time.Minute
)

const (
	pendingSuffix  = ":pending_acceptance"
	deliveryPrefix = "delivery:"
)

// ExpiryFunc вызывается по истечении окна принятия назначения.
// Вызов происходит в отдельной горутине кеша: обработчик обязан сам
// перечитать статус доставки в БД, кеш — только подсказка.
type ExpiryFunc func(deliveryID, courierID int64)

// Markers — быстрый TTL-кеш маркеров диспетчеризации и последних позиций.
// Не является источником правды: авторитетен только статус в Postgres.
type Markers struct {
	markers          *ttlcache.Cache[string, int64]
	positions        *ttlcache.Cache[string, entities.Position]
	acceptanceWindow time.Duration
}

type Option func(*Markers)

// WithAcceptanceWindow переопределяет окно принятия, нужно только тестам.
func WithAcceptanceWindow(window time.Duration) Option {
	return func(m *Markers) {
		m.acceptanceWindow = window
	}
}

func NewMarkers(opts ...Option) *Markers {
	m := &Markers{
		acceptanceWindow: AcceptanceWindow,
		markers: ttlcache.New[string, int64](
			ttlcache.WithDisableTouchOnHit[string, int64](),
		),
		positions: ttlcache.New[string, entities.Position](
			ttlcache.WithTTL[string, entities.Position](positionTTL),
			ttlcache.WithDisableTouchOnHit[string, entities.Position](),
		),
	}

	for _, opt := range opts {
		opt(m)
	}

	go m.markers.Start()
	go m.positions.Start()

	return m
}

// OnAcceptanceExpired регистрирует обработчик истечения окна принятия.
// Удаление маркера через ClearPendingAcceptance обработчик не вызывает.
func (m *Markers) OnAcceptanceExpired(fn ExpiryFunc) {
	m.markers.OnEviction(func(_ context.Context, reason ttlcache.EvictionReason, item *ttlcache.Item[string, int64]) {
		if reason != ttlcache.EvictionReasonExpired {
			return
		}

		deliveryID, ok := parsePendingKey(item.Key())
		if !ok {
			return
		}

		fn(deliveryID, item.Value())
	})
}

func (m *Markers) SetPendingAcceptance(deliveryID, courierID int64) {
	m.markers.Set(pendingKey(deliveryID), courierID, m.acceptanceWindow)
}

func (m *Markers) ClearPendingAcceptance(deliveryID int64) {
	m.markers.Delete(pendingKey(deliveryID))
}

func (m *Markers) PendingCourier(deliveryID int64) (int64, bool) {
	item := m.markers.Get(pendingKey(deliveryID))
	if item == nil {
		return 0, false
	}
	return item.Value(), true
}

func (m *Markers) MarkRejected(deliveryID, courierID int64) {
	m.markers.Set(rejectedKey(deliveryID, courierID), courierID, RejectionTTL)
}

func (m *Markers) IsRejected(deliveryID, courierID int64) bool {
	return m.markers.Has(rejectedKey(deliveryID, courierID))
}

func (m *Markers) SetCourierPosition(courierID int64, position entities.Position) {
	m.positions.Set(courierPositionKey(courierID), position, ttlcache.DefaultTTL)
}

func (m *Markers) CourierPosition(courierID int64) (entities.Position, bool) {
	item := m.positions.Get(courierPositionKey(courierID))
	if item == nil {
		return entities.Position{}, false
	}
	return item.Value(), true
}

func (m *Markers) SetDeliveryPosition(deliveryID int64, position entities.Position) {
	m.positions.Set(deliveryPositionKey(deliveryID), position, ttlcache.DefaultTTL)
}

func (m *Markers) DeliveryPosition(deliveryID int64) (entities.Position, bool) {
	item := m.positions.Get(deliveryPositionKey(deliveryID))
	if item == nil {
		return entities.Position{}, false
	}
	return item.Value(), true
}

func (m *Markers) Stop() {
	m.markers.Stop()
	m.positions.Stop()
}

func pendingKey(deliveryID int64) string {
	return fmt.Sprintf("delivery:%d%s", deliveryID, pendingSuffix)
}

func rejectedKey(deliveryID, courierID int64) string {
	return fmt.Sprintf("delivery:%d:rejected:%d", deliveryID, courierID)
}

func courierPositionKey(courierID int64) string {
	return fmt.Sprintf("courier:location:%d", courierID)
}

func deliveryPositionKey(deliveryID int64) string {
	return fmt.Sprintf("delivery:location:%d", deliveryID)
}

func parsePendingKey(key string) (int64, bool) {
	if !strings.HasPrefix(key, deliveryPrefix) || !strings.HasSuffix(key, pendingSuffix) {
		return 0, false
	}

	raw := strings.TrimSuffix(strings.TrimPrefix(key, deliveryPrefix), pendingSuffix)
	deliveryID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return deliveryID, true
}
