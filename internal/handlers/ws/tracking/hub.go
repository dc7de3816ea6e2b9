package tracking

import (
	"encoding/json"
	"sync"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

// Hub рассылает события доставки подключённым наблюдателям.
// Комната — множество клиентов, следящих за одной доставкой.
// Рассылка at-most-once: медленный клиент отключается, не задерживая
// остальных.
type Hub struct {
	mu    sync.RWMutex
	rooms map[int64]map[*client]struct{}
	log   logger.Logger
}

func NewHub(log logger.Logger) *Hub {
	return &Hub{
		rooms: make(map[int64]map[*client]struct{}),
		log:   log.With(),
	}
}

type statusEvent struct {
	Event      string `json:"event"`
	DeliveryID int64  `json:"deliveryId"`
	Status     string `json:"status"`
	Timestamp  int64  `json:"timestamp"`
}

type locationEvent struct {
	Event      string   `json:"event"`
	DeliveryID int64    `json:"deliveryId"`
	Lat        float64  `json:"lat"`
	Lng        float64  `json:"lng"`
	Speed      *float64 `json:"speed,omitempty"`
	Timestamp  int64    `json:"timestamp"`
}

func (h *Hub) BroadcastStatus(deliveryID int64, status entities.DeliveryStatusType) {
	h.broadcast(deliveryID, statusEvent{
		Event:      "delivery-status",
		DeliveryID: deliveryID,
		Status:     status.String(),
		Timestamp:  time.Now().UnixMilli(),
	})
}

func (h *Hub) BroadcastLocation(deliveryID int64, position entities.Position) {
	h.broadcast(deliveryID, locationEvent{
		Event:      "courier-location",
		DeliveryID: deliveryID,
		Lat:        position.Lat,
		Lng:        position.Lng,
		Speed:      position.Speed,
		Timestamp:  position.UpdatedAt.UnixMilli(),
	})
}

func (h *Hub) broadcast(deliveryID int64, event interface{}) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.log.With(
			logger.NewField("delivery", deliveryID),
			logger.NewField("error", err),
		).Error("tracking hub failed to marshal event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.rooms[deliveryID] {
		if !c.enqueue(payload) {
			// Буфер клиента переполнен, отключаем его вне блокировки.
			go h.leaveAll(c)
		}
	}
}

func (h *Hub) join(deliveryID int64, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[deliveryID]
	if !ok {
		room = make(map[*client]struct{})
		h.rooms[deliveryID] = room
	}
	room[c] = struct{}{}
	c.joined[deliveryID] = struct{}{}
}

func (h *Hub) leaveAll(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for deliveryID := range c.joined {
		room, ok := h.rooms[deliveryID]
		if !ok {
			continue
		}
		delete(room, c)
		if len(room) == 0 {
			delete(h.rooms, deliveryID)
		}
	}
	c.close()
}
