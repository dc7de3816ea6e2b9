package tracking

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"dispatch/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handler обслуживает websocket-подключения наблюдателей и курьеров.
// Клиент шлёт join-delivery для подписки на события и update-location
// для передачи координат активной доставки.
type Handler struct {
	hub             *Hub
	trackingService Service
	log             handlerLogger
}

func New(log handlerLogger, hub *Hub, trackingService Service) *Handler {
	return &Handler{
		hub:             hub,
		trackingService: trackingService,
		log:             log.With(),
	}
}

type inboundFrame struct {
	Event      string   `json:"event"`
	DeliveryID int64    `json:"deliveryId"`
	Lat        float64  `json:"lat"`
	Lng        float64  `json:"lng"`
	Speed      *float64 `json:"speed,omitempty"`
}

type ackFrame struct {
	Event      string `json:"event"`
	DeliveryID int64  `json:"deliveryId,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Warn("tracking ws upgrade failed")
		return
	}

	c := newClient(conn)
	go c.writePump()
	h.readPump(r, c)
}

func (h *Handler) readPump(r *http.Request, c *client) {
	defer h.hub.leaveAll(c)

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var frame inboundFrame
		if err := json.Unmarshal(payload, &frame); err != nil {
			h.reply(c, ackFrame{Event: "error", Error: "bad frame"})
			continue
		}

		switch frame.Event {
		case "join-delivery":
			if frame.DeliveryID <= 0 {
				h.reply(c, ackFrame{Event: "error", Error: "bad delivery id"})
				continue
			}
			h.hub.join(frame.DeliveryID, c)
			h.reply(c, ackFrame{Event: "joined", DeliveryID: frame.DeliveryID})

		case "update-location":
			_, err := h.trackingService.RecordLocation(r.Context(), frame.DeliveryID, frame.Lat, frame.Lng, frame.Speed)
			if err != nil {
				h.log.With(
					logger.NewField("delivery", frame.DeliveryID),
					logger.NewField("error", err),
				).Warn("tracking ws failed to record location")
				h.reply(c, ackFrame{Event: "error", DeliveryID: frame.DeliveryID, Error: "location rejected"})
				continue
			}
			h.reply(c, ackFrame{Event: "location-saved", DeliveryID: frame.DeliveryID})

		default:
			h.reply(c, ackFrame{Event: "error", Error: "unknown event"})
		}
	}
}

func (h *Handler) reply(c *client, frame ackFrame) {
	payload, err := json.Marshal(frame)
	if err != nil {
		return
	}
	c.enqueue(payload)
}
