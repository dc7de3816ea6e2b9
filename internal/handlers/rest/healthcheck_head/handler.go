package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler отвечает на HEAD /healthcheck. Во время остановки сервиса
// балансировщик получает 503 и перестаёт слать новые запросы.
type Handler struct {
	draining *atomic.Bool
}

func New(draining *atomic.Bool) *Handler {
	return &Handler{draining: draining}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	status := http.StatusNoContent
	if h.draining.Load() {
		status = http.StatusServiceUnavailable
	}
	w.WriteHeader(status)
}
