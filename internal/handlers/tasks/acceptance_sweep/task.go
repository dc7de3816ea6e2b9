package acceptance_sweep

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	ProcessExpiredAssignments(ctx context.Context) (int64, error)
}

// AcceptanceSweep — страховочный обход БД для назначений, у которых
// окно принятия истекло, а in-memory маркер был потерян (рестарт
// процесса). Основной путь истечения — хук кеша маркеров.
type AcceptanceSweep struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func New(log logger.Logger, service Service, interval time.Duration) *AcceptanceSweep {
	return &AcceptanceSweep{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *AcceptanceSweep) TTL() time.Duration {
	return s.interval
}

func (s *AcceptanceSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	processed, err := s.service.ProcessExpiredAssignments(ctxWithTimeout)

	if processed > 0 {
		s.log.With(
			logger.NewField("expired_assignments", processed),
		).Info("acceptance sweep")
	}

	return err
}

func (s *AcceptanceSweep) Info() string {
	return "acceptance sweep"
}
