package search_retry

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	RetryStaleSearches(ctx context.Context, olderThan time.Duration) (int64, error)
}

// SearchRetry периодически повторяет подбор курьера для доставок,
// застрявших в поиске: позже могли выйти на линию новые курьеры или
// истечь часовые маркеры отказов.
type SearchRetry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func New(log logger.Logger, service Service, interval time.Duration) *SearchRetry {
	return &SearchRetry{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *SearchRetry) TTL() time.Duration {
	return s.interval
}

func (s *SearchRetry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	assigned, err := s.service.RetryStaleSearches(ctxWithTimeout, s.interval)

	if assigned > 0 {
		s.log.With(
			logger.NewField("assigned", assigned),
		).Info("search retry")
	}

	return err
}

func (s *SearchRetry) Info() string {
	return "search retry"
}
