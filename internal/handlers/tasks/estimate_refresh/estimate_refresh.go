package estimate_refresh

import (
	"context"
	"time"

	"delivery-estimator/pkg/logger"
)

type Service interface {
	Tick(ctx context.Context) (int, error)
}

// EstimateRefresh drives the countdown: every interval all estimates are
// recomputed and the changed ones published.
type EstimateRefresh struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewEstimateRefresh(log logger.Logger, service Service, interval time.Duration) *EstimateRefresh {
	return &EstimateRefresh{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (e *EstimateRefresh) TTL() time.Duration {
	return e.interval
}

func (e *EstimateRefresh) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, e.interval)
	defer cancel()

	published, err := e.service.Tick(ctxWithTimeout)

	if published > 0 {
		e.log.With(
			logger.NewField("published", published),
		).Info("estimate refresh")
	}

	return err
}

func (e *EstimateRefresh) Info() string {
	return "estimate refresh"
}
