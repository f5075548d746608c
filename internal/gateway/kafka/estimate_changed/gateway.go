package estimate_changed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"delivery-estimator/internal/entities"
	retrierconfig "delivery-estimator/pkg/retrier"
	"delivery-estimator/pkg/retrier/backoff_adapter"
	"github.com/IBM/sarama"
)

const (
	targetName = "delivery.estimate.changed"
	methodName = "Publish"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type EstimateChangedGateway struct {
	producer producer
	retrier  retrier
}

func New(producer producer) *EstimateChangedGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return NewWithRetrier(producer, backoff_adapter.New(retryConfig))
}

func NewWithRetrier(producer producer, retrier retrier) *EstimateChangedGateway {
	return &EstimateChangedGateway{
		producer: producer,
		retrier:  retrier,
	}
}

// PublishEstimateChange sends one event keyed by pincode, so every change for a
// pincode lands on the same partition in order.
func (g *EstimateChangedGateway) PublishEstimateChange(ctx context.Context, change entities.EstimateChange) error {
	payload, err := json.Marshal(toEvent(change))
	if err != nil {
		return fmt.Errorf("marshal estimate change: %w", err)
	}

	err = g.executeWithMetrics(ctx, func(ctx context.Context) error {
		return g.producer.Publish(ctx, change.Pincode, payload)
	})
	if err != nil {
		return fmt.Errorf("gateway estimate changed, publish %s: %w", change.Pincode, err)
	}
	return nil
}

func isRetryable(err error) bool {
	switch {
	case errors.Is(err, sarama.ErrOutOfBrokers),
		errors.Is(err, sarama.ErrNotLeaderForPartition),
		errors.Is(err, sarama.ErrLeaderNotAvailable),
		errors.Is(err, sarama.ErrRequestTimedOut),
		errors.Is(err, sarama.ErrNotEnoughReplicas),
		errors.Is(err, sarama.ErrNotEnoughReplicasAfterAppend):
		return true
	default:
		return false
	}
}

func (g *EstimateChangedGateway) executeWithMetrics(ctx context.Context, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	result := resultLabel(err)
	GatewayRequestDuration.WithLabelValues(targetName, methodName, result).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(targetName, methodName, result).Inc()
	}

	return err
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case isRetryable(err):
		return "retryable_error"
	default:
		return "error"
	}
}
