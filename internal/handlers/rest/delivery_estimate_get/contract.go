//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_estimate_get_test
package delivery_estimate_get

import (
	"context"
	"time"

	"delivery-estimator/internal/entities"
	"delivery-estimator/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Estimate(ctx context.Context, provider entities.Provider, turnaroundDays int, now *time.Time) (*entities.DeliveryEstimate, error)
}
