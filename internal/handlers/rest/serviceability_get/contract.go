//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=serviceability_get_test
package serviceability_get

import (
	"context"

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
	GetServiceability(ctx context.Context, pincode string) (*entities.Serviceability, error)
}
