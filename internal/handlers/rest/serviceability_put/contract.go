//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=serviceability_put_test
package serviceability_put

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
	UpsertServiceability(ctx context.Context, modify entities.ServiceabilityModify) (*entities.Serviceability, error)
}
