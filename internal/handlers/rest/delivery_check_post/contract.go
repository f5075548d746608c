//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_check_post_test
package delivery_check_post

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
	CheckDelivery(ctx context.Context, productID, pincode string) (*entities.DeliveryCheck, error)
}
