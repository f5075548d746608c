//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"delivery-estimator/internal/entities"
)

type ServiceabilityService interface {
	GetServiceability(ctx context.Context, pincode string) (*entities.Serviceability, error)
}

type StockRepository interface {
	GetByProductID(ctx context.Context, productID string) (*entities.Stock, error)
}

type Estimator interface {
	Estimate(req entities.EstimationRequest) (entities.EstimationResult, error)
	Headline(result entities.EstimationResult, turnaroundDays int) string
}

type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type TxManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
