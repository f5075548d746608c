//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=countdown_test
package countdown

import (
	"context"
	"time"

	"delivery-estimator/internal/entities"
)

type ServiceabilityService interface {
	GetAllServiceability(ctx context.Context) ([]entities.Serviceability, error)
}

type Estimator interface {
	Estimate(req entities.EstimationRequest) (entities.EstimationResult, error)
	Headline(result entities.EstimationResult, turnaroundDays int) string
}

type Publisher interface {
	PublishEstimateChange(ctx context.Context, change entities.EstimateChange) error
}

type Clock interface {
	Now() time.Time
}
