//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=serviceability_test
package serviceability

import (
	"context"

	"delivery-estimator/internal/entities"
)

type Repository interface {
	Upsert(ctx context.Context, entry entities.ServiceabilityModify) (*entities.Serviceability, error)
	GetByPincode(ctx context.Context, pincode string) (*entities.Serviceability, error)
	GetAll(ctx context.Context) ([]entities.Serviceability, error)
	Delete(ctx context.Context, pincode string) error
}
