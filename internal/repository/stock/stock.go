package stock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delivery-estimator/internal/entities"
	"delivery-estimator/internal/service/delivery"
	"github.com/jackc/pgx/v5"
)

type StockDB struct {
	ProductID string
	Quantity  int
	UpdatedAt time.Time
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetByProductID only reads stock; the stock table is maintained elsewhere.
func (r *Repository) GetByProductID(ctx context.Context, productID string) (*entities.Stock, error) {
	query := `SELECT product_id, quantity, updated_at
		FROM stock
		WHERE product_id = $1`

	var model StockDB
	err := r.querier.QueryRow(ctx, query, productID).Scan(
		&model.ProductID,
		&model.Quantity,
		&model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrProductNotFound
		}
		return nil, fmt.Errorf("unexpected stock repository getbyproductid error: %w", err)
	}

	return &entities.Stock{
		ProductID: model.ProductID,
		Available: model.Quantity > 0,
	}, nil
}
