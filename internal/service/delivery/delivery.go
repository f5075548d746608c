package delivery

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"delivery-estimator/internal/entities"
	"delivery-estimator/internal/service/serviceability"
)

type Delivery struct {
	serviceability ServiceabilityService
	stock          StockRepository
	estimator      Estimator
	clock          Clock
	txManager      TxManager
}

func New(
	serviceabilityService ServiceabilityService,
	stock StockRepository,
	estimator Estimator,
	clock Clock,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		serviceability: serviceabilityService,
		stock:          stock,
		estimator:      estimator,
		clock:          clock,
		txManager:      txManager,
	}
}

// CheckDelivery answers "when would this product reach this pincode": the
// stock gate runs first, then the pincode lookup, then the estimate at the
// current time. Both reads share one snapshot. An empty productID skips the
// stock gate.
func (d *Delivery) CheckDelivery(ctx context.Context, productID, pincode string) (*entities.DeliveryCheck, error) {
	pincode = strings.TrimSpace(pincode)
	if !serviceability.IsValidPincode(pincode) {
		return nil, ErrInvalidPincode
	}
	productID = strings.TrimSpace(productID)

	now := d.clock.Now()

	var (
		outOfStock bool
		entry      *entities.Serviceability
	)
	err := d.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		if productID != "" {
			inStock, err := d.inStock(ctx, productID)
			if err != nil {
				return err
			}
			if !inStock {
				outOfStock = true
				return nil
			}
		}

		var err error
		entry, err = d.serviceability.GetServiceability(ctx, pincode)
		if err != nil {
			if errors.Is(err, serviceability.ErrServiceabilityNotFound) {
				return ErrPincodeNotServiceable
			}
			return fmt.Errorf("lookup pincode: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if outOfStock {
		return &entities.DeliveryCheck{
			ProductID:  productID,
			Pincode:    pincode,
			Available:  false,
			OutOfStock: true,
			Message:    entities.MessageOutOfStock,
			CheckedAt:  now,
		}, nil
	}

	result, err := d.estimator.Estimate(entities.EstimationRequest{
		Provider:       entry.Provider,
		TurnaroundDays: entry.TurnaroundDays,
		Now:            now,
	})
	if err != nil {
		return nil, fmt.Errorf("estimate: %w", err)
	}

	return &entities.DeliveryCheck{
		ProductID:      productID,
		Pincode:        pincode,
		Available:      result.Available,
		Message:        d.estimator.Headline(result, entry.TurnaroundDays),
		Provider:       entry.Provider,
		TurnaroundDays: entry.TurnaroundDays,
		Estimate:       &result,
		CheckedAt:      now,
	}, nil
}

// Estimate evaluates the rule for a caller supplied provider and turnaround.
// A nil now means the current time; either way the instant is read in the
// delivery timezone.
func (d *Delivery) Estimate(
	ctx context.Context,
	provider entities.Provider,
	turnaroundDays int,
	now *time.Time,
) (*entities.DeliveryEstimate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(provider.String()) == "" {
		return nil, ErrMissingProvider
	}
	if turnaroundDays < 0 {
		return nil, ErrInvalidTurnaround
	}

	var at time.Time
	if now != nil {
		at = now.In(d.clock.Location())
	} else {
		at = d.clock.Now()
	}

	req := entities.EstimationRequest{
		Provider:       entities.ParseProvider(provider.String()),
		TurnaroundDays: turnaroundDays,
		Now:            at,
	}

	result, err := d.estimator.Estimate(req)
	if err != nil {
		return nil, fmt.Errorf("estimate: %w", err)
	}

	return &entities.DeliveryEstimate{
		Request:  req,
		Result:   result,
		Headline: d.estimator.Headline(result, turnaroundDays),
	}, nil
}

// unknown products count as in stock
func (d *Delivery) inStock(ctx context.Context, productID string) (bool, error) {
	stock, err := d.stock.GetByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return true, nil
		}
		return false, fmt.Errorf("get stock: %w", err)
	}
	return stock.Available, nil
}
