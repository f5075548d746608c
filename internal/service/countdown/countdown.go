// Package countdown re-evaluates every serviceable pincode on each tick and
// publishes the estimates whose visible output changed since the previous tick.
package countdown

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"delivery-estimator/internal/entities"
	"github.com/google/uuid"
)

// signature is the part of an estimate a customer can see.
type signature struct {
	provider        entities.Provider
	turnaroundDays  int
	available       bool
	sameDayEligible bool
	hours           int
	minutes         int
	dayLabel        string
	formattedDate   string
	usesTatDelivery bool
}

type Countdown struct {
	serviceability ServiceabilityService
	estimator      Estimator
	publisher      Publisher
	clock          Clock
	newID          func() string

	mu       sync.Mutex
	snapshot map[string]signature
}

func New(
	serviceabilityService ServiceabilityService,
	estimator Estimator,
	publisher Publisher,
	clock Clock,
) *Countdown {
	return &Countdown{
		serviceability: serviceabilityService,
		estimator:      estimator,
		publisher:      publisher,
		clock:          clock,
		newID:          uuid.NewString,
		snapshot:       make(map[string]signature),
	}
}

// Tick evaluates all pincodes at one instant and returns how many change
// events were published. A pincode whose publish fails keeps its previous
// snapshot and is retried on the next tick.
func (c *Countdown) Tick(ctx context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.serviceability.GetAllServiceability(ctx)
	if err != nil {
		return 0, fmt.Errorf("list serviceability: %w", err)
	}

	now := c.clock.Now()
	seen := make(map[string]struct{}, len(entries))

	var (
		published   int
		errs        []error
		interrupted bool
	)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			interrupted = true
			break
		}
		seen[entry.Pincode] = struct{}{}

		result, err := c.estimator.Estimate(entities.EstimationRequest{
			Provider:       entry.Provider,
			TurnaroundDays: entry.TurnaroundDays,
			Now:            now,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("estimate %s: %w", entry.Pincode, err))
			continue
		}

		sig := signatureOf(entry, result)
		if prev, ok := c.snapshot[entry.Pincode]; ok && prev == sig {
			continue
		}

		err = c.publisher.PublishEstimateChange(ctx, entities.EstimateChange{
			EventID:        c.newID(),
			Pincode:        entry.Pincode,
			Provider:       entry.Provider,
			TurnaroundDays: entry.TurnaroundDays,
			Result:         result,
			Headline:       c.estimator.Headline(result, entry.TurnaroundDays),
			ComputedAt:     now,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("publish %s: %w", entry.Pincode, err))
			continue
		}

		c.snapshot[entry.Pincode] = sig
		published++
	}

	// an interrupted pass has not seen every pincode, so nothing is pruned
	if !interrupted {
		for pincode := range c.snapshot {
			if _, ok := seen[pincode]; !ok {
				delete(c.snapshot, pincode)
			}
		}
	}

	return published, errors.Join(errs...)
}

func signatureOf(entry entities.Serviceability, result entities.EstimationResult) signature {
	sig := signature{
		provider:        entry.Provider,
		turnaroundDays:  entry.TurnaroundDays,
		available:       result.Available,
		sameDayEligible: result.SameDayEligible,
		dayLabel:        result.DayLabel,
		formattedDate:   result.FormattedDate,
		usesTatDelivery: result.UsesTatDelivery,
	}
	if result.Remaining != nil {
		sig.hours = result.Remaining.Hours
		sig.minutes = result.Remaining.Minutes
	}
	return sig
}
