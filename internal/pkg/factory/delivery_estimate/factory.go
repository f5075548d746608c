// Package delivery_estimate turns a logistics provider, a turnaround time and an
// evaluation instant into a delivery estimate.
//
// Cutoffs are wall-clock times in the location of the supplied instant, so the
// caller decides the timezone by converting Now before calling Estimate.
// Estimate holds no state and is safe for concurrent use.
package delivery_estimate

import (
	"fmt"
	"time"

	"delivery-estimator/internal/entities"
)

const (
	providerACutoffHour = 17
	providerBCutoffHour = 9

	dateLayout = "2 Jan"
)

type DeliveryEstimateFactory struct{}

func New() *DeliveryEstimateFactory {
	return &DeliveryEstimateFactory{}
}

func (f *DeliveryEstimateFactory) Estimate(req entities.EstimationRequest) (entities.EstimationResult, error) {
	return Estimate(req)
}

func (f *DeliveryEstimateFactory) Headline(result entities.EstimationResult, turnaroundDays int) string {
	return Headline(result, turnaroundDays)
}

// Estimate applies the provider rules:
//
//	Provider A       before 17:00 same day, otherwise Now+TAT skipping Sundays
//	Provider B       before 09:00 same day, otherwise the next calendar day
//	General Partners always Now+TAT skipping Sundays
//	anything else    no estimate, Available is false
//
// Same-day requires Now strictly before the cutoff; at the cutoff instant the
// fallback applies.
func Estimate(req entities.EstimationRequest) (entities.EstimationResult, error) {
	if req.Now.IsZero() {
		return entities.EstimationResult{}, ErrMissingNow
	}
	if req.TurnaroundDays < 0 {
		return entities.EstimationResult{}, fmt.Errorf("%w: got %d", ErrNegativeTurnaround, req.TurnaroundDays)
	}

	now := req.Now

	switch req.Provider {
	case entities.ProviderA:
		cutoff := cutoffOf(now, providerACutoffHour)
		if now.Before(cutoff) {
			return sameDay(now, cutoff), nil
		}
		return tatDelivery(now, req.TurnaroundDays), nil

	case entities.ProviderB:
		cutoff := cutoffOf(now, providerBCutoffHour)
		if now.Before(cutoff) {
			return sameDay(now, cutoff), nil
		}
		return nextDay(now), nil

	case entities.GeneralPartners:
		return tatDelivery(now, req.TurnaroundDays), nil

	default:
		return entities.EstimationResult{
			Available: false,
			Message:   entities.MessageDeliveryInfoNotAvailable,
		}, nil
	}
}

func sameDay(now, cutoff time.Time) entities.EstimationResult {
	left := cutoff.Sub(now)
	today := dateOf(now)

	return entities.EstimationResult{
		Available:       true,
		SameDayEligible: true,
		Remaining: &entities.Remaining{
			Hours:   int(left / time.Hour),
			Minutes: int(left % time.Hour / time.Minute),
		},
		DayLabel:      entities.DayLabelToday,
		FormattedDate: today.Format(dateLayout),
		DeliveryDate:  today,
	}
}

func tatDelivery(now time.Time, turnaroundDays int) entities.EstimationResult {
	date := addDays(dateOf(now), turnaroundDays)
	for date.Weekday() == time.Sunday {
		date = addDays(date, 1)
	}

	return entities.EstimationResult{
		Available:       true,
		DayLabel:        date.Weekday().String(),
		FormattedDate:   date.Format(dateLayout),
		DeliveryDate:    date,
		UsesTatDelivery: true,
	}
}

func nextDay(now time.Time) entities.EstimationResult {
	today := dateOf(now)
	date := addDays(today, 1)

	return entities.EstimationResult{
		Available:     true,
		DayLabel:      dayLabel(today, date),
		FormattedDate: date.Format(dateLayout),
		DeliveryDate:  date,
	}
}

// dayLabel says "Tomorrow" only for the next calendar day when it is not a Sunday.
func dayLabel(today, date time.Time) string {
	if sameDate(addDays(today, 1), date) && date.Weekday() != time.Sunday {
		return entities.DayLabelTomorrow
	}
	return date.Weekday().String()
}

func cutoffOf(now time.Time, hour int) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, hour, 0, 0, 0, now.Location())
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// addDays works on calendar days, so month and year rollover and DST shifts are
// handled by time.Date normalisation.
func addDays(date time.Time, days int) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d+days, 0, 0, 0, 0, date.Location())
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
