package entities

import "time"

const (
	DayLabelToday    = "Today"
	DayLabelTomorrow = "Tomorrow"

	MessageDeliveryInfoNotAvailable = "Delivery information not available"
)

type EstimationRequest struct {
	Provider       Provider
	TurnaroundDays int
	Now            time.Time
}

// Remaining is the time left before the same-day cutoff, floored to whole minutes.
type Remaining struct {
	Hours   int
	Minutes int
}

type EstimationResult struct {
	// Available is false only when the provider is not recognised.
	Available       bool
	SameDayEligible bool
	// Remaining is set if and only if SameDayEligible is true.
	Remaining       *Remaining
	DayLabel        string
	FormattedDate   string
	DeliveryDate    time.Time
	UsesTatDelivery bool
	Message         string
}

// DeliveryEstimate is an estimate together with the line shown to the customer.
type DeliveryEstimate struct {
	Request  EstimationRequest
	Result   EstimationResult
	Headline string
}
