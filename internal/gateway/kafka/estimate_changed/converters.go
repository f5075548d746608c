package estimate_changed

import (
	"time"

	"delivery-estimator/internal/entities"
)

const deliveryDateLayout = "2006-01-02"

type remainingEvent struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// estimateChangedEvent is the payload of delivery.estimate.changed.
type estimateChangedEvent struct {
	EventID         string          `json:"event_id"`
	Pincode         string          `json:"pincode"`
	Provider        string          `json:"provider"`
	TurnaroundDays  int             `json:"tat"`
	Available       bool            `json:"available"`
	SameDayEligible bool            `json:"same_day_eligible"`
	Remaining       *remainingEvent `json:"remaining,omitempty"`
	DayLabel        string          `json:"day_label,omitempty"`
	FormattedDate   string          `json:"formatted_date,omitempty"`
	DeliveryDate    string          `json:"delivery_date,omitempty"`
	UsesTatDelivery bool            `json:"uses_tat_delivery"`
	Message         string          `json:"message,omitempty"`
	Headline        string          `json:"headline"`
	ComputedAt      time.Time       `json:"computed_at"`
}

func toEvent(change entities.EstimateChange) estimateChangedEvent {
	result := change.Result
	event := estimateChangedEvent{
		EventID:         change.EventID,
		Pincode:         change.Pincode,
		Provider:        change.Provider.String(),
		TurnaroundDays:  change.TurnaroundDays,
		Available:       result.Available,
		SameDayEligible: result.SameDayEligible,
		DayLabel:        result.DayLabel,
		FormattedDate:   result.FormattedDate,
		UsesTatDelivery: result.UsesTatDelivery,
		Message:         result.Message,
		Headline:        change.Headline,
		ComputedAt:      change.ComputedAt,
	}

	if result.Remaining != nil {
		event.Remaining = &remainingEvent{
			Hours:   result.Remaining.Hours,
			Minutes: result.Remaining.Minutes,
		}
	}
	if !result.DeliveryDate.IsZero() {
		event.DeliveryDate = result.DeliveryDate.Format(deliveryDateLayout)
	}

	return event
}
