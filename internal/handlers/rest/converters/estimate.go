// Package converters maps estimator entities onto the REST DTOs shared by the
// delivery handlers.
package converters

import (
	"delivery-estimator/internal/entities"
	"delivery-estimator/internal/generated/dto"
)

const deliveryDateLayout = "2006-01-02"

// Estimate leaves the date fields empty for an unavailable result.
func Estimate(result entities.EstimationResult) dto.Estimate {
	out := dto.Estimate{
		Available:       result.Available,
		SameDayEligible: result.SameDayEligible,
		UsesTatDelivery: result.UsesTatDelivery,
	}

	if result.Remaining != nil {
		out.Remaining = &dto.Remaining{
			Hours:   result.Remaining.Hours,
			Minutes: result.Remaining.Minutes,
		}
	}
	if result.Message != "" {
		out.Message = &result.Message
	}
	if !result.Available {
		return out
	}

	deliveryDate := result.DeliveryDate.Format(deliveryDateLayout)
	out.DayLabel = &result.DayLabel
	out.FormattedDate = &result.FormattedDate
	out.DeliveryDate = &deliveryDate

	return out
}
