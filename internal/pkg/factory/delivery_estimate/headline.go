package delivery_estimate

import (
	"fmt"

	"delivery-estimator/internal/entities"
)

// Headline renders the one-line text shown next to the countdown clock.
func Headline(result entities.EstimationResult, turnaroundDays int) string {
	switch {
	case !result.Available:
		return result.Message
	case result.SameDayEligible && result.Remaining != nil:
		return fmt.Sprintf("Order within %d hrs %d mins to get it by %s",
			result.Remaining.Hours, result.Remaining.Minutes, entities.DayLabelToday)
	case result.UsesTatDelivery:
		return fmt.Sprintf("Estimated delivery by %s, %s (%d days)",
			result.DayLabel, result.FormattedDate, turnaroundDays)
	default:
		return fmt.Sprintf("Get it by %s, %s", result.DayLabel, result.FormattedDate)
	}
}
