package converters

import (
	"delivery-estimator/internal/entities"
	"delivery-estimator/internal/generated/dto"
)

func Serviceability(entry entities.Serviceability) dto.Serviceability {
	return dto.Serviceability{
		Pincode:   entry.Pincode,
		Provider:  entry.Provider.String(),
		Tat:       entry.TurnaroundDays,
		UpdatedAt: entry.UpdatedAt,
	}
}

func ServiceabilityList(entries []entities.Serviceability) []dto.Serviceability {
	out := make([]dto.Serviceability, 0, len(entries))
	for _, entry := range entries {
		out = append(out, Serviceability(entry))
	}
	return out
}
