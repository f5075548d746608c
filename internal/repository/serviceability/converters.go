package serviceability

import (
	"delivery-estimator/internal/entities"
)

func ToDomain(s *ServiceabilityDB) *entities.Serviceability {
	if s == nil {
		return nil
	}

	return &entities.Serviceability{
		Pincode:        s.Pincode,
		Provider:       entities.ParseProvider(s.Provider),
		TurnaroundDays: s.TurnaroundDays,
		UpdatedAt:      s.UpdatedAt,
	}
}

func FromDomainModify(modify *entities.ServiceabilityModify) *ServiceabilityModifyDB {
	if modify == nil {
		return nil
	}
	modifyDB := &ServiceabilityModifyDB{
		Pincode:        modify.Pincode,
		TurnaroundDays: modify.TurnaroundDays,
	}

	if modify.Provider != nil {
		provider := modify.Provider.String()
		modifyDB.Provider = &provider
	}

	return modifyDB
}

func ToDomainList(entriesDB []ServiceabilityDB) []entities.Serviceability {
	if len(entriesDB) == 0 {
		return []entities.Serviceability{}
	}

	result := make([]entities.Serviceability, len(entriesDB))
	for i := range entriesDB {
		result[i] = *ToDomain(&entriesDB[i])
	}
	return result
}
