package serviceability

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"delivery-estimator/internal/entities"
)

type Serviceability struct {
	repository Repository
}

func New(repository Repository) *Serviceability {
	return &Serviceability{
		repository: repository,
	}
}

func (s *Serviceability) GetServiceability(ctx context.Context, pincode string) (*entities.Serviceability, error) {
	pincode = strings.TrimSpace(pincode)
	if !IsValidPincode(pincode) {
		return nil, ErrInvalidPincode
	}

	entry, err := s.repository.GetByPincode(ctx, pincode)
	if err != nil {
		return nil, fmt.Errorf("get serviceability: %w", err)
	}
	return entry, nil
}

func (s *Serviceability) UpsertServiceability(ctx context.Context, modify entities.ServiceabilityModify) (*entities.Serviceability, error) {
	if modify.Pincode == nil ||
		modify.Provider == nil ||
		modify.TurnaroundDays == nil {
		return nil, ErrMissingRequiredFields
	}

	pincode := strings.TrimSpace(*modify.Pincode)
	if !IsValidPincode(pincode) {
		return nil, ErrInvalidPincode
	}
	if !isValidProvider(modify.Provider.String()) {
		return nil, ErrInvalidProvider
	}
	if !isValidTurnaround(*modify.TurnaroundDays) {
		return nil, ErrInvalidTurnaround
	}

	provider := entities.ParseProvider(modify.Provider.String())
	entry, err := s.repository.Upsert(ctx, entities.ServiceabilityModify{
		Pincode:        &pincode,
		Provider:       &provider,
		TurnaroundDays: modify.TurnaroundDays,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert serviceability: %w", err)
	}
	return entry, nil
}

func (s *Serviceability) GetAllServiceability(ctx context.Context) ([]entities.Serviceability, error) {
	entries, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list serviceability: %w", err)
	}
	return entries, nil
}

func (s *Serviceability) DeleteServiceability(ctx context.Context, pincode string) error {
	pincode = strings.TrimSpace(pincode)
	if !IsValidPincode(pincode) {
		return ErrInvalidPincode
	}

	if err := s.repository.Delete(ctx, pincode); err != nil {
		return fmt.Errorf("delete serviceability: %w", err)
	}
	return nil
}

// ProcessServiceabilityChange applies one event from the serviceability topic.
// Deleting an entry that is already gone is not an error, so redelivered events
// are harmless.
func (s *Serviceability) ProcessServiceabilityChange(ctx context.Context, change entities.ServiceabilityChange) error {
	if change.Deleted {
		err := s.DeleteServiceability(ctx, change.Pincode)
		if err != nil && !errors.Is(err, ErrServiceabilityNotFound) {
			return err
		}
		return nil
	}

	provider := change.Provider
	_, err := s.UpsertServiceability(ctx, entities.ServiceabilityModify{
		Pincode:        &change.Pincode,
		Provider:       &provider,
		TurnaroundDays: &change.TurnaroundDays,
	})
	return err
}
