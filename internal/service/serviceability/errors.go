package serviceability

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPincode        = errors.New("invalid pincode")
	ErrInvalidProvider       = errors.New("invalid provider")
	ErrInvalidTurnaround     = errors.New("invalid turnaround days")

	ErrServiceabilityNotFound = errors.New("serviceability not found")
)
