package entities

import "time"

// Serviceability is one row of the pincode lookup table.
type Serviceability struct {
	Pincode        string
	Provider       Provider
	TurnaroundDays int
	UpdatedAt      time.Time
}

type ServiceabilityModify struct {
	Pincode        *string
	Provider       *Provider
	TurnaroundDays *int
}

// ServiceabilityChange is an update coming from the logistics feed.
type ServiceabilityChange struct {
	Pincode        string
	Provider       Provider
	TurnaroundDays int
	Deleted        bool
}
