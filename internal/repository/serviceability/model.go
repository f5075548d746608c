package serviceability

import "time"

type ServiceabilityDB struct {
	Pincode        string
	Provider       string
	TurnaroundDays int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ServiceabilityModifyDB struct {
	Pincode        *string
	Provider       *string
	TurnaroundDays *int
}
