package entities

import "time"

const MessageOutOfStock = "Currently out of stock"

type DeliveryCheck struct {
	ProductID      string
	Pincode        string
	Available      bool
	OutOfStock     bool
	Message        string
	Provider       Provider
	TurnaroundDays int
	Estimate       *EstimationResult
	CheckedAt      time.Time
}

// EstimateChange is published when a periodic re-evaluation produces a result
// that differs from the previous one for the same pincode.
type EstimateChange struct {
	EventID        string
	Pincode        string
	Provider       Provider
	TurnaroundDays int
	Result         EstimationResult
	Headline       string
	ComputedAt     time.Time
}
