package delivery_estimate

import "errors"

var (
	ErrMissingNow         = errors.New("estimation time is required")
	ErrNegativeTurnaround = errors.New("turnaround days must not be negative")
)
