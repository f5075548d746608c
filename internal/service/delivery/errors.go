package delivery

import "errors"

var (
	ErrInvalidPincode    = errors.New("please enter a valid 6-digit pincode")
	ErrInvalidTurnaround = errors.New("invalid turnaround days")
	ErrMissingProvider   = errors.New("missing provider")
	ErrProductNotFound   = errors.New("product not found")

	ErrPincodeNotServiceable = errors.New("delivery not available at this location")
)
