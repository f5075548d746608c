package serviceability

import "strings"

const pincodeLength = 6

// IsValidPincode accepts exactly six ASCII digits.
func IsValidPincode(pincode string) bool {
	if len(pincode) != pincodeLength {
		return false
	}
	for i := 0; i < len(pincode); i++ {
		if pincode[i] < '0' || pincode[i] > '9' {
			return false
		}
	}
	return true
}

func isValidProvider(provider string) bool {
	return strings.TrimSpace(provider) != ""
}

func isValidTurnaround(days int) bool {
	return days >= 0
}
