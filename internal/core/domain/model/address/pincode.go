package address

import (
	"fmt"

	"agrimarket/internal/pkg/errs"
)

// PincodeLength is the exact number of digits in an Indian postal code.
const PincodeLength = 6

// Pincode is a value object for a 6-digit postal code. The zero value is
// invalid; a Pincode can only be obtained through NewPincode, which accepts
// raw user input and sanitizes it first.
//
// Example usage:
//
//	pin, err := address.NewPincode("560 001")
//	if err != nil {
//	    // fewer or more than 6 digits
//	}
//	pin.String() // "560001"
type Pincode struct {
	value string
}

// SanitizeInput strips everything but digits from raw input and truncates the
// result to PincodeLength digits. It is applied on every edit of the postal
// code field, before completeness is checked, so pasted values like
// "560 001" or "PIN-560001" normalize to "560001".
func SanitizeInput(raw string) string {
	digits := make([]byte, 0, PincodeLength)
	for i := 0; i < len(raw) && len(digits) < PincodeLength; i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}
	return string(digits)
}

// IsComplete reports whether sanitized input contains exactly PincodeLength
// digits. Resolution is only triggered for complete input.
func IsComplete(sanitized string) bool {
	return len(sanitized) == PincodeLength
}

// NewPincode sanitizes raw input and constructs a Pincode.
// Returns a validation error when fewer than 6 digits remain.
func NewPincode(raw string) (Pincode, error) {
	sanitized := SanitizeInput(raw)
	if !IsComplete(sanitized) {
		return Pincode{}, errs.NewValueIsInvalidErrorWithCause(
			"pincode",
			fmt.Errorf("%q does not contain exactly %d digits", raw, PincodeLength),
		)
	}
	return Pincode{value: sanitized}, nil
}

// String returns the 6-digit code.
func (p Pincode) String() string {
	return p.value
}

// IsEqual compares two pincodes by value.
func (p Pincode) IsEqual(other Pincode) bool {
	return p.value == other.value
}

// Validate returns an error for the zero value.
func (p Pincode) Validate() error {
	if p.value == "" {
		return errs.NewValueIsRequiredError("pincode must be created via NewPincode")
	}
	return nil
}
