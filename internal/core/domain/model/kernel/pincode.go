package kernel

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

const pincodeLength = 6

// ErrPincodeIsNotConstructed is returned when validating a zero-value Pincode.
var ErrPincodeIsNotConstructed = errs.NewValueIsRequiredError("pincode")

// Pincode is the six digit postal code used to match orders with the service
// areas of partners. The first digit is never zero.
type Pincode struct {
	code string
}

// NewPincode trims surrounding whitespace and validates the code.
func NewPincode(raw string) (Pincode, error) {
	code := strings.TrimSpace(raw)
	if code == "" {
		return Pincode{}, ErrPincodeIsNotConstructed
	}
	if len(code) != pincodeLength {
		return Pincode{}, errs.NewValueIsInvalidErrorWithCause(
			"pincode",
			fmt.Errorf("%q must have %d digits", code, pincodeLength),
		)
	}
	for i, r := range code {
		if r < '0' || r > '9' || (i == 0 && r == '0') {
			return Pincode{}, errs.NewValueIsInvalidErrorWithCause(
				"pincode",
				fmt.Errorf("%q is not a valid postal code", code),
			)
		}
	}
	return Pincode{code: code}, nil
}

func (p Pincode) String() string {
	return p.code
}

func (p Pincode) IsEqual(other Pincode) bool {
	return p.code == other.code
}

func (p Pincode) Validate() error {
	if p.code == "" {
		return ErrPincodeIsNotConstructed
	}
	return nil
}

func (p Pincode) MarshalText() ([]byte, error) {
	return []byte(p.code), nil
}
