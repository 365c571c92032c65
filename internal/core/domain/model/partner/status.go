package partner

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status is the administrative state of a partner business.
type Status int

const (
	// Unknown (0) catches uninitialised values.
	Unknown Status = iota
	// Pending is the state right after registration, before verification.
	Pending
	// Active partners take part in assignment.
	Active
	// Inactive partners paused their business themselves.
	Inactive
	// Suspended partners were paused by an administrator.
	Suspended
	// Rejected partners failed verification.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Active:    "active",
		Inactive:  "inactive",
		Suspended: "suspended",
		Rejected:  "rejected",
	}
}

// ParseStatus converts the wire name of a partner status.
func ParseStatus(raw string) (Status, error) {
	for s, name := range getStatusStrings() {
		if s != Unknown && name == raw {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid partner status", raw))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Rejected {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid partner status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
