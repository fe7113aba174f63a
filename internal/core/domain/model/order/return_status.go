package order

import (
	"fmt"

	"agrimarket/internal/pkg/errs"
)

// ReturnStatus tracks a return request on a delivered order.
// ReturnNone is the valid default for orders without one.
type ReturnStatus int

const (
	// ReturnNone means no return has been requested.
	ReturnNone ReturnStatus = iota

	// ReturnRequested means the buyer asked for a return inside the window.
	ReturnRequested

	// ReturnApproved means the vendor accepted the return.
	ReturnApproved

	// ReturnRejected means the vendor declined the return.
	ReturnRejected
)

func getReturnStatusStrings() map[ReturnStatus]string {
	return map[ReturnStatus]string{
		ReturnNone:      "NONE",
		ReturnRequested: "REQUESTED",
		ReturnApproved:  "APPROVED",
		ReturnRejected:  "REJECTED",
	}
}

// ReturnStatusFromString parses the wire representation used by the upstream
// API. An empty string maps to ReturnNone.
func ReturnStatusFromString(s string) (ReturnStatus, error) {
	if s == "" {
		return ReturnNone, nil
	}
	for status, str := range getReturnStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return ReturnNone, errs.NewValueIsInvalidErrorWithCause(
		"returnStatus",
		fmt.Errorf("%q is not a valid return status", s),
	)
}

// Validate checks if the ReturnStatus value is valid.
// Unlike order and payment statuses the zero value (ReturnNone) is valid.
func (s ReturnStatus) Validate() error {
	if _, ok := getReturnStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"returnStatus",
			fmt.Errorf("%d is not a valid return status", s),
		)
	}
	return nil
}

// String returns the wire representation of the return status.
func (s ReturnStatus) String() string {
	if str, ok := getReturnStatusStrings()[s]; ok {
		return str
	}
	return "NONE"
}
