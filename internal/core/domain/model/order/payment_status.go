package order

import (
	"fmt"

	"agrimarket/internal/pkg/errs"
)

// PaymentStatus represents the server-asserted settlement state of an order.
// A deferred-settlement (cash on delivery) order starts and stays Pending
// until collection; a gateway-settled order is Paid from creation.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending means payment is yet to be collected.
	PaymentPending

	// PaymentPaid means the gateway confirmed and the server verified payment.
	PaymentPaid

	// PaymentFailed means a gateway payment did not go through.
	PaymentFailed

	// PaymentRefunded means a collected payment was returned to the buyer.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:  "UNKNOWN",
		PaymentPending:  "PENDING",
		PaymentPaid:     "PAID",
		PaymentFailed:   "FAILED",
		PaymentRefunded: "REFUNDED",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending:  "PENDING",
		PaymentPaid:     "PAID",
		PaymentFailed:   "FAILED",
		PaymentRefunded: "REFUNDED",
	}
}

// PaymentStatusFromString parses the wire representation used by the upstream API.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getValidPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the wire representation of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
