package order

import (
	"fmt"

	"agrimarket/internal/pkg/errs"
)

// Status represents the server-asserted lifecycle state of an order. The
// client never performs transitions itself; it only requests them. Status
// still matters locally because the set of actions offered to the buyer is a
// pure function of status and elapsed time since delivery.
//
// Lifecycle:
//
//	Placed ──> Confirmed ──> Processing ──> Shipped ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPlaced is the initial status right after checkout.
	StatusPlaced

	// StatusConfirmed indicates the vendor accepted the order.
	StatusConfirmed

	// StatusProcessing indicates the order is being prepared for dispatch.
	StatusProcessing

	// StatusShipped indicates the order is out for delivery.
	StatusShipped

	// StatusDelivered indicates the buyer received the order. DeliveredAt is
	// set exactly once by the server when this status is reached.
	StatusDelivered

	// StatusCancelled is a final state reached from Placed or Confirmed.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "UNKNOWN",
		StatusPlaced:     "PLACED",
		StatusConfirmed:  "CONFIRMED",
		StatusProcessing: "PROCESSING",
		StatusShipped:    "SHIPPED",
		StatusDelivered:  "DELIVERED",
		StatusCancelled:  "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPlaced:     "PLACED",
		StatusConfirmed:  "CONFIRMED",
		StatusProcessing: "PROCESSING",
		StatusShipped:    "SHIPPED",
		StatusDelivered:  "DELIVERED",
		StatusCancelled:  "CANCELLED",
	}
}

// StatusFromString parses the wire representation used by the upstream API.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"orderStatus",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderStatus",
			fmt.Errorf("%d is not a valid order status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
