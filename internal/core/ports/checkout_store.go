package ports

import (
	"context"
	"time"

	"agrimarket/internal/core/domain/model/address"
	"agrimarket/internal/core/domain/model/kernel"
)

// PendingCheckout is the state parked between creating a gateway payment
// intent and receiving (or not receiving) the widget's signed confirmation.
// It exists so the verify step can reattach the address and notes the buyer
// chose at begin time, and so an aborted widget leaves nothing behind.
type PendingCheckout struct {
	GatewayOrderID string
	BuyerID        string
	DeliveryTo     address.Address
	Notes          string
	Amount         kernel.Money
	CreatedAt      time.Time
}

// CheckoutStore holds pending gateway checkouts for the short window the
// payment widget is open. Entries expire on their own (TTL) so a browser
// that vanished mid-payment cannot park state forever.
//
// Error contract: Get returns errs.ObjectNotFoundError for an unknown or
// expired gateway order id.
type CheckoutStore interface {
	Put(ctx context.Context, pending PendingCheckout, ttl time.Duration) error

	Get(ctx context.Context, gatewayOrderID string) (PendingCheckout, error)

	Delete(ctx context.Context, gatewayOrderID string) error
}
