package ports

import (
	"context"
	"io"

	"agrimarket/internal/core/domain/model/address"
	"agrimarket/internal/core/domain/model/cart"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"
)

// CartClient is the upstream contract for the server-owned cart. The server
// is the final arbiter of stock and availability: every mutation may be
// rejected because another actor invalidated its precondition, and callers
// treat that as a normal outcome (errs.NotAvailableError), not a fault.
type CartClient interface {
	// GetCart fetches the full authoritative cart.
	GetCart(ctx context.Context, sess Session) (*cart.Cart, error)

	// UpdateQuantity writes one line's quantity.
	UpdateQuantity(ctx context.Context, sess Session, productID string, quantity int) error

	// AddItem puts a product into the cart.
	AddItem(ctx context.Context, sess Session, productID string, quantity int) error

	// RemoveItem deletes a line.
	RemoveItem(ctx context.Context, sess Session, productID string) error
}

// AddressClient is the upstream contract for the buyer's address book.
type AddressClient interface {
	GetAddresses(ctx context.Context, sess Session) ([]address.Address, error)

	// CreateAddress saves a new address and returns it with its upstream id.
	CreateAddress(ctx context.Context, sess Session, addr address.Address) (address.Address, error)

	// UpdateAddress overwrites a saved address.
	UpdateAddress(ctx context.Context, sess Session, addr address.Address) (address.Address, error)

	DeleteAddress(ctx context.Context, sess Session, addressID string) error

	SetDefaultAddress(ctx context.Context, sess Session, addressID string) error
}

// PaymentIntent is the gateway order issued by the upstream API, handed to
// the payment widget on the buyer's device.
type PaymentIntent struct {
	// Key is the gateway's publishable key for the widget.
	Key string

	// GatewayOrderID identifies this payment attempt at the gateway.
	GatewayOrderID string

	// Amount is the amount the gateway will collect.
	Amount kernel.Money

	// Currency is the ISO currency code, e.g. "INR".
	Currency string
}

// GatewayConfirmation is the signed triple the widget returns after a
// completed payment. The server, not this client, verifies the signature.
type GatewayConfirmation struct {
	GatewayOrderID string
	PaymentID      string
	Signature      string
}

// PaymentClient is the upstream contract for both settlement paths.
//
// Error contract:
//   - errs.PaymentFailedError with stage "intent" when intent creation fails
//   - errs.PaymentFailedError with stage "verification" when the signed
//     triple does not verify; a charge may still have happened, so the error
//     carries ContactSupport
//   - errs.NetworkFailureError for transport failures
type PaymentClient interface {
	// PlaceCodOrder places a deferred-settlement order in one request.
	// The resulting order has PaymentStatus Pending.
	PlaceCodOrder(ctx context.Context, sess Session, deliveryTo address.Address, notes string) (*order.Order, error)

	// CreateGatewayIntent requests a payment intent for the current cart.
	CreateGatewayIntent(ctx context.Context, sess Session) (PaymentIntent, error)

	// VerifyGatewayPayment forwards the signed triple for verification.
	// Only a successful verification yields a placed order.
	VerifyGatewayPayment(
		ctx context.Context,
		sess Session,
		confirmation GatewayConfirmation,
		deliveryTo address.Address,
		notes string,
	) (*order.Order, error)
}

// Invoice is a downloaded invoice document stream. Callers own Content and
// must close it.
type Invoice struct {
	Filename    string
	ContentType string
	Content     io.ReadCloser
}

// OrderClient is the upstream contract for placed orders and their
// lifecycle actions. Lifecycle actions are idempotent intents: the
// idempotency key is stable across retries of the same command, and the
// server deduplicates by order id and current status.
type OrderClient interface {
	GetOrders(ctx context.Context, sess Session) ([]*order.Order, error)

	GetOrder(ctx context.Context, sess Session, orderID string) (*order.Order, error)

	CancelOrder(ctx context.Context, sess Session, orderID string, reason order.Reason, idempotencyKey string) error

	RequestReturn(ctx context.Context, sess Session, orderID string, reason order.Reason, idempotencyKey string) error

	RequestReplacement(ctx context.Context, sess Session, orderID string, reason order.Reason, idempotencyKey string) error

	// DownloadInvoice streams the invoice PDF.
	DownloadInvoice(ctx context.Context, sess Session, orderID string) (Invoice, error)
}
