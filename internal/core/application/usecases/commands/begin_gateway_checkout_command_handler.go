package commands

import (
	"context"
	"time"

	"agrimarket/internal/core/domain/services"
	"agrimarket/internal/core/ports"
)

// DefaultPendingCheckoutTTL bounds how long a gateway checkout may sit open
// before its parked state expires. Long enough to type card details, short
// enough that an abandoned widget cannot hold cart state for hours.
const DefaultPendingCheckoutTTL = 30 * time.Minute

// BeginGatewayCheckoutCommandHandler opens the online payment path: flush
// and validate the cart, create the upstream payment intent, and park the
// checkout state under the gateway order id until Complete or Abort.
type BeginGatewayCheckoutCommandHandler struct {
	carts      CartAccess
	validator  services.CheckoutValidator
	payments   ports.PaymentClient
	store      ports.CheckoutStore
	pendingTTL time.Duration
}

// NewBeginGatewayCheckoutCommandHandler creates a handler. A pendingTTL of
// zero or less selects DefaultPendingCheckoutTTL.
func NewBeginGatewayCheckoutCommandHandler(
	carts CartAccess,
	validator services.CheckoutValidator,
	payments ports.PaymentClient,
	store ports.CheckoutStore,
	pendingTTL time.Duration,
) BeginGatewayCheckoutCommandHandler {
	if pendingTTL <= 0 {
		pendingTTL = DefaultPendingCheckoutTTL
	}

	return BeginGatewayCheckoutCommandHandler{
		carts:      carts,
		validator:  validator,
		payments:   payments,
		store:      store,
		pendingTTL: pendingTTL,
	}
}

// Handle creates the payment intent and parks the pending checkout. The
// intent is returned for the browser widget; no order exists yet. A failure
// to park the state fails the whole step, because a widget the server cannot
// reconcile later must never open.
func (h *BeginGatewayCheckoutCommandHandler) Handle(
	ctx context.Context,
	cmd BeginGatewayCheckoutCommand,
) (ports.PaymentIntent, error) {
	if err := cmd.Validate(); err != nil {
		return ports.PaymentIntent{}, err
	}

	sync := h.carts.ForSession(cmd.Session())
	if err := sync.Flush(ctx); err != nil {
		return ports.PaymentIntent{}, err
	}

	if err := h.validator.Validate(sync.Cart(), cmd.DeliveryTo()); err != nil {
		return ports.PaymentIntent{}, err
	}

	intent, err := h.payments.CreateGatewayIntent(ctx, cmd.Session())
	if err != nil {
		return ports.PaymentIntent{}, err
	}

	pending := ports.PendingCheckout{
		GatewayOrderID: intent.GatewayOrderID,
		BuyerID:        cmd.Session().BuyerID,
		DeliveryTo:     cmd.DeliveryTo(),
		Notes:          cmd.Notes(),
		Amount:         intent.Amount,
		CreatedAt:      time.Now(),
	}
	if err := h.store.Put(ctx, pending, h.pendingTTL); err != nil {
		return ports.PaymentIntent{}, err
	}

	return intent, nil
}
