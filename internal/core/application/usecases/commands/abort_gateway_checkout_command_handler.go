package commands

import (
	"context"
	"errors"

	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
)

// AbortGatewayCheckoutCommandHandler discards the parked state of a
// dismissed payment widget. No verification is attempted on this path; the
// cart is untouched and the buyer lands back on the checkout form.
type AbortGatewayCheckoutCommandHandler struct {
	store ports.CheckoutStore
}

// NewAbortGatewayCheckoutCommandHandler creates a handler over the pending
// checkout store.
func NewAbortGatewayCheckoutCommandHandler(store ports.CheckoutStore) AbortGatewayCheckoutCommandHandler {
	return AbortGatewayCheckoutCommandHandler{
		store: store,
	}
}

// Handle deletes the parked record. Aborting an id that already expired or
// was never parked succeeds: the end state, no pending checkout, holds
// either way. An id parked by a different buyer is left alone.
func (h *AbortGatewayCheckoutCommandHandler) Handle(ctx context.Context, cmd AbortGatewayCheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pending, err := h.store.Get(ctx, cmd.GatewayOrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}
	if pending.BuyerID != cmd.Session().BuyerID {
		return nil
	}

	return h.store.Delete(ctx, cmd.GatewayOrderID())
}
