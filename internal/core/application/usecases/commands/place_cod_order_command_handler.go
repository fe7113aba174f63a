package commands

import (
	"context"

	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/core/domain/services"
	"agrimarket/internal/core/ports"
)

// PlaceCodOrderCommandHandler handles the deferred-settlement checkout path:
// one upstream request, no gateway involvement. Pending quantity writes are
// flushed first so the order is placed against the cart the buyer sees.
type PlaceCodOrderCommandHandler struct {
	carts     CartAccess
	validator services.CheckoutValidator
	payments  ports.PaymentClient
}

// NewPlaceCodOrderCommandHandler creates a handler wired to the cart
// registry, the checkout validator, and the upstream payment client.
func NewPlaceCodOrderCommandHandler(
	carts CartAccess,
	validator services.CheckoutValidator,
	payments ports.PaymentClient,
) PlaceCodOrderCommandHandler {
	return PlaceCodOrderCommandHandler{
		carts:     carts,
		validator: validator,
		payments:  payments,
	}
}

// Handle flushes the cart, validates the checkout preconditions, and places
// the order. On success the buyer's synchronizer is evicted: the upstream
// has emptied the cart, and the next view must start from a fresh fetch.
func (h *PlaceCodOrderCommandHandler) Handle(ctx context.Context, cmd PlaceCodOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	sync := h.carts.ForSession(cmd.Session())
	if err := sync.Flush(ctx); err != nil {
		return nil, err
	}

	if err := h.validator.Validate(sync.Cart(), cmd.DeliveryTo()); err != nil {
		return nil, err
	}

	placed, err := h.payments.PlaceCodOrder(ctx, cmd.Session(), cmd.DeliveryTo(), cmd.Notes())
	if err != nil {
		return nil, err
	}

	h.carts.Evict(cmd.Session().BuyerID)
	return placed, nil
}
