package queries

import (
	"context"

	"agrimarket/internal/core/application/cartsync"
)

// GetCartQueryHandler serves the buyer's cart view from the synchronizer.
// The upstream cart is refetched, but lines with an uncommitted local edit
// keep their local quantity, so a pending debounced write never visibly
// snaps back in the response.
type GetCartQueryHandler struct {
	carts CartAccess
}

// NewGetCartQueryHandler creates a handler over the synchronizer registry.
func NewGetCartQueryHandler(carts CartAccess) GetCartQueryHandler {
	return GetCartQueryHandler{
		carts: carts,
	}
}

// Handle refreshes and snapshots the cart.
func (h *GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (cartsync.View, error) {
	if err := query.Validate(); err != nil {
		return cartsync.View{}, err
	}

	sync := h.carts.ForSession(query.Session())
	if err := sync.Refresh(ctx); err != nil {
		return cartsync.View{}, err
	}

	return sync.Snapshot(), nil
}
