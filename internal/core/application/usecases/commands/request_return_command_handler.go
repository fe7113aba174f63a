package commands

import (
	"context"
	"time"

	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
)

// RequestReturnCommandHandler requests a return for a delivered order. The
// return window is re-checked at handling time: an order delivered more than
// the window ago fails here, before any upstream call.
type RequestReturnCommandHandler struct {
	orders ports.OrderClient
}

// NewRequestReturnCommandHandler creates a handler over the upstream order
// client.
func NewRequestReturnCommandHandler(orders ports.OrderClient) RequestReturnCommandHandler {
	return RequestReturnCommandHandler{
		orders: orders,
	}
}

// Handle fetches the order, verifies the return window is still open, and
// sends the idempotent return intent.
func (h *RequestReturnCommandHandler) Handle(ctx context.Context, cmd RequestReturnCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	current, err := h.orders.GetOrder(ctx, cmd.Session(), cmd.OrderID())
	if err != nil {
		return err
	}

	if !current.AvailableActions(time.Now()).CanReturn {
		return errs.NewNotAvailableError(cmd.OrderID(), "return window is closed for this order")
	}

	return h.orders.RequestReturn(ctx, cmd.Session(), cmd.OrderID(), cmd.Reason(), cmd.IdempotencyKey())
}
