package commands

import (
	"context"
	"time"

	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
)

// RequestReplacementCommandHandler requests a replacement for a delivered
// order, gated by the same window check as a return.
type RequestReplacementCommandHandler struct {
	orders ports.OrderClient
}

// NewRequestReplacementCommandHandler creates a handler over the upstream
// order client.
func NewRequestReplacementCommandHandler(orders ports.OrderClient) RequestReplacementCommandHandler {
	return RequestReplacementCommandHandler{
		orders: orders,
	}
}

// Handle fetches the order, verifies replacement is still allowed, and
// sends the idempotent replacement intent.
func (h *RequestReplacementCommandHandler) Handle(ctx context.Context, cmd RequestReplacementCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	current, err := h.orders.GetOrder(ctx, cmd.Session(), cmd.OrderID())
	if err != nil {
		return err
	}

	if !current.AvailableActions(time.Now()).CanReplace {
		return errs.NewNotAvailableError(cmd.OrderID(), "replacement window is closed for this order")
	}

	return h.orders.RequestReplacement(ctx, cmd.Session(), cmd.OrderID(), cmd.Reason(), cmd.IdempotencyKey())
}
