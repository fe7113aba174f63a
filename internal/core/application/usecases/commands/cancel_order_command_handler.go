package commands

import (
	"context"
	"time"

	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order. The current status is checked
// against the action matrix before the upstream call: a cancel that lost the
// race with fulfilment fails here with an availability error rather than
// surfacing an upstream rejection.
type CancelOrderCommandHandler struct {
	orders ports.OrderClient
}

// NewCancelOrderCommandHandler creates a handler over the upstream order
// client.
func NewCancelOrderCommandHandler(orders ports.OrderClient) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		orders: orders,
	}
}

// Handle fetches the order, verifies cancellation is still allowed, and
// sends the idempotent cancel intent.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	current, err := h.orders.GetOrder(ctx, cmd.Session(), cmd.OrderID())
	if err != nil {
		return err
	}

	if !current.AvailableActions(time.Now()).CanCancel {
		return errs.NewNotAvailableError(cmd.OrderID(), "order can no longer be cancelled")
	}

	return h.orders.CancelOrder(ctx, cmd.Session(), cmd.OrderID(), cmd.Reason(), cmd.IdempotencyKey())
}
