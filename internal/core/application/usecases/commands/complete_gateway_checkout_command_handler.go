package commands

import (
	"context"
	"log/slog"

	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
)

// CompleteGatewayCheckoutCommandHandler settles a gateway checkout: load the
// parked state, forward the signed triple for verification, and only then
// consider the order placed.
//
// A verification failure keeps the parked record. A charge may have happened
// at the gateway even though the triple did not verify, and the record is
// what server-side reconciliation has to work from.
type CompleteGatewayCheckoutCommandHandler struct {
	payments ports.PaymentClient
	store    ports.CheckoutStore
	carts    CartAccess
	logger   *slog.Logger
}

// NewCompleteGatewayCheckoutCommandHandler creates a handler.
func NewCompleteGatewayCheckoutCommandHandler(
	payments ports.PaymentClient,
	store ports.CheckoutStore,
	carts CartAccess,
	logger *slog.Logger,
) CompleteGatewayCheckoutCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return CompleteGatewayCheckoutCommandHandler{
		payments: payments,
		store:    store,
		carts:    carts,
		logger:   logger.With("component", "gateway_checkout"),
	}
}

// Handle verifies the payment and returns the placed order. An unknown or
// expired gateway order id fails without any verification attempt. A parked
// record belonging to a different buyer is reported as not found rather than
// revealing that the id exists.
func (h *CompleteGatewayCheckoutCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteGatewayCheckoutCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	confirmation := cmd.Confirmation()
	pending, err := h.store.Get(ctx, confirmation.GatewayOrderID)
	if err != nil {
		return nil, err
	}
	if pending.BuyerID != cmd.Session().BuyerID {
		return nil, errs.NewObjectNotFoundError("gatewayOrderID", confirmation.GatewayOrderID)
	}

	placed, err := h.payments.VerifyGatewayPayment(
		ctx,
		cmd.Session(),
		confirmation,
		pending.DeliveryTo,
		pending.Notes,
	)
	if err != nil {
		h.logger.Warn("gateway payment verification failed, pending record kept",
			"gateway_order_id", confirmation.GatewayOrderID,
			"error", err,
		)
		return nil, err
	}

	if err := h.store.Delete(ctx, confirmation.GatewayOrderID); err != nil {
		// The order is placed; an expiring leftover record is acceptable.
		h.logger.Warn("failed to delete settled pending checkout",
			"gateway_order_id", confirmation.GatewayOrderID,
			"error", err,
		)
	}

	h.carts.Evict(cmd.Session().BuyerID)
	return placed, nil
}
