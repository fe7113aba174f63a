package queries

import (
	"context"

	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/core/ports"
)

// GetOrdersQueryHandler lists the buyer's orders, newest first as the
// upstream returns them.
type GetOrdersQueryHandler struct {
	orders ports.OrderClient
}

// NewGetOrdersQueryHandler creates a handler over the upstream order client.
func NewGetOrdersQueryHandler(orders ports.OrderClient) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{
		orders: orders,
	}
}

// Handle fetches the order history.
func (h *GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orders.GetOrders(ctx, query.Session())
}
