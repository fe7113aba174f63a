package queries

import (
	"context"
	"time"

	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/core/ports"
)

// OrderDetail is one order together with the lifecycle actions currently
// open to the buyer, evaluated against the clock at query time.
type OrderDetail struct {
	Order   *order.Order
	Actions order.Actions
}

// GetOrderQueryHandler fetches one order and computes its available actions.
type GetOrderQueryHandler struct {
	orders ports.OrderClient
}

// NewGetOrderQueryHandler creates a handler over the upstream order client.
func NewGetOrderQueryHandler(orders ports.OrderClient) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orders: orders,
	}
}

// Handle fetches the order detail.
func (h *GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return OrderDetail{}, err
	}

	fetched, err := h.orders.GetOrder(ctx, query.Session(), query.OrderID())
	if err != nil {
		return OrderDetail{}, err
	}

	return OrderDetail{
		Order:   fetched,
		Actions: fetched.AvailableActions(time.Now()),
	}, nil
}
