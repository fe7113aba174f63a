package marketplace

import (
	"context"
	"mime"
	"net/http"
	"net/url"

	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/core/ports"
)

// GetOrders lists the buyer's orders.
func (c *Client) GetOrders(ctx context.Context, sess ports.Session) ([]*order.Order, error) {
	var dtos []orderDTO
	if err := c.do(ctx, sess, http.MethodGet, "/orders", nil, &dtos, nil); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// GetOrder fetches one order.
func (c *Client) GetOrder(ctx context.Context, sess ports.Session, orderID string) (*order.Order, error) {
	var dto orderDTO
	if err := c.do(ctx, sess, http.MethodGet, "/orders/"+url.PathEscape(orderID), nil, &dto, nil); err != nil {
		return nil, err
	}
	return dto.toDomain()
}

type lifecycleRequest struct {
	ReasonCode string `json:"reasonCode"`
	ReasonText string `json:"reasonText,omitempty"`
}

func lifecycleBody(reason order.Reason) lifecycleRequest {
	return lifecycleRequest{
		ReasonCode: string(reason.Code()),
		ReasonText: reason.Text(),
	}
}

func idempotencyHeader(key string) map[string]string {
	return map[string]string{"Idempotency-Key": key}
}

// CancelOrder sends the idempotent cancel intent.
func (c *Client) CancelOrder(
	ctx context.Context, sess ports.Session, orderID string, reason order.Reason, idempotencyKey string,
) error {
	path := "/orders/" + url.PathEscape(orderID) + "/cancel"
	return c.do(ctx, sess, http.MethodPut, path, lifecycleBody(reason), nil, idempotencyHeader(idempotencyKey))
}

// RequestReturn sends the idempotent return intent.
func (c *Client) RequestReturn(
	ctx context.Context, sess ports.Session, orderID string, reason order.Reason, idempotencyKey string,
) error {
	path := "/orders/" + url.PathEscape(orderID) + "/return"
	return c.do(ctx, sess, http.MethodPost, path, lifecycleBody(reason), nil, idempotencyHeader(idempotencyKey))
}

// RequestReplacement sends the idempotent replacement intent.
func (c *Client) RequestReplacement(
	ctx context.Context, sess ports.Session, orderID string, reason order.Reason, idempotencyKey string,
) error {
	path := "/orders/" + url.PathEscape(orderID) + "/replace"
	return c.do(ctx, sess, http.MethodPost, path, lifecycleBody(reason), nil, idempotencyHeader(idempotencyKey))
}

// DownloadInvoice streams the invoice document. The filename comes from the
// Content-Disposition header when the upstream sets one; the query layer
// falls back to the order number otherwise.
func (c *Client) DownloadInvoice(ctx context.Context, sess ports.Session, orderID string) (ports.Invoice, error) {
	resp, err := c.stream(ctx, sess, "/orders/"+url.PathEscape(orderID)+"/invoice")
	if err != nil {
		return ports.Invoice{}, err
	}

	invoice := ports.Invoice{
		ContentType: resp.Header.Get("Content-Type"),
		Content:     resp.Body,
	}
	if disposition := resp.Header.Get("Content-Disposition"); disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil {
			invoice.Filename = params["filename"]
		}
	}
	return invoice, nil
}
