package marketplace

import (
	"context"
	"net/http"
	"net/url"

	"agrimarket/internal/core/domain/model/cart"
	"agrimarket/internal/core/ports"
)

// GetCart fetches the authoritative cart.
func (c *Client) GetCart(ctx context.Context, sess ports.Session) (*cart.Cart, error) {
	var dto cartDTO
	if err := c.do(ctx, sess, http.MethodGet, "/cart", nil, &dto, nil); err != nil {
		return nil, err
	}
	return dto.toDomain()
}

// UpdateQuantity writes one line's quantity.
func (c *Client) UpdateQuantity(ctx context.Context, sess ports.Session, productID string, quantity int) error {
	body := struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}{ProductID: productID, Quantity: quantity}

	return c.do(ctx, sess, http.MethodPatch, "/cart/update", body, nil, nil)
}

// AddItem puts a product into the cart.
func (c *Client) AddItem(ctx context.Context, sess ports.Session, productID string, quantity int) error {
	body := struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}{ProductID: productID, Quantity: quantity}

	return c.do(ctx, sess, http.MethodPost, "/cart/add", body, nil, nil)
}

// RemoveItem deletes a line.
func (c *Client) RemoveItem(ctx context.Context, sess ports.Session, productID string) error {
	return c.do(ctx, sess, http.MethodDelete, "/cart/remove/"+url.PathEscape(productID), nil, nil, nil)
}
