package marketplace

import (
	"context"
	"net/http"
	"net/url"

	"agrimarket/internal/core/domain/model/address"
	"agrimarket/internal/core/ports"
)

// GetAddresses lists the buyer's saved addresses.
func (c *Client) GetAddresses(ctx context.Context, sess ports.Session) ([]address.Address, error) {
	var dtos []addressDTO
	if err := c.do(ctx, sess, http.MethodGet, "/addresses", nil, &dtos, nil); err != nil {
		return nil, err
	}

	addresses := make([]address.Address, 0, len(dtos))
	for _, dto := range dtos {
		addr, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, addr)
	}
	return addresses, nil
}

// CreateAddress saves a new address and returns it with its upstream id.
func (c *Client) CreateAddress(ctx context.Context, sess ports.Session, addr address.Address) (address.Address, error) {
	var dto addressDTO
	if err := c.do(ctx, sess, http.MethodPost, "/addresses", addressFromDomain(addr), &dto, nil); err != nil {
		return address.Address{}, err
	}
	return dto.toDomain()
}

// UpdateAddress overwrites a saved address.
func (c *Client) UpdateAddress(ctx context.Context, sess ports.Session, addr address.Address) (address.Address, error) {
	var dto addressDTO
	path := "/addresses/" + url.PathEscape(addr.ID())
	if err := c.do(ctx, sess, http.MethodPut, path, addressFromDomain(addr), &dto, nil); err != nil {
		return address.Address{}, err
	}
	return dto.toDomain()
}

// DeleteAddress removes a saved address.
func (c *Client) DeleteAddress(ctx context.Context, sess ports.Session, addressID string) error {
	return c.do(ctx, sess, http.MethodDelete, "/addresses/"+url.PathEscape(addressID), nil, nil, nil)
}

// SetDefaultAddress promotes a saved address to the buyer's default.
func (c *Client) SetDefaultAddress(ctx context.Context, sess ports.Session, addressID string) error {
	path := "/addresses/" + url.PathEscape(addressID) + "/default"
	return c.do(ctx, sess, http.MethodPut, path, nil, nil, nil)
}
