package queries

import (
	"context"

	"agrimarket/internal/core/domain/model/address"
	"agrimarket/internal/core/ports"
)

// GetAddressesQueryHandler lists the buyer's saved addresses from the
// upstream address book.
type GetAddressesQueryHandler struct {
	addresses ports.AddressClient
}

// NewGetAddressesQueryHandler creates a handler over the upstream address
// book client.
func NewGetAddressesQueryHandler(addresses ports.AddressClient) GetAddressesQueryHandler {
	return GetAddressesQueryHandler{
		addresses: addresses,
	}
}

// Handle fetches the address book.
func (h *GetAddressesQueryHandler) Handle(ctx context.Context, query GetAddressesQuery) ([]address.Address, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.addresses.GetAddresses(ctx, query.Session())
}
