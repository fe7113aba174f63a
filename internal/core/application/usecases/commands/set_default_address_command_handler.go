package commands

import (
	"context"

	"agrimarket/internal/core/ports"
)

// SetDefaultAddressCommandHandler promotes a saved address to the buyer's
// default through the upstream address book.
type SetDefaultAddressCommandHandler struct {
	addresses ports.AddressClient
}

// NewSetDefaultAddressCommandHandler creates a handler over the upstream
// address book client.
func NewSetDefaultAddressCommandHandler(addresses ports.AddressClient) SetDefaultAddressCommandHandler {
	return SetDefaultAddressCommandHandler{
		addresses: addresses,
	}
}

// Handle processes the promotion.
func (h *SetDefaultAddressCommandHandler) Handle(ctx context.Context, cmd SetDefaultAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.addresses.SetDefaultAddress(ctx, cmd.Session(), cmd.AddressID())
}
