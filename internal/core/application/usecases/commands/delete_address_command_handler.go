package commands

import (
	"context"

	"agrimarket/internal/core/ports"
)

// DeleteAddressCommandHandler removes an address from the upstream address
// book.
type DeleteAddressCommandHandler struct {
	addresses ports.AddressClient
}

// NewDeleteAddressCommandHandler creates a handler over the upstream address
// book client.
func NewDeleteAddressCommandHandler(addresses ports.AddressClient) DeleteAddressCommandHandler {
	return DeleteAddressCommandHandler{
		addresses: addresses,
	}
}

// Handle processes the deletion.
func (h *DeleteAddressCommandHandler) Handle(ctx context.Context, cmd DeleteAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.addresses.DeleteAddress(ctx, cmd.Session(), cmd.AddressID())
}
