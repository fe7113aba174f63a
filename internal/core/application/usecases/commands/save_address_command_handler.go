package commands

import (
	"context"

	"agrimarket/internal/core/domain/model/address"
	"agrimarket/internal/core/ports"
)

// SaveAddressCommandHandler writes an address to the buyer's upstream
// address book. A saved address (one with an id) is overwritten in place;
// an unsaved one is created and comes back carrying its new id.
type SaveAddressCommandHandler struct {
	addresses ports.AddressClient
}

// NewSaveAddressCommandHandler creates a handler over the upstream address
// book client.
func NewSaveAddressCommandHandler(addresses ports.AddressClient) SaveAddressCommandHandler {
	return SaveAddressCommandHandler{
		addresses: addresses,
	}
}

// Handle processes the save, routing to create or update by whether the
// address already has an upstream id. Returns the saved address as the
// upstream reports it.
func (h *SaveAddressCommandHandler) Handle(ctx context.Context, cmd SaveAddressCommand) (address.Address, error) {
	if err := cmd.Validate(); err != nil {
		return address.Address{}, err
	}

	if cmd.Address().IsSaved() {
		return h.addresses.UpdateAddress(ctx, cmd.Session(), cmd.Address())
	}
	return h.addresses.CreateAddress(ctx, cmd.Session(), cmd.Address())
}
