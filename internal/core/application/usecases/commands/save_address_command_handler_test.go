package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrimarket/internal/core/application/usecases/commands"
	"agrimarket/internal/core/domain/model/address"
)

func TestSaveAddressCommandHandler_Handle(t *testing.T) {
	t.Run("unsaved_address_is_created", func(t *testing.T) {
		ctx := t.Context()
		unsaved := testAddress(t, "")
		saved := testAddress(t, "addr-9")
		cmd, err := commands.NewSaveAddressCommand(testSession(), unsaved)
		require.NoError(t, err)

		client := new(MockAddressClient)
		client.On("CreateAddress", ctx, testSession(), unsaved).Return(saved, nil).Once()

		h := commands.NewSaveAddressCommandHandler(client)
		got, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "addr-9", got.ID())
		client.AssertExpectations(t)
	})

	t.Run("saved_address_is_updated_in_place", func(t *testing.T) {
		ctx := t.Context()
		saved := testAddress(t, "addr-1")
		cmd, err := commands.NewSaveAddressCommand(testSession(), saved)
		require.NoError(t, err)

		client := new(MockAddressClient)
		client.On("UpdateAddress", ctx, testSession(), saved).Return(saved, nil).Once()

		h := commands.NewSaveAddressCommandHandler(client)
		_, err = h.Handle(ctx, cmd)

		require.NoError(t, err)
		client.AssertNotCalled(t, "CreateAddress")
		client.AssertExpectations(t)
	})

	t.Run("unconstructed_command_never_reaches_the_client", func(t *testing.T) {
		client := new(MockAddressClient)
		h := commands.NewSaveAddressCommandHandler(client)

		_, err := h.Handle(t.Context(), commands.SaveAddressCommand{})

		require.ErrorIs(t, err, commands.ErrSaveAddressCommandIsNotConstructed)
		client.AssertNotCalled(t, "CreateAddress")
		client.AssertNotCalled(t, "UpdateAddress")
	})
}

// Addresses carry resolver-derived district and state; one that failed
// resolution cannot be constructed at all, which is what keeps it out of the
// save path.
func TestSaveAddress_UnresolvedDistrictIsUnrepresentable(t *testing.T) {
	pin, err := address.NewPincode("411001")
	require.NoError(t, err)

	_, err = address.NewAddress("", "Home", "12 Farm Road", pin, "", "", true)
	require.Error(t, err)
}
