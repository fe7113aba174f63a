package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrimarket/internal/core/application/usecases/commands"
	"agrimarket/internal/core/domain/model/address"
	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
)

func TestNewSaveAddressCommand(t *testing.T) {
	t.Run("valid_command", func(t *testing.T) {
		cmd, err := commands.NewSaveAddressCommand(testSession(), testAddress(t, "addr-1"))

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "addr-1", cmd.Address().ID())
	})

	t.Run("rejects_anonymous_session", func(t *testing.T) {
		_, err := commands.NewSaveAddressCommand(ports.Session{}, testAddress(t, "addr-1"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
	})

	t.Run("rejects_unconstructed_address", func(t *testing.T) {
		_, err := commands.NewSaveAddressCommand(testSession(), address.Address{})

		require.Error(t, err)
	})

	t.Run("zero_value_fails_validate", func(t *testing.T) {
		var cmd commands.SaveAddressCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrSaveAddressCommandIsNotConstructed)
	})
}
