package commands

import (
	"errors"

	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
	"agrimarket/internal/pkg/guard"
)

var ErrSetDefaultAddressCommandIsNotConstructed = errors.New(
	"SetDefaultAddressCommand must be created via NewSetDefaultAddressCommand constructor",
)

// SetDefaultAddressCommand represents a request to mark one saved address as
// the buyer's default. The upstream clears the flag on the previous default.
type SetDefaultAddressCommand struct { //nolint:recvcheck //using for validation
	sess      ports.Session
	addressID string

	guard guard.ConstructorGuard
}

// NewSetDefaultAddressCommand creates a command to promote the named address.
func NewSetDefaultAddressCommand(sess ports.Session, addressID string) (SetDefaultAddressCommand, error) {
	defaultCommand := SetDefaultAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		defaultCommand.setSession(sess),
		defaultCommand.setAddressID(addressID),
	); err != nil {
		return SetDefaultAddressCommand{}, err
	}

	return defaultCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDefaultAddressCommand) Validate() error {
	return c.guard.Validate(ErrSetDefaultAddressCommandIsNotConstructed)
}

// Session returns the buyer's session.
func (c SetDefaultAddressCommand) Session() ports.Session {
	return c.sess
}

// AddressID returns the upstream id of the address to promote.
func (c SetDefaultAddressCommand) AddressID() string {
	return c.addressID
}

func (c *SetDefaultAddressCommand) setSession(sess ports.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}

	c.sess = sess
	return nil
}

func (c *SetDefaultAddressCommand) setAddressID(addressID string) error {
	if addressID == "" {
		return errs.NewValueIsRequiredError("addressID")
	}

	c.addressID = addressID
	return nil
}
