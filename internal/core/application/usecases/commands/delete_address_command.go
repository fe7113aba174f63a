package commands

import (
	"errors"

	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
	"agrimarket/internal/pkg/guard"
)

var ErrDeleteAddressCommandIsNotConstructed = errors.New(
	"DeleteAddressCommand must be created via NewDeleteAddressCommand constructor",
)

// DeleteAddressCommand represents a request to remove a saved address from
// the buyer's address book.
type DeleteAddressCommand struct { //nolint:recvcheck //using for validation
	sess      ports.Session
	addressID string

	guard guard.ConstructorGuard
}

// NewDeleteAddressCommand creates a command to delete the named address.
func NewDeleteAddressCommand(sess ports.Session, addressID string) (DeleteAddressCommand, error) {
	deleteCommand := DeleteAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deleteCommand.setSession(sess),
		deleteCommand.setAddressID(addressID),
	); err != nil {
		return DeleteAddressCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAddressCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAddressCommandIsNotConstructed)
}

// Session returns the buyer's session.
func (c DeleteAddressCommand) Session() ports.Session {
	return c.sess
}

// AddressID returns the upstream id of the address to delete.
func (c DeleteAddressCommand) AddressID() string {
	return c.addressID
}

func (c *DeleteAddressCommand) setSession(sess ports.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}

	c.sess = sess
	return nil
}

func (c *DeleteAddressCommand) setAddressID(addressID string) error {
	if addressID == "" {
		return errs.NewValueIsRequiredError("addressID")
	}

	c.addressID = addressID
	return nil
}
