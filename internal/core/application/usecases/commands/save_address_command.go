package commands

import (
	"errors"

	"agrimarket/internal/core/domain/model/address"
	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/guard"
)

var ErrSaveAddressCommandIsNotConstructed = errors.New(
	"SaveAddressCommand must be created via NewSaveAddressCommand constructor",
)

// SaveAddressCommand represents a request to save a delivery address, either
// creating a new one or overwriting a saved one (the address carries its
// upstream id in that case). The address must already hold resolver-derived
// district and state; an address that failed resolution cannot be built, so
// it cannot be saved.
//
// Example:
//
//	addr, err := address.NewAddress("", "Home", "12 Farm Rd", pin, "Pune", "Maharashtra", true)
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewSaveAddressCommand(sess, addr)
//	if err != nil {
//	    return err
//	}
type SaveAddressCommand struct { //nolint:recvcheck //using for validation
	sess ports.Session
	addr address.Address

	guard guard.ConstructorGuard
}

// NewSaveAddressCommand creates a command to save an address for the
// session's buyer. Validates the session and the address.
func NewSaveAddressCommand(sess ports.Session, addr address.Address) (SaveAddressCommand, error) {
	saveCommand := SaveAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		saveCommand.setSession(sess),
		saveCommand.setAddress(addr),
	); err != nil {
		return SaveAddressCommand{}, err
	}

	return saveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveAddressCommand) Validate() error {
	return c.guard.Validate(ErrSaveAddressCommandIsNotConstructed)
}

// Session returns the buyer's session.
func (c SaveAddressCommand) Session() ports.Session {
	return c.sess
}

// Address returns the address to save.
func (c SaveAddressCommand) Address() address.Address {
	return c.addr
}

func (c *SaveAddressCommand) setSession(sess ports.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}

	c.sess = sess
	return nil
}

func (c *SaveAddressCommand) setAddress(addr address.Address) error {
	if err := addr.Validate(); err != nil {
		return err
	}

	c.addr = addr
	return nil
}
