package commands

import (
	"errors"

	"agrimarket/internal/core/domain/model/address"
	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/guard"
)

var ErrBeginGatewayCheckoutCommandIsNotConstructed = errors.New(
	"BeginGatewayCheckoutCommand must be created via NewBeginGatewayCheckoutCommand constructor",
)

// BeginGatewayCheckoutCommand represents the first step of the online
// payment path: create a payment intent upstream and park the buyer's
// address and notes until the widget reports back.
type BeginGatewayCheckoutCommand struct { //nolint:recvcheck //using for validation
	sess       ports.Session
	deliveryTo address.Address
	notes      string

	guard guard.ConstructorGuard
}

// NewBeginGatewayCheckoutCommand creates a command to open a gateway
// checkout. Validates the session and the delivery address.
func NewBeginGatewayCheckoutCommand(
	sess ports.Session,
	deliveryTo address.Address,
	notes string,
) (BeginGatewayCheckoutCommand, error) {
	beginCommand := BeginGatewayCheckoutCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		beginCommand.setSession(sess),
		beginCommand.setDeliveryTo(deliveryTo),
	); err != nil {
		return BeginGatewayCheckoutCommand{}, err
	}

	return beginCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c BeginGatewayCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrBeginGatewayCheckoutCommandIsNotConstructed)
}

// Session returns the buyer's session.
func (c BeginGatewayCheckoutCommand) Session() ports.Session {
	return c.sess
}

// DeliveryTo returns the delivery address to attach at verification time.
func (c BeginGatewayCheckoutCommand) DeliveryTo() address.Address {
	return c.deliveryTo
}

// Notes returns the buyer's free-text delivery notes.
func (c BeginGatewayCheckoutCommand) Notes() string {
	return c.notes
}

func (c *BeginGatewayCheckoutCommand) setSession(sess ports.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}

	c.sess = sess
	return nil
}

func (c *BeginGatewayCheckoutCommand) setDeliveryTo(deliveryTo address.Address) error {
	if err := deliveryTo.Validate(); err != nil {
		return err
	}

	c.deliveryTo = deliveryTo
	return nil
}
