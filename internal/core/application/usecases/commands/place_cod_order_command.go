package commands

import (
	"errors"

	"agrimarket/internal/core/domain/model/address"
	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/guard"
)

var ErrPlaceCodOrderCommandIsNotConstructed = errors.New(
	"PlaceCodOrderCommand must be created via NewPlaceCodOrderCommand constructor",
)

// PlaceCodOrderCommand represents a request to place an order with payment
// deferred to delivery. The delivery address must be submittable: built
// through the address constructor with resolver-derived district and state.
//
// Example:
//
//	cmd, err := NewPlaceCodOrderCommand(sess, addr, "leave at the gate")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewPlaceCodOrderCommandHandler(carts, validator, payments)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("order %s placed, payment pending", placed.Number())
type PlaceCodOrderCommand struct { //nolint:recvcheck //using for validation
	sess       ports.Session
	deliveryTo address.Address
	notes      string

	guard guard.ConstructorGuard
}

// NewPlaceCodOrderCommand creates a command to place a pay-on-delivery
// order. Validates the session and the delivery address. Notes may be empty.
func NewPlaceCodOrderCommand(
	sess ports.Session,
	deliveryTo address.Address,
	notes string,
) (PlaceCodOrderCommand, error) {
	codCommand := PlaceCodOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		codCommand.setSession(sess),
		codCommand.setDeliveryTo(deliveryTo),
	); err != nil {
		return PlaceCodOrderCommand{}, err
	}

	return codCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceCodOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceCodOrderCommandIsNotConstructed)
}

// Session returns the buyer's session.
func (c PlaceCodOrderCommand) Session() ports.Session {
	return c.sess
}

// DeliveryTo returns the delivery address.
func (c PlaceCodOrderCommand) DeliveryTo() address.Address {
	return c.deliveryTo
}

// Notes returns the buyer's free-text delivery notes.
func (c PlaceCodOrderCommand) Notes() string {
	return c.notes
}

func (c *PlaceCodOrderCommand) setSession(sess ports.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}

	c.sess = sess
	return nil
}

func (c *PlaceCodOrderCommand) setDeliveryTo(deliveryTo address.Address) error {
	if err := deliveryTo.Validate(); err != nil {
		return err
	}

	c.deliveryTo = deliveryTo
	return nil
}
