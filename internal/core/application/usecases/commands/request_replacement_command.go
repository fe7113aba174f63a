package commands

import (
	"errors"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
	"agrimarket/internal/pkg/guard"
)

var ErrRequestReplacementCommandIsNotConstructed = errors.New(
	"RequestReplacementCommand must be created via NewRequestReplacementCommand constructor",
)

// RequestReplacementCommand represents a request to replace a delivered
// order within the return window. Same shape and window as a return; the
// remedy differs.
type RequestReplacementCommand struct { //nolint:recvcheck //using for validation
	sess           ports.Session
	orderID        string
	reason         order.Reason
	idempotencyKey kernel.IdempotencyKey

	guard guard.ConstructorGuard
}

// NewRequestReplacementCommand creates a command to request a replacement
// for the named order with the given reason.
func NewRequestReplacementCommand(
	sess ports.Session,
	orderID string,
	reason order.Reason,
) (RequestReplacementCommand, error) {
	replaceCommand := RequestReplacementCommand{
		idempotencyKey: kernel.NewIdempotencyKey(),
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		replaceCommand.setSession(sess),
		replaceCommand.setOrderID(orderID),
		replaceCommand.setReason(reason),
	); err != nil {
		return RequestReplacementCommand{}, err
	}

	return replaceCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestReplacementCommand) Validate() error {
	return c.guard.Validate(ErrRequestReplacementCommandIsNotConstructed)
}

// Session returns the buyer's session.
func (c RequestReplacementCommand) Session() ports.Session {
	return c.sess
}

// OrderID returns the order to replace.
func (c RequestReplacementCommand) OrderID() string {
	return c.orderID
}

// Reason returns the buyer's replacement reason.
func (c RequestReplacementCommand) Reason() order.Reason {
	return c.reason
}

// IdempotencyKey returns the key identifying this intent across retries.
func (c RequestReplacementCommand) IdempotencyKey() string {
	return c.idempotencyKey.String()
}

func (c *RequestReplacementCommand) setSession(sess ports.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}

	c.sess = sess
	return nil
}

func (c *RequestReplacementCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *RequestReplacementCommand) setReason(reason order.Reason) error {
	if err := reason.Validate(); err != nil {
		return err
	}

	c.reason = reason
	return nil
}
