package commands

import (
	"errors"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
	"agrimarket/internal/pkg/guard"
)

var ErrRequestReturnCommandIsNotConstructed = errors.New(
	"RequestReturnCommand must be created via NewRequestReturnCommand constructor",
)

// RequestReturnCommand represents a request to return a delivered order
// within the return window. The idempotency key is generated at construction
// and reused across retries of the same intent.
type RequestReturnCommand struct { //nolint:recvcheck //using for validation
	sess           ports.Session
	orderID        string
	reason         order.Reason
	idempotencyKey kernel.IdempotencyKey

	guard guard.ConstructorGuard
}

// NewRequestReturnCommand creates a command to request a return for the
// named order with the given reason.
func NewRequestReturnCommand(
	sess ports.Session,
	orderID string,
	reason order.Reason,
) (RequestReturnCommand, error) {
	returnCommand := RequestReturnCommand{
		idempotencyKey: kernel.NewIdempotencyKey(),
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		returnCommand.setSession(sess),
		returnCommand.setOrderID(orderID),
		returnCommand.setReason(reason),
	); err != nil {
		return RequestReturnCommand{}, err
	}

	return returnCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestReturnCommand) Validate() error {
	return c.guard.Validate(ErrRequestReturnCommandIsNotConstructed)
}

// Session returns the buyer's session.
func (c RequestReturnCommand) Session() ports.Session {
	return c.sess
}

// OrderID returns the order to return.
func (c RequestReturnCommand) OrderID() string {
	return c.orderID
}

// Reason returns the buyer's return reason.
func (c RequestReturnCommand) Reason() order.Reason {
	return c.reason
}

// IdempotencyKey returns the key identifying this intent across retries.
func (c RequestReturnCommand) IdempotencyKey() string {
	return c.idempotencyKey.String()
}

func (c *RequestReturnCommand) setSession(sess ports.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}

	c.sess = sess
	return nil
}

func (c *RequestReturnCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *RequestReturnCommand) setReason(reason order.Reason) error {
	if err := reason.Validate(); err != nil {
		return err
	}

	c.reason = reason
	return nil
}
