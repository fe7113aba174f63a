package commands

import (
	"errors"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
	"agrimarket/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order that has not
// entered fulfilment. The idempotency key is generated once at construction,
// so retrying the same command after a timeout reuses the same key and the
// upstream deduplicates the intent.
//
// Example:
//
//	reason, err := order.NewReason(order.ReasonChangedMind, "")
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewCancelOrderCommand(sess, orderID, reason)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewCancelOrderCommandHandler(orders)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	sess           ports.Session
	orderID        string
	reason         order.Reason
	idempotencyKey kernel.IdempotencyKey

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel the named order with the
// given reason.
func NewCancelOrderCommand(
	sess ports.Session,
	orderID string,
	reason order.Reason,
) (CancelOrderCommand, error) {
	cancelCommand := CancelOrderCommand{
		idempotencyKey: kernel.NewIdempotencyKey(),
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setSession(sess),
		cancelCommand.setOrderID(orderID),
		cancelCommand.setReason(reason),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// Session returns the buyer's session.
func (c CancelOrderCommand) Session() ports.Session {
	return c.sess
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() string {
	return c.orderID
}

// Reason returns the buyer's cancellation reason.
func (c CancelOrderCommand) Reason() order.Reason {
	return c.reason
}

// IdempotencyKey returns the key identifying this intent across retries.
func (c CancelOrderCommand) IdempotencyKey() string {
	return c.idempotencyKey.String()
}

func (c *CancelOrderCommand) setSession(sess ports.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}

	c.sess = sess
	return nil
}

func (c *CancelOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setReason(reason order.Reason) error {
	if err := reason.Validate(); err != nil {
		return err
	}

	c.reason = reason
	return nil
}
