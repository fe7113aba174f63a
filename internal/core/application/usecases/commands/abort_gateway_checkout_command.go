package commands

import (
	"errors"

	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
	"agrimarket/internal/pkg/guard"
)

var ErrAbortGatewayCheckoutCommandIsNotConstructed = errors.New(
	"AbortGatewayCheckoutCommand must be created via NewAbortGatewayCheckoutCommand constructor",
)

// AbortGatewayCheckoutCommand represents a dismissed payment widget: the
// buyer closed it without paying. The parked checkout state is discarded and
// no order exists.
type AbortGatewayCheckoutCommand struct { //nolint:recvcheck //using for validation
	sess           ports.Session
	gatewayOrderID string

	guard guard.ConstructorGuard
}

// NewAbortGatewayCheckoutCommand creates a command to abort an open gateway
// checkout.
func NewAbortGatewayCheckoutCommand(
	sess ports.Session,
	gatewayOrderID string,
) (AbortGatewayCheckoutCommand, error) {
	abortCommand := AbortGatewayCheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		abortCommand.setSession(sess),
		abortCommand.setGatewayOrderID(gatewayOrderID),
	); err != nil {
		return AbortGatewayCheckoutCommand{}, err
	}

	return abortCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AbortGatewayCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrAbortGatewayCheckoutCommandIsNotConstructed)
}

// Session returns the buyer's session.
func (c AbortGatewayCheckoutCommand) Session() ports.Session {
	return c.sess
}

// GatewayOrderID returns the id of the checkout to abort.
func (c AbortGatewayCheckoutCommand) GatewayOrderID() string {
	return c.gatewayOrderID
}

func (c *AbortGatewayCheckoutCommand) setSession(sess ports.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}

	c.sess = sess
	return nil
}

func (c *AbortGatewayCheckoutCommand) setGatewayOrderID(gatewayOrderID string) error {
	if gatewayOrderID == "" {
		return errs.NewValueIsRequiredError("gatewayOrderID")
	}

	c.gatewayOrderID = gatewayOrderID
	return nil
}
