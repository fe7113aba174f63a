package commands

import (
	"errors"

	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
	"agrimarket/internal/pkg/guard"
)

var ErrCompleteGatewayCheckoutCommandIsNotConstructed = errors.New(
	"CompleteGatewayCheckoutCommand must be created via NewCompleteGatewayCheckoutCommand constructor",
)

// CompleteGatewayCheckoutCommand carries the signed triple the payment
// widget returned. All three parts are required; the server does the actual
// signature verification.
type CompleteGatewayCheckoutCommand struct { //nolint:recvcheck //using for validation
	sess         ports.Session
	confirmation ports.GatewayConfirmation

	guard guard.ConstructorGuard
}

// NewCompleteGatewayCheckoutCommand creates a command to settle a gateway
// checkout. Validates the session and that the confirmation triple is whole.
func NewCompleteGatewayCheckoutCommand(
	sess ports.Session,
	confirmation ports.GatewayConfirmation,
) (CompleteGatewayCheckoutCommand, error) {
	completeCommand := CompleteGatewayCheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setSession(sess),
		completeCommand.setConfirmation(confirmation),
	); err != nil {
		return CompleteGatewayCheckoutCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteGatewayCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCompleteGatewayCheckoutCommandIsNotConstructed)
}

// Session returns the buyer's session.
func (c CompleteGatewayCheckoutCommand) Session() ports.Session {
	return c.sess
}

// Confirmation returns the widget's signed triple.
func (c CompleteGatewayCheckoutCommand) Confirmation() ports.GatewayConfirmation {
	return c.confirmation
}

func (c *CompleteGatewayCheckoutCommand) setSession(sess ports.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}

	c.sess = sess
	return nil
}

func (c *CompleteGatewayCheckoutCommand) setConfirmation(confirmation ports.GatewayConfirmation) error {
	if confirmation.GatewayOrderID == "" {
		return errs.NewValueIsRequiredError("gatewayOrderID")
	}
	if confirmation.PaymentID == "" {
		return errs.NewValueIsRequiredError("paymentID")
	}
	if confirmation.Signature == "" {
		return errs.NewValueIsRequiredError("signature")
	}

	c.confirmation = confirmation
	return nil
}
