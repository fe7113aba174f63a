package services

import (
	"agrimarket/internal/core/domain/model/address"
	"agrimarket/internal/core/domain/model/cart"
	"agrimarket/internal/pkg/errs"
)

// CheckoutValidator is a domain service that decides whether a cart and an
// address are legal inputs for either payment path. Both paths share exactly
// these preconditions; everything past them diverges.
//
// Business rules:
//   - the cart must not be empty
//   - no cart line may be unavailable (quantity-limited lines are fine,
//     unavailable ones must be removed first)
//   - the address must be submittable: either previously saved upstream, or
//     carrying resolver-derived district and state (which the address
//     constructor already guarantees)
//
// Example usage:
//
//	validator := services.NewCheckoutValidator()
//	if err := validator.Validate(cart, addr); err != nil {
//	    // surfaced inline, no payment action is attempted
//	}
type CheckoutValidator struct{}

// NewCheckoutValidator creates a new CheckoutValidator instance.
func NewCheckoutValidator() CheckoutValidator {
	return CheckoutValidator{}
}

// Validate checks the shared checkout preconditions.
// Returns the first violation found; nothing network-facing happens here.
func (v CheckoutValidator) Validate(c *cart.Cart, addr address.Address) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := addr.Validate(); err != nil {
		return err
	}

	if c.IsEmpty() {
		return errs.NewValueIsRequiredError("cart items")
	}

	if unavailable := c.UnavailableItems(); len(unavailable) > 0 {
		return errs.NewNotAvailableError(
			unavailable[0].ProductID(),
			"cart contains items that are no longer available",
		)
	}

	return nil
}
