package address

import (
	"errors"

	"agrimarket/internal/pkg/errs"
	"agrimarket/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through the NewAddress factory method.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a delivery address. District and state are derived values: they
// come from a successful pincode resolution (or from a previously saved
// address, which carried resolved values by construction), never from free
// user input. An address without them cannot be constructed, which is how the
// rest of the system guarantees that only submittable addresses circulate.
//
// Address invariants:
//   - street must not be empty
//   - district and state must be non-empty (resolver-derived)
//   - pincode must be a valid 6-digit Pincode
//
// ID is empty for a new address that has not been saved upstream yet.
type Address struct {
	id        string
	label     string
	street    string
	district  string
	state     string
	pincode   Pincode
	isDefault bool

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address. District and state must already be
// resolved; passing empty values fails with a validation error rather than
// producing an address that would be rejected at checkout.
func NewAddress(id, label, street string, pincode Pincode, district, state string, isDefault bool) (Address, error) {
	addr := Address{
		id:        id,
		label:     label,
		isDefault: isDefault,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setStreet(street),
		addr.setPincode(pincode),
		addr.setDistrict(district),
		addr.setState(state),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate ensures the address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// ID returns the upstream identifier, empty for an unsaved address.
func (a Address) ID() string { return a.id }

// Label returns the display label ("Home", "Farm gate", ...).
func (a Address) Label() string { return a.label }

// Street returns the street line.
func (a Address) Street() string { return a.street }

// District returns the resolver-derived district.
func (a Address) District() string { return a.district }

// State returns the resolver-derived state.
func (a Address) State() string { return a.state }

// Pincode returns the postal code.
func (a Address) Pincode() Pincode { return a.pincode }

// IsDefault reports whether this is the buyer's default address.
func (a Address) IsDefault() bool { return a.isDefault }

// IsSaved reports whether the address already exists upstream.
func (a Address) IsSaved() bool { return a.id != "" }

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setPincode(pincode Pincode) error {
	if err := pincode.Validate(); err != nil {
		return err
	}
	a.pincode = pincode
	return nil
}

func (a *Address) setDistrict(district string) error {
	if district == "" {
		return errs.NewValueIsRequiredError("district")
	}
	a.district = district
	return nil
}

func (a *Address) setState(state string) error {
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	a.state = state
	return nil
}
