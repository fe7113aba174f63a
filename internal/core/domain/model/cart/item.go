package cart

import (
	"errors"
	"fmt"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/errs"
	"agrimarket/internal/pkg/guard"
)

// PolicyCap is the per-item purchasable maximum imposed regardless of stock.
const PolicyCap = 10

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single cart line. PriceAtAdd is the unit price captured when the
// product entered the cart; it never tracks the product's live price. Stock
// and the availability flag are server-asserted and copied verbatim on every
// reconciliation.
//
// Item invariants:
//   - productID must not be empty
//   - quantity satisfies 1 <= quantity <= MaxQuantity() while the item is
//     editable (available with stock)
//   - an unavailable item cannot have its quantity edited and blocks checkout
type Item struct {
	productID   string
	name        string
	priceAtAdd  kernel.Money
	quantity    int
	stock       int
	isAvailable bool

	guard guard.ConstructorGuard
}

// NewItem creates a validated cart line from server-confirmed values.
func NewItem(productID, name string, priceAtAdd kernel.Money, quantity, stock int, isAvailable bool) (*Item, error) {
	item := &Item{
		name:        name,
		priceAtAdd:  priceAtAdd,
		stock:       stock,
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setInitialQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the item was created through NewItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the product identity of this line.
func (i *Item) ProductID() string { return i.productID }

// Name returns the product display name.
func (i *Item) Name() string { return i.name }

// PriceAtAdd returns the unit price captured at add time.
func (i *Item) PriceAtAdd() kernel.Money { return i.priceAtAdd }

// Quantity returns the current requested quantity.
func (i *Item) Quantity() int { return i.quantity }

// Stock returns the server-asserted available stock.
func (i *Item) Stock() int { return i.stock }

// IsAvailable reports whether the product can still be purchased at all.
// Unavailable is distinct from quantity-limited: a quantity-limited item stays
// editable up to MaxQuantity, an unavailable one blocks checkout entirely.
func (i *Item) IsAvailable() bool { return i.isAvailable }

// MaxQuantity returns the per-line purchasable maximum: min(stock, PolicyCap).
func (i *Item) MaxQuantity() int {
	if i.stock < PolicyCap {
		return i.stock
	}
	return PolicyCap
}

// IsEditable reports whether the quantity may be changed by the buyer.
func (i *Item) IsEditable() bool {
	return i.isAvailable && i.MaxQuantity() >= 1
}

// ClampQuantity maps any requested quantity into [1, MaxQuantity()].
// An emptied input (zero or negative) resolves to 1.
func (i *Item) ClampQuantity(desired int) int {
	if desired < 1 {
		return 1
	}
	if max := i.MaxQuantity(); desired > max {
		return max
	}
	return desired
}

// SetQuantity updates the requested quantity. The value must already lie in
// the editable range; callers clamp first via ClampQuantity.
func (i *Item) SetQuantity(quantity int) error {
	if !i.IsEditable() {
		return errs.NewNotAvailableError(i.productID, "item is not editable")
	}
	if quantity < 1 || quantity > i.MaxQuantity() {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is outside [1, %d]", quantity, i.MaxQuantity()),
		)
	}
	i.quantity = quantity
	return nil
}

// RevertQuantity restores a server-confirmed quantity after a rejected
// write. Editability is not re-checked: the value being restored came from
// the server and may belong to a line that has since become unavailable.
func (i *Item) RevertQuantity(quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	i.quantity = quantity
}

// LineSubtotal returns priceAtAdd multiplied by the current quantity.
func (i *Item) LineSubtotal() kernel.Money {
	return i.priceAtAdd.Mul(i.quantity)
}

func (i *Item) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}
	i.productID = productID
	return nil
}

func (i *Item) setInitialQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}
