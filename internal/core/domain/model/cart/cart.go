package cart

import (
	"errors"
	"fmt"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/errs"
	"agrimarket/internal/pkg/guard"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through the NewCart factory method.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

// Cart is a view over the server-owned cart. Item order is preserved for
// display only and carries no meaning. Derived totals are computed from the
// current local quantities, so they track edits that have not been written
// back yet; legality of those edits remains the server's call.
type Cart struct {
	items []*Item
	byID  map[string]*Item

	guard guard.ConstructorGuard
}

// NewCart creates a cart from server-confirmed items.
// Duplicate product ids are rejected: the server keys cart lines by product.
func NewCart(items []*Item) (*Cart, error) {
	c := &Cart{
		items: make([]*Item, 0, len(items)),
		byID:  make(map[string]*Item, len(items)),
		guard: guard.NewConstructorGuard(),
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.byID[item.ProductID()]; exists {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("duplicate product %s", item.ProductID()),
			)
		}
		c.items = append(c.items, item)
		c.byID[item.ProductID()] = item
	}

	return c, nil
}

// Validate ensures the cart was created through NewCart.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// Items returns the cart lines in display order.
// The slice is a copy; the items are shared.
func (c *Cart) Items() []*Item {
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

// Item returns the line for a product id.
func (c *Cart) Item(productID string) (*Item, bool) {
	item, ok := c.byID[productID]
	return item, ok
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Subtotal is the sum of line subtotals over current local quantities.
func (c *Cart) Subtotal() kernel.Money {
	var total kernel.Money
	for _, item := range c.items {
		total = total.Add(item.LineSubtotal())
	}
	return total
}

// TotalItems is the sum of current local quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity()
	}
	return total
}

// UnavailableItems returns the lines that can no longer be purchased.
// These are surfaced separately from quantity-limited lines and block
// checkout until removed.
func (c *Cart) UnavailableItems() []*Item {
	var out []*Item
	for _, item := range c.items {
		if !item.IsAvailable() {
			out = append(out, item)
		}
	}
	return out
}
