package order

import (
	"errors"
	"fmt"
	"time"

	"agrimarket/internal/core/domain/model/address"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/errs"
	"agrimarket/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemLineIsNotConstructed is returned when an ItemLine instance was
	// not created through the NewItemLine factory method.
	ErrItemLineIsNotConstructed = errors.New("ItemLine must be created via NewItemLine constructor")
)

// ItemLine is a single line of a placed order. The unit price is copied from
// the cart at order-creation time and never changes afterwards, whatever
// happens to the product's live price.
type ItemLine struct {
	productID string
	vendorID  string
	name      string
	unitPrice kernel.Money
	quantity  int

	guard guard.ConstructorGuard
}

// NewItemLine creates a validated order line.
func NewItemLine(productID, vendorID, name string, unitPrice kernel.Money, quantity int) (ItemLine, error) {
	if productID == "" {
		return ItemLine{}, errs.NewValueIsRequiredError("productID")
	}
	if quantity < 1 {
		return ItemLine{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return ItemLine{
		productID: productID,
		vendorID:  vendorID,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line was created through NewItemLine.
func (l ItemLine) Validate() error {
	return l.guard.Validate(ErrItemLineIsNotConstructed)
}

// ProductID returns the product identity of the line.
func (l ItemLine) ProductID() string { return l.productID }

// VendorID returns the selling vendor's identity.
func (l ItemLine) VendorID() string { return l.vendorID }

// Name returns the product display name captured at order time.
func (l ItemLine) Name() string { return l.name }

// UnitPrice returns the price copied at order-creation time.
func (l ItemLine) UnitPrice() kernel.Money { return l.unitPrice }

// Quantity returns the ordered quantity.
func (l ItemLine) Quantity() int { return l.quantity }

// Subtotal returns unit price times quantity.
func (l ItemLine) Subtotal() kernel.Money { return l.unitPrice.Mul(l.quantity) }

// Order is a placed order as asserted by the server. The client reconstructs
// it from API responses, computes which actions are currently available, and
// requests transitions; it never mutates status fields on its own.
//
// Order invariants:
//   - id, number and buyer reference must be present
//   - at least one item line
//   - a Delivered order carries deliveredAt (the anchor for all
//     time-windowed permission checks, set exactly once by the server)
type Order struct {
	id            string
	number        string
	buyerID       string
	items         []ItemLine
	total         kernel.Money
	paymentStatus PaymentStatus
	status        Status
	deliveryTo    address.Address
	notes         string
	createdAt     time.Time
	updatedAt     time.Time
	deliveredAt   *time.Time

	returnStatus      ReturnStatus
	returnReason      string
	returnRequestedAt *time.Time

	guard guard.ConstructorGuard
}

// NewOrder reconstructs an order from server-asserted values.
func NewOrder(
	id, number, buyerID string,
	items []ItemLine,
	total kernel.Money,
	paymentStatus PaymentStatus,
	status Status,
	deliveryTo address.Address,
	notes string,
	createdAt, updatedAt time.Time,
	deliveredAt *time.Time,
	returnStatus ReturnStatus,
	returnReason string,
	returnRequestedAt *time.Time,
) (*Order, error) {
	o := &Order{
		total:             total,
		deliveryTo:        deliveryTo,
		notes:             notes,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		deliveredAt:       deliveredAt,
		returnReason:      returnReason,
		returnRequestedAt: returnRequestedAt,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setBuyerID(buyerID),
		o.setItems(items),
		o.setPaymentStatus(paymentStatus),
		o.setStatus(status),
		o.setReturnStatus(returnStatus),
		deliveryTo.Validate(),
	); err != nil {
		return nil, err
	}

	if o.status == StatusDelivered && o.deliveredAt == nil {
		return nil, errs.NewValueIsRequiredError("deliveredAt")
	}

	return o, nil
}

// Validate ensures the order was created through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() string { return o.id }

// Number returns the human-readable order number.
func (o *Order) Number() string { return o.number }

// BuyerID returns the buyer reference.
func (o *Order) BuyerID() string { return o.buyerID }

// Items returns the order lines. The slice is a copy.
func (o *Order) Items() []ItemLine {
	out := make([]ItemLine, len(o.items))
	copy(out, o.items)
	return out
}

// Total returns the server-asserted total amount.
func (o *Order) Total() kernel.Money { return o.total }

// PaymentStatus returns the settlement state.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// Status returns the lifecycle state.
func (o *Order) Status() Status { return o.status }

// DeliveryAddress returns the address snapshot taken at order creation.
func (o *Order) DeliveryAddress() address.Address { return o.deliveryTo }

// Notes returns the optional buyer notes.
func (o *Order) Notes() string { return o.notes }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last update timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// DeliveredAt returns the delivery timestamp, nil before delivery.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// ReturnStatus returns the state of any return request.
func (o *Order) ReturnStatus() ReturnStatus { return o.returnStatus }

// ReturnReason returns the recorded return reason, if any.
func (o *Order) ReturnReason() string { return o.returnReason }

// ReturnRequestedAt returns when a return was requested, nil if never.
func (o *Order) ReturnRequestedAt() *time.Time { return o.returnRequestedAt }

// AvailableActions computes which actions the buyer may trigger now.
func (o *Order) AvailableActions(now time.Time) Actions {
	return AvailableActions(o.status, o.deliveredAt, now)
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("orderID")
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.number = number
	return nil
}

func (o *Order) setBuyerID(buyerID string) error {
	if buyerID == "" {
		return errs.NewValueIsRequiredError("buyerID")
	}
	o.buyerID = buyerID
	return nil
}

func (o *Order) setItems(items []ItemLine) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, line := range items {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]ItemLine, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setReturnStatus(status ReturnStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.returnStatus = status
	return nil
}
