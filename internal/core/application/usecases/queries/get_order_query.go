package queries

import (
	"errors"

	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
	"agrimarket/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery represents a request for one order's detail view.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	sess    ports.Session
	orderID string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the named order.
func NewGetOrderQuery(sess ports.Session, orderID string) (GetOrderQuery, error) {
	q := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setSession(sess),
		q.setOrderID(orderID),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Session returns the buyer's session.
func (q GetOrderQuery) Session() ports.Session {
	return q.sess
}

// OrderID returns the order to fetch.
func (q GetOrderQuery) OrderID() string {
	return q.orderID
}

func (q *GetOrderQuery) setSession(sess ports.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}

	q.sess = sess
	return nil
}

func (q *GetOrderQuery) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	q.orderID = orderID
	return nil
}
