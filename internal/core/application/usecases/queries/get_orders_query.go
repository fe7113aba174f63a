package queries

import (
	"errors"

	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery represents a request for the buyer's order history.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	sess ports.Session

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the session's orders.
func NewGetOrdersQuery(sess ports.Session) (GetOrdersQuery, error) {
	if err := sess.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		sess:  sess,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Session returns the buyer's session.
func (q GetOrdersQuery) Session() ports.Session {
	return q.sess
}
