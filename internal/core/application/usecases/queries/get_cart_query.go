package queries

import (
	"errors"

	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery represents a request for the buyer's current cart view.
type GetCartQuery struct { //nolint:recvcheck //using for validation
	sess ports.Session

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the session's cart.
func NewGetCartQuery(sess ports.Session) (GetCartQuery, error) {
	if err := sess.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		sess:  sess,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// Session returns the buyer's session.
func (q GetCartQuery) Session() ports.Session {
	return q.sess
}
