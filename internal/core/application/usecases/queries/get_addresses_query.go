package queries

import (
	"errors"

	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/guard"
)

var ErrGetAddressesQueryIsNotConstructed = errors.New(
	"GetAddressesQuery must be created via NewGetAddressesQuery constructor",
)

// GetAddressesQuery represents a request for the buyer's saved addresses.
type GetAddressesQuery struct { //nolint:recvcheck //using for validation
	sess ports.Session

	guard guard.ConstructorGuard
}

// NewGetAddressesQuery creates a query for the session's address book.
func NewGetAddressesQuery(sess ports.Session) (GetAddressesQuery, error) {
	if err := sess.Validate(); err != nil {
		return GetAddressesQuery{}, err
	}

	return GetAddressesQuery{
		sess:  sess,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAddressesQuery) Validate() error {
	return q.guard.Validate(ErrGetAddressesQueryIsNotConstructed)
}

// Session returns the buyer's session.
func (q GetAddressesQuery) Session() ports.Session {
	return q.sess
}
