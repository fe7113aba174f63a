// Package ports defines the contracts between the storefront core and
// infrastructure: the upstream marketplace API, the postal-code resolver, and
// the pending-checkout store. These interfaces establish dependency inversion
// so the core can be exercised against mocks.
package ports

import "agrimarket/internal/pkg/errs"

// Session is the buyer's authenticated context, injected explicitly into
// every call that reaches the upstream API. Nothing in the core reads
// credentials from ambient state.
type Session struct {
	// BuyerID identifies the buyer the session belongs to.
	BuyerID string

	// Token is the bearer credential forwarded upstream.
	Token string
}

// Validate rejects sessions that cannot authorize a gated action. Callers
// check this before attempting any upstream call, so an unauthenticated user
// is routed to authentication instead of producing an upstream 401.
func (s Session) Validate() error {
	if s.Token == "" {
		return errs.NewNotAuthenticatedError("missing bearer credential")
	}
	if s.BuyerID == "" {
		return errs.NewNotAuthenticatedError("missing buyer reference")
	}
	return nil
}
