package queries

import (
	"context"

	"agrimarket/internal/core/ports"
)

// ResolvePincodeQueryHandler resolves a pincode to its locality through the
// configured resolver, typically the postal API behind a cache.
type ResolvePincodeQueryHandler struct {
	resolver ports.PincodeResolver
}

// NewResolvePincodeQueryHandler creates a handler over a pincode resolver.
func NewResolvePincodeQueryHandler(resolver ports.PincodeResolver) ResolvePincodeQueryHandler {
	return ResolvePincodeQueryHandler{
		resolver: resolver,
	}
}

// Handle resolves the code. An unserviceable code surfaces as
// errs.ObjectNotFoundError from the resolver.
func (h *ResolvePincodeQueryHandler) Handle(ctx context.Context, query ResolvePincodeQuery) (ports.Locality, error) {
	if err := query.Validate(); err != nil {
		return ports.Locality{}, err
	}

	return h.resolver.Resolve(ctx, query.Pincode())
}
