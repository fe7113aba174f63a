package ports

import (
	"context"

	"agrimarket/internal/core/domain/model/address"
)

// Locality is the result of a postal-code resolution.
type Locality struct {
	District string
	State    string
}

// PincodeResolver resolves a 6-digit postal code to its district and state.
//
// Error contract:
//   - errs.ObjectNotFoundError when the code is unknown to the postal service
//   - errs.NetworkFailureError when the lookup service is unreachable
//
// Resolution is idempotent: the same code always yields the same locality, so
// implementations are free to cache.
type PincodeResolver interface {
	Resolve(ctx context.Context, pincode address.Pincode) (Locality, error)
}
