package queries

import (
	"errors"

	"agrimarket/internal/core/domain/model/address"
	"agrimarket/internal/pkg/guard"
)

var ErrResolvePincodeQueryIsNotConstructed = errors.New(
	"ResolvePincodeQuery must be created via NewResolvePincodeQuery constructor",
)

// ResolvePincodeQuery represents a request to derive district and state from
// a postal pincode. The raw input is sanitized and must form a complete
// six-digit code.
//
// Example:
//
//	query, err := NewResolvePincodeQuery("411001")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewResolvePincodeQueryHandler(resolver)
//	locality, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s, %s", locality.District, locality.State)
type ResolvePincodeQuery struct { //nolint:recvcheck //using for validation
	pincode address.Pincode

	guard guard.ConstructorGuard
}

// NewResolvePincodeQuery creates a query from raw user input.
func NewResolvePincodeQuery(raw string) (ResolvePincodeQuery, error) {
	pincode, err := address.NewPincode(raw)
	if err != nil {
		return ResolvePincodeQuery{}, err
	}

	return ResolvePincodeQuery{
		pincode: pincode,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ResolvePincodeQuery) Validate() error {
	return q.guard.Validate(ErrResolvePincodeQueryIsNotConstructed)
}

// Pincode returns the sanitized six-digit code.
func (q ResolvePincodeQuery) Pincode() address.Pincode {
	return q.pincode
}
