// Package guard provides a defensive construction marker for value objects,
// commands and queries. Embedding a ConstructorGuard lets a type detect whether
// it was created through its designated constructor or as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value is
// invalid, so any struct embedding a guard fails validation unless it went
// through a constructor that called NewConstructorGuard.
//
// Example usage:
//
//	type SaveAddressCommand struct {
//	    street string
//	    guard  ConstructorGuard
//	}
//
//	func NewSaveAddressCommand(street string) (SaveAddressCommand, error) {
//	    if street == "" {
//	        return SaveAddressCommand{}, errors.New("street is required")
//	    }
//	    return SaveAddressCommand{street: street, guard: NewConstructorGuard()}, nil
//	}
//
//	func (c SaveAddressCommand) Validate() error {
//	    return c.guard.Validate(ErrSaveAddressCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its holder as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was properly constructed,
// validationError otherwise. A nil validationError falls back to
// ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
