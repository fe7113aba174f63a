// Package services contains stateless domain services that coordinate rules
// spanning more than one aggregate.
//
// CheckoutValidator enforces the shared preconditions of both payment paths:
// a non-empty cart with no unavailable lines, and a submittable address.
package services
