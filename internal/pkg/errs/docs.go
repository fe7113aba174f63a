// Package errs provides standardized error types for the storefront core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the failure classes the cart-to-order flow distinguishes:
//   - ValueIsRequiredError / ValueIsInvalidError: validation caught before any
//     network call (bad pincode, missing reason, unresolved address)
//   - ObjectNotFoundError: a referenced object does not exist
//   - NotAvailableError: stock changed or an item was removed upstream;
//     a normal per-item business outcome, not an exceptional fault
//   - NotAuthenticatedError: missing or expired credential for a gated action
//   - PaymentFailedError: intent creation failed, or verification failed
//     after a possible charge
//   - NetworkFailureError: transport-level failure; safe to retry the same
//     idempotent request
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrNotAvailable)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
package errs
