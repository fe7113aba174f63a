// Package address provides the delivery address model for the storefront.
//
// The package includes:
//   - Pincode: a value object for 6-digit postal codes with input sanitization
//   - Address: a delivery address whose district and state are derived from a
//     pincode resolution, never typed by the user
//
// Key business rules:
//   - Postal-code input is reduced to digits and capped at 6 before any
//     resolution is attempted
//   - An address with empty district or state cannot exist; the constructor
//     fails closed so stale derived data can never ride along with an edited
//     code
package address
