// Package kernel provides core domain primitives and utilities for the
// storefront core. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - Money: A value object for monetary amounts held as integer paise
//   - IdempotencyKey: A value object identifying one buyer intent across retries
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
