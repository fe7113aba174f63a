// Package cart provides the client-side model of the server-owned shopping
// cart.
//
// The package includes:
//   - Item: a cart line with its price captured at add time, server-asserted
//     stock and availability, and a clamped editable quantity
//   - Cart: an ordered collection of lines with optimistic derived totals
//
// Key business rules:
//   - The local cart is a view, never the authority; every mutation goes to
//     the server and the full cart is refetched on success
//   - Quantity always satisfies 1 <= quantity <= min(stock, PolicyCap) while a
//     line is editable
//   - Unavailable lines are distinct from quantity-limited ones and cannot be
//     checked out
//   - Subtotal and TotalItems are computed from current local quantities so
//     displayed totals track keystrokes before the debounced write lands
package cart
