// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, upstream call, local
// state reconciliation. The upstream marketplace API is the system of record;
// handlers never persist anything themselves beyond the short-lived gateway
// checkout records.
package commands

import (
	"agrimarket/internal/core/application/cartsync"
	"agrimarket/internal/core/ports"
)

// CartAccess is the slice of the synchronizer registry that checkout
// handlers need: fetch the buyer's synchronizer to flush and validate the
// cart, and evict it after a placed order so the next view starts fresh.
type CartAccess interface {
	ForSession(sess ports.Session) *cartsync.Synchronizer
	Evict(buyerID string)
}
