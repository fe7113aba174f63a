// Package queries contains read operations in the CQRS architecture. Query
// handlers fetch from the upstream marketplace or from the local synchronizer
// state and never mutate anything beyond the cart view cache.
package queries

import (
	"agrimarket/internal/core/application/cartsync"
	"agrimarket/internal/core/ports"
)

// CartAccess is the slice of the synchronizer registry the cart view query
// needs.
type CartAccess interface {
	ForSession(sess ports.Session) *cartsync.Synchronizer
}
