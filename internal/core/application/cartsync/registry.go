package cartsync

import (
	"log/slog"
	"sync"
	"time"

	"agrimarket/internal/core/ports"
)

// Registry hands out one Synchronizer per buyer and reaps the ones that have
// gone idle. The background reaper runs from the job scheduler; everything
// else is driven by request handlers.
type Registry struct {
	client   ports.CartClient
	debounce time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	byBuyer map[string]*Synchronizer
}

// NewRegistry creates an empty registry. The debounce is passed through to
// every synchronizer it creates.
func NewRegistry(client ports.CartClient, debounce time.Duration, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	return &Registry{
		client:   client,
		debounce: debounce,
		logger:   logger.With("component", "cart_registry"),
		byBuyer:  make(map[string]*Synchronizer),
	}
}

// ForSession returns the buyer's synchronizer, creating one on first use.
// The stored session is refreshed on every call so a re-issued token is
// picked up without rebuilding local state.
func (r *Registry) ForSession(sess ports.Session) *Synchronizer {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byBuyer[sess.BuyerID]; ok {
		existing.mu.Lock()
		existing.sess = sess
		existing.mu.Unlock()
		return existing
	}

	created := NewSynchronizer(r.client, sess, r.debounce, r.logger)
	r.byBuyer[sess.BuyerID] = created
	return created
}

// Evict disposes and removes the buyer's synchronizer, if present. Called on
// logout and after a successful checkout so the next cart view starts fresh.
func (r *Registry) Evict(buyerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sync, ok := r.byBuyer[buyerID]; ok {
		sync.Dispose()
		delete(r.byBuyer, buyerID)
	}
}

// EvictIdle disposes every synchronizer whose last activity is older than
// the given age and returns how many were removed.
func (r *Registry) EvictIdle(olderThan time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	evicted := 0
	for buyerID, sync := range r.byBuyer {
		if sync.IdleSince().Before(cutoff) {
			sync.Dispose()
			delete(r.byBuyer, buyerID)
			evicted++
		}
	}

	if evicted > 0 {
		r.logger.Info("evicted idle cart synchronizers", "count", evicted)
	}
	return evicted
}

// Len reports how many synchronizers are live.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byBuyer)
}

// DisposeAll tears down every synchronizer. Called on shutdown.
func (r *Registry) DisposeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for buyerID, sync := range r.byBuyer {
		sync.Dispose()
		delete(r.byBuyer, buyerID)
	}
}
