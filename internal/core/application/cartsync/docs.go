// Package cartsync converges each buyer's local cart view with the
// marketplace cart.
//
// Quantity edits are optimistic: the local line and the derived totals update
// synchronously, while the upstream write is debounced per item so a burst of
// stepper clicks collapses into one request carrying the final value. A
// rejected write rolls the line back to the last server-confirmed quantity
// and surfaces the failure on the next snapshot.
//
// Refetches carry a monotonically increasing token. A response is applied
// only if its token is newer than the last applied one, so a slow fetch that
// overtakes a fast one can never regress the view.
//
// The Registry owns one Synchronizer per buyer and evicts the idle ones from
// a scheduled job.
//
// Example:
//
//	registry := cartsync.NewRegistry(client, cartsync.DefaultDebounce, logger)
//
//	sync := registry.ForSession(sess)
//	if err := sync.Refresh(ctx); err != nil {
//	    return err
//	}
//
//	applied, err := sync.SetQuantity("prod-42", 5)
//	if err != nil {
//	    return err
//	}
//	view := sync.Snapshot() // totals already include the edit
//	_ = applied
//	_ = view
package cartsync
