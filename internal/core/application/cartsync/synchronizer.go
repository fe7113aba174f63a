package cartsync

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"agrimarket/internal/core/domain/model/cart"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
	"agrimarket/internal/pkg/guard"
)

const (
	// DefaultDebounce is the quiescence window applied to quantity edits
	// before the new value is written upstream.
	DefaultDebounce = 500 * time.Millisecond

	writeTimeout = 10 * time.Second
)

var ErrSynchronizerIsNotConstructed = errors.New(
	"Synchronizer must be created via NewSynchronizer constructor",
)

var ErrSynchronizerDisposed = errors.New("synchronizer has been disposed")

// quantityCommand is one debounced edit. Its apply step has already happened
// by the time the command exists (the local line was updated synchronously);
// commit writes the value upstream after the quiescence window, and rollback
// restores the last server-confirmed quantity when the commit is rejected.
type quantityCommand struct {
	productID string
	quantity  int
	gen       uint64
}

type pendingWrite struct {
	timer *time.Timer
	gen   uint64
}

// ItemView is a read-only projection of one cart line, including the local
// (possibly not yet committed) quantity and the last sync failure, if any.
type ItemView struct {
	ProductID   string
	Name        string
	UnitPrice   kernel.Money
	Quantity    int
	MaxQuantity int
	Stock       int
	IsAvailable bool
	SyncError   string
}

// View is a consistent snapshot of the synchronizer's local cart state.
// Totals are computed from local quantities, so the UI reflects an edit
// immediately even while the upstream write is still pending.
type View struct {
	Items      []ItemView
	Subtotal   kernel.Money
	TotalItems int
}

// Synchronizer keeps one buyer's local cart view converged with the
// marketplace cart. Quantity edits apply locally at once and are written
// upstream per item after a debounce window; rejected writes roll the line
// back to the last server-confirmed quantity. Refetches are sequenced with a
// monotonic token so a stale response can never overwrite a newer one.
//
// Example:
//
//	sync := cartsync.NewSynchronizer(client, sess, 0, logger)
//	if err := sync.Refresh(ctx); err != nil {
//	    return err
//	}
//
//	applied, err := sync.SetQuantity("prod-42", 3)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("quantity now %d, write pending", applied)
type Synchronizer struct {
	client   ports.CartClient
	sess     ports.Session
	debounce time.Duration
	logger   *slog.Logger

	mu           sync.Mutex
	cart         *cart.Cart
	confirmed    map[string]int
	pending      map[string]*pendingWrite
	itemErrs     map[string]string
	nextGen      uint64
	fetchSeq     uint64
	appliedSeq   uint64
	lastActivity time.Time
	disposed     bool

	guard guard.ConstructorGuard
}

// NewSynchronizer creates a synchronizer for one session's cart. A debounce
// of zero or less selects DefaultDebounce. The local view is empty until the
// first Refresh.
func NewSynchronizer(
	client ports.CartClient,
	sess ports.Session,
	debounce time.Duration,
	logger *slog.Logger,
) *Synchronizer {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Synchronizer{
		client:       client,
		sess:         sess,
		debounce:     debounce,
		logger:       logger.With("component", "cart_synchronizer", "buyer_id", sess.BuyerID),
		confirmed:    make(map[string]int),
		pending:      make(map[string]*pendingWrite),
		itemErrs:     make(map[string]string),
		lastActivity: time.Now(),
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the synchronizer was created through the constructor.
func (s *Synchronizer) Validate() error {
	return s.guard.Validate(ErrSynchronizerIsNotConstructed)
}

// Refresh fetches the cart from the marketplace and, if the response is not
// stale, replaces the local view with it. Confirmed quantities and per-item
// sync errors are rebuilt from the fetched state.
func (s *Synchronizer) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return ErrSynchronizerDisposed
	}
	s.fetchSeq++
	token := s.fetchSeq
	sess := s.sess
	s.mu.Unlock()

	fetched, err := s.client.GetCart(ctx, sess)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return ErrSynchronizerDisposed
	}
	if token <= s.appliedSeq {
		// A younger fetch already landed; this response is stale.
		return nil
	}
	s.appliedSeq = token
	s.applyFetchedLocked(fetched)
	return nil
}

// SetQuantity applies a quantity edit to the named line. The value is clamped
// to the purchasable range, the local view updates immediately, and the
// upstream write is scheduled after the debounce window. A burst of edits to
// the same line collapses into a single write of the final value. The applied
// quantity is returned.
//
// A desired value below one (an emptied input field) resolves to one.
func (s *Synchronizer) SetQuantity(productID string, desired int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return 0, ErrSynchronizerDisposed
	}
	if s.cart == nil {
		return 0, errs.NewObjectNotFoundError("cart", nil)
	}

	item, ok := s.cart.Item(productID)
	if !ok {
		return 0, errs.NewObjectNotFoundError("productID", productID)
	}

	clamped := item.ClampQuantity(desired)
	if err := item.SetQuantity(clamped); err != nil {
		return 0, err
	}

	delete(s.itemErrs, productID)
	s.lastActivity = time.Now()
	s.scheduleWriteLocked(productID, clamped)

	return clamped, nil
}

// ResolveEmpty handles a quantity field left blank: the line resolves to a
// quantity of one through the same debounced path as any other edit.
func (s *Synchronizer) ResolveEmpty(productID string) (int, error) {
	return s.SetQuantity(productID, 0)
}

// RemoveItem deletes a line from the cart. The removal is written upstream
// immediately, bypassing the debounce. The line's pending quantity write, if
// any, is cancelled only once the removal succeeds: a failed removal leaves
// the edit armed, so the buyer's last quantity still reaches the server.
func (s *Synchronizer) RemoveItem(ctx context.Context, productID string) error {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return ErrSynchronizerDisposed
	}
	s.lastActivity = time.Now()
	sess := s.sess
	s.mu.Unlock()

	if err := s.client.RemoveItem(ctx, sess, productID); err != nil {
		s.recordItemError(productID, err)
		return err
	}

	s.mu.Lock()
	if pw, ok := s.pending[productID]; ok {
		pw.timer.Stop()
		delete(s.pending, productID)
	}
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// AddItem puts a product into the cart. Adds are written upstream immediately
// and the local view is refetched on success.
func (s *Synchronizer) AddItem(ctx context.Context, productID string, quantity int) error {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return ErrSynchronizerDisposed
	}
	s.lastActivity = time.Now()
	sess := s.sess
	s.mu.Unlock()

	if quantity < 1 {
		quantity = 1
	}
	if quantity > cart.PolicyCap {
		quantity = cart.PolicyCap
	}

	if err := s.client.AddItem(ctx, sess, productID, quantity); err != nil {
		s.recordItemError(productID, err)
		return err
	}

	return s.Refresh(ctx)
}

// Flush commits every pending quantity write synchronously, then refetches.
// Called before checkout so the order is placed against the cart the buyer
// actually sees.
func (s *Synchronizer) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return ErrSynchronizerDisposed
	}

	cmds := make([]quantityCommand, 0, len(s.pending))
	for productID, pw := range s.pending {
		pw.timer.Stop()
		if item, ok := s.cart.Item(productID); ok {
			cmds = append(cmds, quantityCommand{
				productID: productID,
				quantity:  item.Quantity(),
				gen:       pw.gen,
			})
		}
		delete(s.pending, productID)
	}
	sess := s.sess
	s.mu.Unlock()

	var firstErr error
	for _, cmd := range cmds {
		if err := s.client.UpdateQuantity(ctx, sess, cmd.productID, cmd.quantity); err != nil {
			s.rollback(cmd, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		s.confirm(cmd)
	}
	if firstErr != nil {
		return firstErr
	}

	return s.Refresh(ctx)
}

// Snapshot returns the current local view. Totals reflect local quantities,
// pending writes included.
func (s *Synchronizer) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := View{Subtotal: kernel.Money{}}
	if s.cart == nil {
		return view
	}

	for _, item := range s.cart.Items() {
		view.Items = append(view.Items, ItemView{
			ProductID:   item.ProductID(),
			Name:        item.Name(),
			UnitPrice:   item.PriceAtAdd(),
			Quantity:    item.Quantity(),
			MaxQuantity: item.MaxQuantity(),
			Stock:       item.Stock(),
			IsAvailable: item.IsAvailable(),
			SyncError:   s.itemErrs[item.ProductID()],
		})
	}
	view.Subtotal = s.cart.Subtotal()
	view.TotalItems = s.cart.TotalItems()
	return view
}

// Cart returns the local cart aggregate, or nil before the first Refresh.
// Intended for checkout validation immediately after a Flush.
func (s *Synchronizer) Cart() *cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

// PendingWrites reports how many debounced writes have not yet committed.
func (s *Synchronizer) PendingWrites() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// IdleSince reports the time of the last buyer-driven mutation.
func (s *Synchronizer) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// Dispose cancels all pending timers and marks the synchronizer unusable.
// Safe to call more than once.
func (s *Synchronizer) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return
	}
	s.disposed = true
	for productID, pw := range s.pending {
		pw.timer.Stop()
		delete(s.pending, productID)
	}
}

// scheduleWriteLocked arms (or re-arms) the per-item debounce timer. The
// generation number lets a fired timer detect that a newer edit superseded it
// between firing and acquiring the lock.
func (s *Synchronizer) scheduleWriteLocked(productID string, quantity int) {
	if pw, ok := s.pending[productID]; ok {
		pw.timer.Stop()
	}

	s.nextGen++
	cmd := quantityCommand{productID: productID, quantity: quantity, gen: s.nextGen}
	s.pending[productID] = &pendingWrite{
		gen: cmd.gen,
		timer: time.AfterFunc(s.debounce, func() {
			s.commit(cmd)
		}),
	}
}

// commit performs the upstream write for a debounced edit, then refetches so
// server-side recalculation (price changes, availability) lands locally.
func (s *Synchronizer) commit(cmd quantityCommand) {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	pw, ok := s.pending[cmd.productID]
	if !ok || pw.gen != cmd.gen {
		// A newer edit re-armed the timer; let that one write.
		s.mu.Unlock()
		return
	}
	delete(s.pending, cmd.productID)
	sess := s.sess
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := s.client.UpdateQuantity(ctx, sess, cmd.productID, cmd.quantity); err != nil {
		s.rollback(cmd, err)
		return
	}
	s.confirm(cmd)

	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn("cart refetch after write failed", "product_id", cmd.productID, "error", err)
	}
}

// rollback restores the last server-confirmed quantity for the line and
// records the failure so the next snapshot can surface it.
func (s *Synchronizer) rollback(cmd quantityCommand, cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return
	}

	if item, ok := s.cart.Item(cmd.productID); ok {
		if confirmedQty, known := s.confirmed[cmd.productID]; known {
			item.RevertQuantity(confirmedQty)
		}
	}
	s.itemErrs[cmd.productID] = cause.Error()
	s.logger.Warn("cart write rejected, quantity rolled back",
		"product_id", cmd.productID,
		"rejected_quantity", cmd.quantity,
		"error", cause,
	)
}

func (s *Synchronizer) confirm(cmd quantityCommand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return
	}
	s.confirmed[cmd.productID] = cmd.quantity
	delete(s.itemErrs, cmd.productID)
}

func (s *Synchronizer) recordItemError(productID string, cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return
	}
	s.itemErrs[productID] = cause.Error()
}

// applyFetchedLocked replaces the local cart with the fetched one. Lines with
// an uncommitted local edit keep their local quantity so a refetch racing a
// pending write does not visibly snap the field back.
func (s *Synchronizer) applyFetchedLocked(fetched *cart.Cart) {
	localQty := make(map[string]int, len(s.pending))
	if s.cart != nil {
		for productID := range s.pending {
			if item, ok := s.cart.Item(productID); ok {
				localQty[productID] = item.Quantity()
			}
		}
	}

	s.cart = fetched
	s.confirmed = make(map[string]int, len(fetched.Items()))
	for _, item := range fetched.Items() {
		s.confirmed[item.ProductID()] = item.Quantity()
		if qty, ok := localQty[item.ProductID()]; ok && item.IsEditable() {
			item.RevertQuantity(item.ClampQuantity(qty))
		}
	}

	for productID := range s.itemErrs {
		if _, ok := fetched.Item(productID); !ok {
			delete(s.itemErrs, productID)
		}
	}
}
