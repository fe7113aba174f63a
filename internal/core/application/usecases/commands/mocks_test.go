package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agrimarket/internal/core/application/cartsync"
	"agrimarket/internal/core/domain/model/address"
	"agrimarket/internal/core/domain/model/cart"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/core/ports"
)

type MockAddressClient struct{ mock.Mock }

func (m *MockAddressClient) GetAddresses(ctx context.Context, sess ports.Session) ([]address.Address, error) {
	args := m.Called(ctx, sess)
	return args.Get(0).([]address.Address), args.Error(1)
}

func (m *MockAddressClient) CreateAddress(
	ctx context.Context, sess ports.Session, addr address.Address,
) (address.Address, error) {
	args := m.Called(ctx, sess, addr)
	return args.Get(0).(address.Address), args.Error(1)
}

func (m *MockAddressClient) UpdateAddress(
	ctx context.Context, sess ports.Session, addr address.Address,
) (address.Address, error) {
	args := m.Called(ctx, sess, addr)
	return args.Get(0).(address.Address), args.Error(1)
}

func (m *MockAddressClient) DeleteAddress(ctx context.Context, sess ports.Session, addressID string) error {
	args := m.Called(ctx, sess, addressID)
	return args.Error(0)
}

func (m *MockAddressClient) SetDefaultAddress(ctx context.Context, sess ports.Session, addressID string) error {
	args := m.Called(ctx, sess, addressID)
	return args.Error(0)
}

type MockPaymentClient struct{ mock.Mock }

func (m *MockPaymentClient) PlaceCodOrder(
	ctx context.Context, sess ports.Session, deliveryTo address.Address, notes string,
) (*order.Order, error) {
	args := m.Called(ctx, sess, deliveryTo, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockPaymentClient) CreateGatewayIntent(ctx context.Context, sess ports.Session) (ports.PaymentIntent, error) {
	args := m.Called(ctx, sess)
	return args.Get(0).(ports.PaymentIntent), args.Error(1)
}

func (m *MockPaymentClient) VerifyGatewayPayment(
	ctx context.Context,
	sess ports.Session,
	confirmation ports.GatewayConfirmation,
	deliveryTo address.Address,
	notes string,
) (*order.Order, error) {
	args := m.Called(ctx, sess, confirmation, deliveryTo, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderClient struct{ mock.Mock }

func (m *MockOrderClient) GetOrders(ctx context.Context, sess ports.Session) ([]*order.Order, error) {
	args := m.Called(ctx, sess)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderClient) GetOrder(ctx context.Context, sess ports.Session, orderID string) (*order.Order, error) {
	args := m.Called(ctx, sess, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderClient) CancelOrder(
	ctx context.Context, sess ports.Session, orderID string, reason order.Reason, idempotencyKey string,
) error {
	args := m.Called(ctx, sess, orderID, reason, idempotencyKey)
	return args.Error(0)
}

func (m *MockOrderClient) RequestReturn(
	ctx context.Context, sess ports.Session, orderID string, reason order.Reason, idempotencyKey string,
) error {
	args := m.Called(ctx, sess, orderID, reason, idempotencyKey)
	return args.Error(0)
}

func (m *MockOrderClient) RequestReplacement(
	ctx context.Context, sess ports.Session, orderID string, reason order.Reason, idempotencyKey string,
) error {
	args := m.Called(ctx, sess, orderID, reason, idempotencyKey)
	return args.Error(0)
}

func (m *MockOrderClient) DownloadInvoice(
	ctx context.Context, sess ports.Session, orderID string,
) (ports.Invoice, error) {
	args := m.Called(ctx, sess, orderID)
	return args.Get(0).(ports.Invoice), args.Error(1)
}

type MockCheckoutStore struct{ mock.Mock }

func (m *MockCheckoutStore) Put(ctx context.Context, pending ports.PendingCheckout, ttl time.Duration) error {
	args := m.Called(ctx, pending, ttl)
	return args.Error(0)
}

func (m *MockCheckoutStore) Get(ctx context.Context, gatewayOrderID string) (ports.PendingCheckout, error) {
	args := m.Called(ctx, gatewayOrderID)
	return args.Get(0).(ports.PendingCheckout), args.Error(1)
}

func (m *MockCheckoutStore) Delete(ctx context.Context, gatewayOrderID string) error {
	args := m.Called(ctx, gatewayOrderID)
	return args.Error(0)
}

// fixedCartClient serves one immutable cart; writes succeed silently. Enough
// for checkout handlers, which only flush and read.
type fixedCartClient struct {
	lines []fixedLine
}

type fixedLine struct {
	productID string
	quantity  int
	available bool
}

func (c *fixedCartClient) GetCart(_ context.Context, _ ports.Session) (*cart.Cart, error) {
	items := make([]*cart.Item, 0, len(c.lines))
	for _, line := range c.lines {
		price, err := kernel.NewMoney(5000)
		if err != nil {
			return nil, err
		}
		item, err := cart.NewItem(line.productID, line.productID, price, line.quantity, 10, line.available)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return cart.NewCart(items)
}

func (c *fixedCartClient) UpdateQuantity(_ context.Context, _ ports.Session, _ string, _ int) error {
	return nil
}

func (c *fixedCartClient) AddItem(_ context.Context, _ ports.Session, _ string, _ int) error {
	return nil
}

func (c *fixedCartClient) RemoveItem(_ context.Context, _ ports.Session, _ string) error {
	return nil
}

// testCartAccess backs commands.CartAccess with a real registry over a fixed
// cart, recording evictions.
type testCartAccess struct {
	registry *cartsync.Registry
	evicted  []string
}

func newTestCartAccess(t *testing.T, lines ...fixedLine) *testCartAccess {
	t.Helper()

	registry := cartsync.NewRegistry(&fixedCartClient{lines: lines}, time.Millisecond, nil)
	t.Cleanup(registry.DisposeAll)
	return &testCartAccess{registry: registry}
}

func (a *testCartAccess) ForSession(sess ports.Session) *cartsync.Synchronizer {
	sync := a.registry.ForSession(sess)
	_ = sync.Refresh(context.Background())
	return sync
}

func (a *testCartAccess) Evict(buyerID string) {
	a.evicted = append(a.evicted, buyerID)
	a.registry.Evict(buyerID)
}

func testSession() ports.Session {
	return ports.Session{BuyerID: "buyer-1", Token: "tok"}
}

func testAddress(t *testing.T, id string) address.Address {
	t.Helper()

	pin, err := address.NewPincode("411001")
	require.NoError(t, err)
	addr, err := address.NewAddress(id, "Home", "12 Farm Road", pin, "Pune", "Maharashtra", true)
	require.NoError(t, err)
	return addr
}

func testOrder(t *testing.T, status order.Status, deliveredAt *time.Time) *order.Order {
	t.Helper()

	price, err := kernel.NewMoney(5000)
	require.NoError(t, err)
	line, err := order.NewItemLine("seeds-1", "vendor-1", "Tomato Seeds", price, 2)
	require.NoError(t, err)

	created := time.Now().Add(-10 * 24 * time.Hour)
	o, err := order.NewOrder(
		"ord-1", "AGM-1001", "buyer-1",
		[]order.ItemLine{line},
		price.Mul(2),
		order.PaymentPending,
		status,
		testAddress(t, "addr-1"),
		"",
		created, created,
		deliveredAt,
		order.ReturnNone,
		"",
		nil,
	)
	require.NoError(t, err)
	return o
}
