package queries_test

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

type MockPincodeResolver struct{ mock.Mock }

func (m *MockPincodeResolver) Resolve(ctx context.Context, pincode address.Pincode) (ports.Locality, error) {
	args := m.Called(ctx, pincode)
	return args.Get(0).(ports.Locality), args.Error(1)
}

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

type fixedCartClient struct{ quantity int }

func (c *fixedCartClient) GetCart(_ context.Context, _ ports.Session) (*cart.Cart, error) {
	price, err := kernel.NewMoney(4500)
	if err != nil {
		return nil, err
	}
	item, err := cart.NewItem("seeds-1", "Tomato Seeds", price, c.quantity, 20, true)
	if err != nil {
		return nil, err
	}
	return cart.NewCart([]*cart.Item{item})
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
		order.PaymentPaid,
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

func testRegistry(t *testing.T, quantity int) *cartsync.Registry {
	t.Helper()

	registry := cartsync.NewRegistry(&fixedCartClient{quantity: quantity}, time.Millisecond, nil)
	t.Cleanup(registry.DisposeAll)
	return registry
}
