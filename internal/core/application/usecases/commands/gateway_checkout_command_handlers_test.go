package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agrimarket/internal/core/application/usecases/commands"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/core/domain/services"
	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
)

func testIntent(t *testing.T) ports.PaymentIntent {
	t.Helper()

	amount, err := kernel.NewMoney(10000)
	require.NoError(t, err)
	return ports.PaymentIntent{
		Key:            "rzp_test_key",
		GatewayOrderID: "gw-order-1",
		Amount:         amount,
		Currency:       "INR",
	}
}

func testConfirmation() ports.GatewayConfirmation {
	return ports.GatewayConfirmation{
		GatewayOrderID: "gw-order-1",
		PaymentID:      "pay-1",
		Signature:      "sig-1",
	}
}

func testPending(t *testing.T, buyerID string) ports.PendingCheckout {
	t.Helper()

	amount, err := kernel.NewMoney(10000)
	require.NoError(t, err)
	return ports.PendingCheckout{
		GatewayOrderID: "gw-order-1",
		BuyerID:        buyerID,
		DeliveryTo:     testAddress(t, "addr-1"),
		Notes:          "ring twice",
		Amount:         amount,
		CreatedAt:      time.Now(),
	}
}

func TestBeginGatewayCheckoutCommandHandler_Handle(t *testing.T) {
	t.Run("creates_intent_and_parks_the_checkout", func(t *testing.T) {
		ctx := t.Context()
		addr := testAddress(t, "addr-1")
		cmd, err := commands.NewBeginGatewayCheckoutCommand(testSession(), addr, "ring twice")
		require.NoError(t, err)

		carts := newTestCartAccess(t, fixedLine{productID: "seeds-1", quantity: 2, available: true})
		payments := new(MockPaymentClient)
		payments.On("CreateGatewayIntent", ctx, testSession()).Return(testIntent(t), nil).Once()

		store := new(MockCheckoutStore)
		store.On("Put", ctx, mock.MatchedBy(func(p ports.PendingCheckout) bool {
			return p.GatewayOrderID == "gw-order-1" &&
				p.BuyerID == "buyer-1" &&
				p.Notes == "ring twice" &&
				p.DeliveryTo.ID() == "addr-1"
		}), commands.DefaultPendingCheckoutTTL).Return(nil).Once()

		h := commands.NewBeginGatewayCheckoutCommandHandler(
			carts, services.NewCheckoutValidator(), payments, store, 0,
		)
		intent, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "gw-order-1", intent.GatewayOrderID)
		assert.Empty(t, carts.evicted, "no order exists yet")
		store.AssertExpectations(t)
		payments.AssertExpectations(t)
	})

	t.Run("park_failure_fails_the_begin_step", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewBeginGatewayCheckoutCommand(testSession(), testAddress(t, "addr-1"), "")
		require.NoError(t, err)

		carts := newTestCartAccess(t, fixedLine{productID: "seeds-1", quantity: 2, available: true})
		payments := new(MockPaymentClient)
		payments.On("CreateGatewayIntent", ctx, testSession()).Return(testIntent(t), nil).Once()

		store := new(MockCheckoutStore)
		store.On("Put", ctx, mock.Anything, mock.Anything).
			Return(errs.NewNetworkFailureError("park checkout", nil)).Once()

		h := commands.NewBeginGatewayCheckoutCommandHandler(
			carts, services.NewCheckoutValidator(), payments, store, 0,
		)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrNetworkFailure)
	})

	t.Run("invalid_cart_never_reaches_the_gateway", func(t *testing.T) {
		cmd, err := commands.NewBeginGatewayCheckoutCommand(testSession(), testAddress(t, "addr-1"), "")
		require.NoError(t, err)

		carts := newTestCartAccess(t, fixedLine{productID: "gone-4", quantity: 1, available: false})
		payments := new(MockPaymentClient)
		store := new(MockCheckoutStore)

		h := commands.NewBeginGatewayCheckoutCommandHandler(
			carts, services.NewCheckoutValidator(), payments, store, 0,
		)
		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrNotAvailable)
		payments.AssertNotCalled(t, "CreateGatewayIntent")
	})
}

func TestCompleteGatewayCheckoutCommandHandler_Handle(t *testing.T) {
	t.Run("verified_payment_places_the_order", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCompleteGatewayCheckoutCommand(testSession(), testConfirmation())
		require.NoError(t, err)

		pending := testPending(t, "buyer-1")
		store := new(MockCheckoutStore)
		store.On("Get", ctx, "gw-order-1").Return(pending, nil).Once()
		store.On("Delete", ctx, "gw-order-1").Return(nil).Once()

		placed := testOrder(t, order.StatusPlaced, nil)
		payments := new(MockPaymentClient)
		payments.On("VerifyGatewayPayment", ctx, testSession(), testConfirmation(), pending.DeliveryTo, "ring twice").
			Return(placed, nil).Once()

		carts := newTestCartAccess(t)
		h := commands.NewCompleteGatewayCheckoutCommandHandler(payments, store, carts, nil)
		got, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "ord-1", got.ID())
		assert.Equal(t, []string{"buyer-1"}, carts.evicted)
		store.AssertExpectations(t)
		payments.AssertExpectations(t)
	})

	t.Run("unknown_id_fails_without_calling_verify", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCompleteGatewayCheckoutCommand(testSession(), testConfirmation())
		require.NoError(t, err)

		store := new(MockCheckoutStore)
		store.On("Get", ctx, "gw-order-1").
			Return(ports.PendingCheckout{}, errs.NewObjectNotFoundError("gatewayOrderID", "gw-order-1")).Once()

		payments := new(MockPaymentClient)
		h := commands.NewCompleteGatewayCheckoutCommandHandler(payments, store, newTestCartAccess(t), nil)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		payments.AssertNotCalled(t, "VerifyGatewayPayment")
	})

	t.Run("other_buyers_checkout_reads_as_not_found", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCompleteGatewayCheckoutCommand(testSession(), testConfirmation())
		require.NoError(t, err)

		store := new(MockCheckoutStore)
		store.On("Get", ctx, "gw-order-1").Return(testPending(t, "someone-else"), nil).Once()

		payments := new(MockPaymentClient)
		h := commands.NewCompleteGatewayCheckoutCommandHandler(payments, store, newTestCartAccess(t), nil)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		payments.AssertNotCalled(t, "VerifyGatewayPayment")
	})

	t.Run("verification_failure_keeps_the_pending_record", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCompleteGatewayCheckoutCommand(testSession(), testConfirmation())
		require.NoError(t, err)

		store := new(MockCheckoutStore)
		store.On("Get", ctx, "gw-order-1").Return(testPending(t, "buyer-1"), nil).Once()

		payments := new(MockPaymentClient)
		payments.On("VerifyGatewayPayment", ctx, testSession(), mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errs.NewPaymentFailedError(errs.PaymentStageVerification)).Once()

		carts := newTestCartAccess(t)
		h := commands.NewCompleteGatewayCheckoutCommandHandler(payments, store, carts, nil)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrPaymentFailed)
		store.AssertNotCalled(t, "Delete")
		assert.Empty(t, carts.evicted)
	})

	t.Run("incomplete_triple_is_rejected_at_construction", func(t *testing.T) {
		conf := testConfirmation()
		conf.Signature = ""

		_, err := commands.NewCompleteGatewayCheckoutCommand(testSession(), conf)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAbortGatewayCheckoutCommandHandler_Handle(t *testing.T) {
	t.Run("deletes_the_parked_record", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewAbortGatewayCheckoutCommand(testSession(), "gw-order-1")
		require.NoError(t, err)

		store := new(MockCheckoutStore)
		store.On("Get", ctx, "gw-order-1").Return(testPending(t, "buyer-1"), nil).Once()
		store.On("Delete", ctx, "gw-order-1").Return(nil).Once()

		h := commands.NewAbortGatewayCheckoutCommandHandler(store)
		require.NoError(t, h.Handle(ctx, cmd))
		store.AssertExpectations(t)
	})

	t.Run("expired_record_aborts_cleanly", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewAbortGatewayCheckoutCommand(testSession(), "gw-order-1")
		require.NoError(t, err)

		store := new(MockCheckoutStore)
		store.On("Get", ctx, "gw-order-1").
			Return(ports.PendingCheckout{}, errs.NewObjectNotFoundError("gatewayOrderID", "gw-order-1")).Once()

		h := commands.NewAbortGatewayCheckoutCommandHandler(store)
		require.NoError(t, h.Handle(ctx, cmd))
		store.AssertNotCalled(t, "Delete")
	})

	t.Run("other_buyers_record_is_left_alone", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewAbortGatewayCheckoutCommand(testSession(), "gw-order-1")
		require.NoError(t, err)

		store := new(MockCheckoutStore)
		store.On("Get", ctx, "gw-order-1").Return(testPending(t, "someone-else"), nil).Once()

		h := commands.NewAbortGatewayCheckoutCommandHandler(store)
		require.NoError(t, h.Handle(ctx, cmd))
		store.AssertNotCalled(t, "Delete")
	})
}
