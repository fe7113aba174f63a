package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agrimarket/internal/core/application/usecases/commands"
	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/core/domain/services"
	"agrimarket/internal/pkg/errs"
)

func TestPlaceCodOrderCommandHandler_Handle(t *testing.T) {
	t.Run("places_order_and_evicts_the_cart", func(t *testing.T) {
		ctx := t.Context()
		addr := testAddress(t, "addr-1")
		cmd, err := commands.NewPlaceCodOrderCommand(testSession(), addr, "leave at the gate")
		require.NoError(t, err)

		carts := newTestCartAccess(t, fixedLine{productID: "seeds-1", quantity: 2, available: true})
		placed := testOrder(t, order.StatusPlaced, nil)
		payments := new(MockPaymentClient)
		payments.On("PlaceCodOrder", ctx, testSession(), addr, "leave at the gate").
			Return(placed, nil).Once()

		h := commands.NewPlaceCodOrderCommandHandler(carts, services.NewCheckoutValidator(), payments)
		got, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.PaymentPending, got.PaymentStatus())
		assert.Equal(t, []string{"buyer-1"}, carts.evicted)
		payments.AssertExpectations(t)
	})

	t.Run("empty_cart_blocks_the_upstream_call", func(t *testing.T) {
		cmd, err := commands.NewPlaceCodOrderCommand(testSession(), testAddress(t, "addr-1"), "")
		require.NoError(t, err)

		carts := newTestCartAccess(t)
		payments := new(MockPaymentClient)

		h := commands.NewPlaceCodOrderCommandHandler(carts, services.NewCheckoutValidator(), payments)
		_, err = h.Handle(t.Context(), cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		payments.AssertNotCalled(t, "PlaceCodOrder")
		assert.Empty(t, carts.evicted)
	})

	t.Run("unavailable_item_blocks_the_upstream_call", func(t *testing.T) {
		cmd, err := commands.NewPlaceCodOrderCommand(testSession(), testAddress(t, "addr-1"), "")
		require.NoError(t, err)

		carts := newTestCartAccess(t,
			fixedLine{productID: "seeds-1", quantity: 2, available: true},
			fixedLine{productID: "gone-4", quantity: 1, available: false},
		)
		payments := new(MockPaymentClient)

		h := commands.NewPlaceCodOrderCommandHandler(carts, services.NewCheckoutValidator(), payments)
		_, err = h.Handle(t.Context(), cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotAvailable)
		payments.AssertNotCalled(t, "PlaceCodOrder")
	})

	t.Run("upstream_failure_keeps_the_cart", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewPlaceCodOrderCommand(testSession(), testAddress(t, "addr-1"), "")
		require.NoError(t, err)

		carts := newTestCartAccess(t, fixedLine{productID: "seeds-1", quantity: 2, available: true})
		payments := new(MockPaymentClient)
		payments.On("PlaceCodOrder", ctx, testSession(), mock.Anything, "").
			Return(nil, errs.NewNetworkFailureError("place cod order", nil)).Once()

		h := commands.NewPlaceCodOrderCommandHandler(carts, services.NewCheckoutValidator(), payments)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrNetworkFailure)
		assert.Empty(t, carts.evicted)
	})
}
