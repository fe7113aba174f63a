package order_test

import (
	"testing"
	"time"

	"agrimarket/internal/core/domain/model/address"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) address.Address {
	t.Helper()
	pin, err := address.NewPincode("560001")
	require.NoError(t, err)
	addr, err := address.NewAddress("addr-1", "Home", "12 MG Road", pin, "Bengaluru Urban", "Karnataka", true)
	require.NoError(t, err)
	return addr
}

func testLine(t *testing.T) order.ItemLine {
	t.Helper()
	price, err := kernel.NewMoney(4500)
	require.NoError(t, err)
	line, err := order.NewItemLine("prod-1", "vendor-1", "Tomato seeds", price, 2)
	require.NoError(t, err)
	return line
}

func testOrder(t *testing.T, status order.Status, deliveredAt *time.Time) *order.Order {
	t.Helper()
	total, err := kernel.NewMoney(9000)
	require.NoError(t, err)
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	o, err := order.NewOrder(
		"ord-1", "AM-2025-0001", "buyer-1",
		[]order.ItemLine{testLine(t)},
		total,
		order.PaymentPending,
		status,
		testAddress(t),
		"leave at the gate",
		created, created,
		deliveredAt,
		order.ReturnNone, "", nil,
	)
	require.NoError(t, err)
	return o
}

func TestNewItemLine(t *testing.T) {
	t.Run("valid line", func(t *testing.T) {
		line := testLine(t)

		assert.Equal(t, "prod-1", line.ProductID())
		assert.Equal(t, int64(9000), line.Subtotal().Paise())
	})

	t.Run("empty product id is rejected", func(t *testing.T) {
		price, _ := kernel.NewMoney(100)
		_, err := order.NewItemLine("", "v", "x", price, 1)
		require.Error(t, err)
	})

	t.Run("zero quantity is rejected", func(t *testing.T) {
		price, _ := kernel.NewMoney(100)
		_, err := order.NewItemLine("p", "v", "x", price, 0)
		require.Error(t, err)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("valid order", func(t *testing.T) {
		o := testOrder(t, order.StatusPlaced, nil)

		assert.NoError(t, o.Validate())
		assert.Equal(t, "AM-2025-0001", o.Number())
		assert.Equal(t, order.StatusPlaced, o.Status())
		assert.Nil(t, o.DeliveredAt())
	})

	t.Run("delivered order requires deliveredAt", func(t *testing.T) {
		total, _ := kernel.NewMoney(9000)
		created := time.Now()

		_, err := order.NewOrder(
			"ord-1", "AM-1", "buyer-1",
			[]order.ItemLine{testLine(t)},
			total, order.PaymentPaid, order.StatusDelivered,
			testAddress(t), "", created, created,
			nil,
			order.ReturnNone, "", nil,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("order without items is rejected", func(t *testing.T) {
		total, _ := kernel.NewMoney(0)
		created := time.Now()

		_, err := order.NewOrder(
			"ord-1", "AM-1", "buyer-1",
			nil,
			total, order.PaymentPending, order.StatusPlaced,
			testAddress(t), "", created, created, nil,
			order.ReturnNone, "", nil,
		)

		require.Error(t, err)
	})

	t.Run("zero value order fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestStatusParsing(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, s := range []order.Status{
			order.StatusPlaced, order.StatusConfirmed, order.StatusProcessing,
			order.StatusShipped, order.StatusDelivered, order.StatusCancelled,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("unknown string is rejected", func(t *testing.T) {
		_, err := order.StatusFromString("TELEPORTED")
		require.Error(t, err)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		require.Error(t, order.StatusUnknown.Validate())
		assert.Equal(t, "UNKNOWN", order.StatusUnknown.String())
	})
}

func TestPaymentStatusParsing(t *testing.T) {
	for _, s := range []order.PaymentStatus{
		order.PaymentPending, order.PaymentPaid, order.PaymentFailed, order.PaymentRefunded,
	} {
		parsed, err := order.PaymentStatusFromString(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := order.PaymentStatusFromString("BARTERED")
	require.Error(t, err)
}

func TestReturnStatusParsing(t *testing.T) {
	t.Run("empty string means no return", func(t *testing.T) {
		s, err := order.ReturnStatusFromString("")
		require.NoError(t, err)
		assert.Equal(t, order.ReturnNone, s)
	})

	t.Run("round trip", func(t *testing.T) {
		for _, s := range []order.ReturnStatus{
			order.ReturnNone, order.ReturnRequested, order.ReturnApproved, order.ReturnRejected,
		} {
			parsed, err := order.ReturnStatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})
}

func TestAvailableActions_StatusMatrix(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	delivered := now.Add(-24 * time.Hour)

	tests := []struct {
		name        string
		status      order.Status
		deliveredAt *time.Time
		want        order.Actions
	}{
		{"placed allows cancel only", order.StatusPlaced, nil, order.Actions{CanCancel: true}},
		{"confirmed allows cancel only", order.StatusConfirmed, nil, order.Actions{CanCancel: true}},
		{"processing allows nothing", order.StatusProcessing, nil, order.Actions{}},
		{"shipped allows nothing", order.StatusShipped, nil, order.Actions{}},
		{"cancelled allows nothing", order.StatusCancelled, nil, order.Actions{}},
		{"delivered within window allows return and replace", order.StatusDelivered, &delivered,
			order.Actions{CanReturn: true, CanReplace: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, order.AvailableActions(tt.status, tt.deliveredAt, now))
		})
	}
}

func TestAvailableActions_ReturnWindow(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	deliveredAgo := func(d time.Duration) *time.Time {
		ts := now.Add(-d)
		return &ts
	}

	t.Run("six days after delivery: return and replace, no invoice", func(t *testing.T) {
		actions := order.AvailableActions(order.StatusDelivered, deliveredAgo(6*24*time.Hour), now)

		assert.True(t, actions.CanReturn)
		assert.True(t, actions.CanReplace)
		assert.False(t, actions.CanInvoice)
	})

	t.Run("eight days after delivery: invoice only", func(t *testing.T) {
		actions := order.AvailableActions(order.StatusDelivered, deliveredAgo(8*24*time.Hour), now)

		assert.False(t, actions.CanReturn)
		assert.False(t, actions.CanReplace)
		assert.True(t, actions.CanInvoice)
	})

	t.Run("one minute before the boundary still allows return", func(t *testing.T) {
		actions := order.AvailableActions(order.StatusDelivered,
			deliveredAgo(6*24*time.Hour+23*time.Hour+59*time.Minute), now)

		assert.True(t, actions.CanReturn)
		assert.False(t, actions.CanInvoice)
	})

	t.Run("one minute past the boundary flips to invoice", func(t *testing.T) {
		actions := order.AvailableActions(order.StatusDelivered,
			deliveredAgo(7*24*time.Hour+time.Minute), now)

		assert.False(t, actions.CanReturn)
		assert.True(t, actions.CanInvoice)
	})

	t.Run("exactly seven days flips to invoice", func(t *testing.T) {
		actions := order.AvailableActions(order.StatusDelivered, deliveredAgo(order.ReturnWindow), now)

		assert.False(t, actions.CanReturn)
		assert.False(t, actions.CanReplace)
		assert.True(t, actions.CanInvoice)
	})

	t.Run("delivered without timestamp allows nothing", func(t *testing.T) {
		actions := order.AvailableActions(order.StatusDelivered, nil, now)

		assert.Equal(t, order.Actions{}, actions)
	})

	t.Run("return and invoice are never allowed together", func(t *testing.T) {
		for hours := 0; hours < 24*14; hours++ {
			actions := order.AvailableActions(order.StatusDelivered,
				deliveredAgo(time.Duration(hours)*time.Hour), now)
			assert.False(t, actions.CanReturn && actions.CanInvoice,
				"both allowed at %d hours after delivery", hours)
			assert.True(t, actions.CanReturn || actions.CanInvoice,
				"neither allowed at %d hours after delivery", hours)
		}
	})
}

func TestOrder_AvailableActions(t *testing.T) {
	now := time.Now()
	delivered := now.Add(-2 * 24 * time.Hour)
	o := testOrder(t, order.StatusDelivered, &delivered)

	actions := o.AvailableActions(now)
	assert.True(t, actions.CanReturn)
	assert.False(t, actions.CanCancel)
}

func TestNewReason(t *testing.T) {
	t.Run("specific code without text", func(t *testing.T) {
		r, err := order.NewReason(order.ReasonItemDamaged, "")

		require.NoError(t, err)
		assert.NoError(t, r.Validate())
		assert.Equal(t, "ITEM_DAMAGED", r.String())
	})

	t.Run("specific code with optional note", func(t *testing.T) {
		r, err := order.NewReason(order.ReasonItemDamaged, "bag was torn")

		require.NoError(t, err)
		assert.Equal(t, "ITEM_DAMAGED: bag was torn", r.String())
	})

	t.Run("other requires free text", func(t *testing.T) {
		_, err := order.NewReason(order.ReasonOther, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("other with text is accepted", func(t *testing.T) {
		r, err := order.NewReason(order.ReasonOther, "crop cycle changed")

		require.NoError(t, err)
		assert.Equal(t, "OTHER: crop cycle changed", r.String())
	})

	t.Run("empty code is rejected", func(t *testing.T) {
		_, err := order.NewReason("", "whatever")
		require.Error(t, err)
	})

	t.Run("unknown code is rejected", func(t *testing.T) {
		_, err := order.NewReason("BAD_MOOD", "")
		require.Error(t, err)
	})

	t.Run("zero value reason fails validation", func(t *testing.T) {
		var r order.Reason
		require.ErrorIs(t, r.Validate(), order.ErrReasonIsNotConstructed)
	})
}
