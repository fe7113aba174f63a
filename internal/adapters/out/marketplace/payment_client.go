package marketplace

import (
	"context"
	"errors"
	"net/http"

	"agrimarket/internal/core/domain/model/address"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
)

// PlaceCodOrder places a deferred-settlement order in one request.
func (c *Client) PlaceCodOrder(
	ctx context.Context,
	sess ports.Session,
	deliveryTo address.Address,
	notes string,
) (*order.Order, error) {
	body := struct {
		Address addressDTO `json:"address"`
		Notes   string     `json:"notes,omitempty"`
	}{Address: addressFromDomain(deliveryTo), Notes: notes}

	var dto orderDTO
	if err := c.do(ctx, sess, http.MethodPost, "/payments/cod", body, &dto, nil); err != nil {
		return nil, err
	}
	return dto.toDomain()
}

// CreateGatewayIntent requests a payment intent for the current cart. Any
// upstream rejection surfaces as a payment failure at the intent stage; the
// buyer has not been charged.
func (c *Client) CreateGatewayIntent(ctx context.Context, sess ports.Session) (ports.PaymentIntent, error) {
	var dto paymentIntentDTO
	if err := c.do(ctx, sess, http.MethodPost, "/payments/create-order", nil, &dto, nil); err != nil {
		if errors.Is(err, errs.ErrNetworkFailure) || errors.Is(err, errs.ErrNotAuthenticated) {
			return ports.PaymentIntent{}, err
		}
		return ports.PaymentIntent{}, errs.NewPaymentFailedErrorWithCause(errs.PaymentStageIntent, err)
	}

	amount, err := kernel.NewMoneyFromRupees(dto.Amount)
	if err != nil {
		return ports.PaymentIntent{}, err
	}

	return ports.PaymentIntent{
		Key:            dto.Key,
		GatewayOrderID: dto.OrderID,
		Amount:         amount,
		Currency:       dto.Currency,
	}, nil
}

// VerifyGatewayPayment forwards the signed triple for verification. A
// rejection maps to a verification-stage payment failure, which carries the
// contact-support flag: the gateway may have collected money for an order
// the server will not place.
func (c *Client) VerifyGatewayPayment(
	ctx context.Context,
	sess ports.Session,
	confirmation ports.GatewayConfirmation,
	deliveryTo address.Address,
	notes string,
) (*order.Order, error) {
	body := struct {
		GatewayOrderID string     `json:"razorpayOrderId"`
		PaymentID      string     `json:"razorpayPaymentId"`
		Signature      string     `json:"razorpaySignature"`
		Address        addressDTO `json:"address"`
		Notes          string     `json:"notes,omitempty"`
	}{
		GatewayOrderID: confirmation.GatewayOrderID,
		PaymentID:      confirmation.PaymentID,
		Signature:      confirmation.Signature,
		Address:        addressFromDomain(deliveryTo),
		Notes:          notes,
	}

	var dto orderDTO
	if err := c.do(ctx, sess, http.MethodPost, "/payments/verify", body, &dto, nil); err != nil {
		if errors.Is(err, errs.ErrNetworkFailure) || errors.Is(err, errs.ErrNotAuthenticated) {
			return nil, err
		}
		return nil, errs.NewPaymentFailedErrorWithCause(errs.PaymentStageVerification, err)
	}
	return dto.toDomain()
}
