// Package redisstore keeps short-lived marketplace state in Redis: pending
// gateway checkouts that must expire on their own, and a cache in front of
// the postal pincode lookup.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"agrimarket/internal/core/domain/model/address"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
)

const checkoutKeyPrefix = "checkout:pending:"

// CheckoutStore implements ports.CheckoutStore on Redis. Each pending
// checkout lives under its gateway order id with the TTL supplied at Put
// time, so abandoned widgets clean up after themselves.
type CheckoutStore struct {
	client *redis.Client
}

// NewCheckoutStore creates a store over an established Redis client.
func NewCheckoutStore(client *redis.Client) (*CheckoutStore, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	return &CheckoutStore{client: client}, nil
}

type pendingCheckoutDTO struct {
	GatewayOrderID string    `json:"gatewayOrderId"`
	BuyerID        string    `json:"buyerId"`
	Label          string    `json:"label"`
	Street         string    `json:"street"`
	District       string    `json:"district"`
	State          string    `json:"state"`
	Pincode        string    `json:"pincode"`
	AddressID      string    `json:"addressId"`
	IsDefault      bool      `json:"isDefault"`
	Notes          string    `json:"notes"`
	AmountPaise    int64     `json:"amountPaise"`
	CreatedAt      time.Time `json:"createdAt"`
}

func pendingToDTO(pending ports.PendingCheckout) pendingCheckoutDTO {
	return pendingCheckoutDTO{
		GatewayOrderID: pending.GatewayOrderID,
		BuyerID:        pending.BuyerID,
		Label:          pending.DeliveryTo.Label(),
		Street:         pending.DeliveryTo.Street(),
		District:       pending.DeliveryTo.District(),
		State:          pending.DeliveryTo.State(),
		Pincode:        pending.DeliveryTo.Pincode().String(),
		AddressID:      pending.DeliveryTo.ID(),
		IsDefault:      pending.DeliveryTo.IsDefault(),
		Notes:          pending.Notes,
		AmountPaise:    pending.Amount.Paise(),
		CreatedAt:      pending.CreatedAt,
	}
}

func (d pendingCheckoutDTO) toDomain() (ports.PendingCheckout, error) {
	pin, err := address.NewPincode(d.Pincode)
	if err != nil {
		return ports.PendingCheckout{}, err
	}

	deliveryTo, err := address.NewAddress(d.AddressID, d.Label, d.Street, pin, d.District, d.State, d.IsDefault)
	if err != nil {
		return ports.PendingCheckout{}, err
	}

	amount, err := kernel.NewMoney(d.AmountPaise)
	if err != nil {
		return ports.PendingCheckout{}, err
	}

	return ports.PendingCheckout{
		GatewayOrderID: d.GatewayOrderID,
		BuyerID:        d.BuyerID,
		DeliveryTo:     deliveryTo,
		Notes:          d.Notes,
		Amount:         amount,
		CreatedAt:      d.CreatedAt,
	}, nil
}

// Put parks a pending checkout under its gateway order id for ttl.
func (s *CheckoutStore) Put(ctx context.Context, pending ports.PendingCheckout, ttl time.Duration) error {
	if pending.GatewayOrderID == "" {
		return errs.NewValueIsRequiredError("pending.GatewayOrderID")
	}
	if ttl <= 0 {
		return errs.NewValueIsInvalidError("ttl")
	}

	payload, err := json.Marshal(pendingToDTO(pending))
	if err != nil {
		return fmt.Errorf("marshal pending checkout: %w", err)
	}

	if err := s.client.Set(ctx, checkoutKeyPrefix+pending.GatewayOrderID, payload, ttl).Err(); err != nil {
		return errs.NewNetworkFailureError("redis SET", err)
	}
	return nil
}

// Get loads a pending checkout. An unknown or expired id is reported as
// object-not-found; the caller cannot tell the two apart and does not need to.
func (s *CheckoutStore) Get(ctx context.Context, gatewayOrderID string) (ports.PendingCheckout, error) {
	if gatewayOrderID == "" {
		return ports.PendingCheckout{}, errs.NewValueIsRequiredError("gatewayOrderID")
	}

	payload, err := s.client.Get(ctx, checkoutKeyPrefix+gatewayOrderID).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.PendingCheckout{}, errs.NewObjectNotFoundError("pending checkout", gatewayOrderID)
	}
	if err != nil {
		return ports.PendingCheckout{}, errs.NewNetworkFailureError("redis GET", err)
	}

	var dto pendingCheckoutDTO
	if err := json.Unmarshal(payload, &dto); err != nil {
		return ports.PendingCheckout{}, fmt.Errorf("unmarshal pending checkout: %w", err)
	}

	return dto.toDomain()
}

// Delete removes a pending checkout. Deleting an id that is already gone is
// not an error.
func (s *CheckoutStore) Delete(ctx context.Context, gatewayOrderID string) error {
	if gatewayOrderID == "" {
		return errs.NewValueIsRequiredError("gatewayOrderID")
	}

	if err := s.client.Del(ctx, checkoutKeyPrefix+gatewayOrderID).Err(); err != nil {
		return errs.NewNetworkFailureError("redis DEL", err)
	}
	return nil
}
