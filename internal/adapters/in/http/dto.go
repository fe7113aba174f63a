package http

import (
	"time"

	"agrimarket/internal/core/application/cartsync"
	"agrimarket/internal/core/application/usecases/queries"
	"agrimarket/internal/core/domain/model/address"
	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/core/ports"
)

// errorResponse is the uniform error payload. ContactSupport is set when a
// payment may have gone through despite the failure; AuthRequired tells the
// client to route to authentication.
type errorResponse struct {
	Code           int    `json:"code"`
	Message        string `json:"message"`
	AuthRequired   bool   `json:"authRequired,omitempty"`
	ContactSupport bool   `json:"contactSupport,omitempty"`
}

type cartItemResponse struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	MaxQuantity int     `json:"maxQuantity"`
	Stock       int     `json:"stock"`
	IsAvailable bool    `json:"isAvailable"`
	SyncError   string  `json:"syncError,omitempty"`
}

type cartResponse struct {
	Items      []cartItemResponse `json:"items"`
	Subtotal   float64            `json:"subtotal"`
	TotalItems int                `json:"totalItems"`
}

func cartResponseFromView(view cartsync.View) cartResponse {
	items := make([]cartItemResponse, len(view.Items))
	for i, item := range view.Items {
		items[i] = cartItemResponse{
			ProductID:   item.ProductID,
			Name:        item.Name,
			UnitPrice:   item.UnitPrice.Rupees(),
			Quantity:    item.Quantity,
			MaxQuantity: item.MaxQuantity,
			Stock:       item.Stock,
			IsAvailable: item.IsAvailable,
			SyncError:   item.SyncError,
		}
	}

	return cartResponse{
		Items:      items,
		Subtotal:   view.Subtotal.Rupees(),
		TotalItems: view.TotalItems,
	}
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type saveAddressRequest struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Street    string `json:"street"`
	Pincode   string `json:"pincode"`
	IsDefault bool   `json:"isDefault"`
}

type addressResponse struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Street    string `json:"street"`
	District  string `json:"district"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	IsDefault bool   `json:"isDefault"`
}

func addressResponseFromDomain(addr address.Address) addressResponse {
	return addressResponse{
		ID:        addr.ID(),
		Label:     addr.Label(),
		Street:    addr.Street(),
		District:  addr.District(),
		State:     addr.State(),
		Pincode:   addr.Pincode().String(),
		IsDefault: addr.IsDefault(),
	}
}

type localityResponse struct {
	Pincode  string `json:"pincode"`
	District string `json:"district"`
	State    string `json:"state"`
}

type checkoutRequest struct {
	AddressID string `json:"addressId"`
	Notes     string `json:"notes"`
}

type paymentIntentResponse struct {
	Key            string  `json:"key"`
	GatewayOrderID string  `json:"gatewayOrderId"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
}

func paymentIntentResponseFromPort(intent ports.PaymentIntent) paymentIntentResponse {
	return paymentIntentResponse{
		Key:            intent.Key,
		GatewayOrderID: intent.GatewayOrderID,
		Amount:         intent.Amount.Rupees(),
		Currency:       intent.Currency,
	}
}

type verifyPaymentRequest struct {
	GatewayOrderID string `json:"razorpayOrderId"`
	PaymentID      string `json:"razorpayPaymentId"`
	Signature      string `json:"razorpaySignature"`
}

type lifecycleActionRequest struct {
	ReasonCode string `json:"reasonCode"`
	ReasonText string `json:"reasonText"`
}

type orderItemResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

type orderResponse struct {
	ID            string              `json:"id"`
	Number        string              `json:"orderNumber"`
	Items         []orderItemResponse `json:"items"`
	Total         float64             `json:"total"`
	PaymentStatus string              `json:"paymentStatus"`
	Status        string              `json:"status"`
	Address       addressResponse     `json:"address"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
	DeliveredAt   *time.Time          `json:"deliveredAt,omitempty"`
	ReturnStatus  string              `json:"returnStatus,omitempty"`
}

func orderResponseFromDomain(current *order.Order) orderResponse {
	lines := current.Items()
	items := make([]orderItemResponse, len(lines))
	for i, line := range lines {
		items[i] = orderItemResponse{
			ProductID: line.ProductID(),
			Name:      line.Name(),
			UnitPrice: line.UnitPrice().Rupees(),
			Quantity:  line.Quantity(),
			Subtotal:  line.Subtotal().Rupees(),
		}
	}

	resp := orderResponse{
		ID:            current.ID(),
		Number:        current.Number(),
		Items:         items,
		Total:         current.Total().Rupees(),
		PaymentStatus: current.PaymentStatus().String(),
		Status:        current.Status().String(),
		Address:       addressResponseFromDomain(current.DeliveryAddress()),
		Notes:         current.Notes(),
		CreatedAt:     current.CreatedAt(),
		UpdatedAt:     current.UpdatedAt(),
		DeliveredAt:   current.DeliveredAt(),
	}
	if current.ReturnStatus() != order.ReturnNone {
		resp.ReturnStatus = current.ReturnStatus().String()
	}
	return resp
}

type actionsResponse struct {
	CanCancel  bool `json:"canCancel"`
	CanReturn  bool `json:"canReturn"`
	CanReplace bool `json:"canReplace"`
	CanInvoice bool `json:"canInvoice"`
}

type orderDetailResponse struct {
	orderResponse
	Actions actionsResponse `json:"actions"`
}

func orderDetailResponseFromQuery(detail queries.OrderDetail) orderDetailResponse {
	return orderDetailResponse{
		orderResponse: orderResponseFromDomain(detail.Order),
		Actions: actionsResponse{
			CanCancel:  detail.Actions.CanCancel,
			CanReturn:  detail.Actions.CanReturn,
			CanReplace: detail.Actions.CanReplace,
			CanInvoice: detail.Actions.CanInvoice,
		},
	}
}
