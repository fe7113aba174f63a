package marketplace

import (
	"time"

	"agrimarket/internal/core/domain/model/address"
	"agrimarket/internal/core/domain/model/cart"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"
)

// Wire DTOs for the marketplace API. Amounts travel as rupee floats on the
// wire and convert to integer paise at this boundary.

type cartItemDTO struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Stock       int     `json:"stock"`
	IsAvailable bool    `json:"isAvailable"`
}

type cartDTO struct {
	Items []cartItemDTO `json:"items"`
}

func (d cartDTO) toDomain() (*cart.Cart, error) {
	items := make([]*cart.Item, 0, len(d.Items))
	for _, itemDTO := range d.Items {
		price, err := kernel.NewMoneyFromRupees(itemDTO.Price)
		if err != nil {
			return nil, err
		}
		item, err := cart.NewItem(
			itemDTO.ProductID,
			itemDTO.Name,
			price,
			itemDTO.Quantity,
			itemDTO.Stock,
			itemDTO.IsAvailable,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return cart.NewCart(items)
}

type addressDTO struct {
	ID        string `json:"id,omitempty"`
	Label     string `json:"label"`
	Street    string `json:"street"`
	District  string `json:"district"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	IsDefault bool   `json:"isDefault"`
}

func addressFromDomain(addr address.Address) addressDTO {
	return addressDTO{
		ID:        addr.ID(),
		Label:     addr.Label(),
		Street:    addr.Street(),
		District:  addr.District(),
		State:     addr.State(),
		Pincode:   addr.Pincode().String(),
		IsDefault: addr.IsDefault(),
	}
}

func (d addressDTO) toDomain() (address.Address, error) {
	pincode, err := address.NewPincode(d.Pincode)
	if err != nil {
		return address.Address{}, err
	}
	return address.NewAddress(d.ID, d.Label, d.Street, pincode, d.District, d.State, d.IsDefault)
}

type orderItemDTO struct {
	ProductID string  `json:"productId"`
	VendorID  string  `json:"vendorId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type orderDTO struct {
	ID                string         `json:"id"`
	OrderNumber       string         `json:"orderNumber"`
	BuyerID           string         `json:"buyerId"`
	Items             []orderItemDTO `json:"items"`
	Total             float64        `json:"total"`
	PaymentStatus     string         `json:"paymentStatus"`
	Status            string         `json:"status"`
	Address           addressDTO     `json:"address"`
	Notes             string         `json:"notes"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
	DeliveredAt       *time.Time     `json:"deliveredAt,omitempty"`
	ReturnStatus      string         `json:"returnStatus,omitempty"`
	ReturnReason      string         `json:"returnReason,omitempty"`
	ReturnRequestedAt *time.Time     `json:"returnRequestedAt,omitempty"`
}

func (d orderDTO) toDomain() (*order.Order, error) {
	lines := make([]order.ItemLine, 0, len(d.Items))
	for _, lineDTO := range d.Items {
		price, err := kernel.NewMoneyFromRupees(lineDTO.Price)
		if err != nil {
			return nil, err
		}
		line, err := order.NewItemLine(lineDTO.ProductID, lineDTO.VendorID, lineDTO.Name, price, lineDTO.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	total, err := kernel.NewMoneyFromRupees(d.Total)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(d.PaymentStatus)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(d.Status)
	if err != nil {
		return nil, err
	}
	returnStatus, err := order.ReturnStatusFromString(d.ReturnStatus)
	if err != nil {
		return nil, err
	}

	deliveryTo, err := d.Address.toDomain()
	if err != nil {
		return nil, err
	}

	return order.NewOrder(
		d.ID, d.OrderNumber, d.BuyerID,
		lines,
		total,
		paymentStatus,
		status,
		deliveryTo,
		d.Notes,
		d.CreatedAt, d.UpdatedAt,
		d.DeliveredAt,
		returnStatus,
		d.ReturnReason,
		d.ReturnRequestedAt,
	)
}

type paymentIntentDTO struct {
	Key      string  `json:"key"`
	OrderID  string  `json:"orderId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}
