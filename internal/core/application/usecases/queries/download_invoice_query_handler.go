package queries

import (
	"context"
	"fmt"
	"time"

	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
)

// DownloadInvoiceQueryHandler streams an order's invoice. An invoice exists
// only once the order's return window has lapsed.
type DownloadInvoiceQueryHandler struct {
	orders ports.OrderClient
}

// NewDownloadInvoiceQueryHandler creates a handler over the upstream order
// client.
func NewDownloadInvoiceQueryHandler(orders ports.OrderClient) DownloadInvoiceQueryHandler {
	return DownloadInvoiceQueryHandler{
		orders: orders,
	}
}

// Handle verifies the invoice is available and streams it. When the upstream
// response names no file, the filename falls back to the order number. The
// caller owns the returned stream.
func (h *DownloadInvoiceQueryHandler) Handle(ctx context.Context, query DownloadInvoiceQuery) (ports.Invoice, error) {
	if err := query.Validate(); err != nil {
		return ports.Invoice{}, err
	}

	current, err := h.orders.GetOrder(ctx, query.Session(), query.OrderID())
	if err != nil {
		return ports.Invoice{}, err
	}

	if !current.AvailableActions(time.Now()).CanInvoice {
		return ports.Invoice{}, errs.NewNotAvailableError(query.OrderID(), "invoice is not available for this order")
	}

	invoice, err := h.orders.DownloadInvoice(ctx, query.Session(), query.OrderID())
	if err != nil {
		return ports.Invoice{}, err
	}

	if invoice.Filename == "" {
		invoice.Filename = fmt.Sprintf("invoice-%s.pdf", current.Number())
	}
	if invoice.ContentType == "" {
		invoice.ContentType = "application/pdf"
	}

	return invoice, nil
}
