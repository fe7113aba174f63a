package queries

import (
	"errors"

	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
	"agrimarket/internal/pkg/guard"
)

var ErrDownloadInvoiceQueryIsNotConstructed = errors.New(
	"DownloadInvoiceQuery must be created via NewDownloadInvoiceQuery constructor",
)

// DownloadInvoiceQuery represents a request to download an order's invoice
// document.
type DownloadInvoiceQuery struct { //nolint:recvcheck //using for validation
	sess    ports.Session
	orderID string

	guard guard.ConstructorGuard
}

// NewDownloadInvoiceQuery creates a query for the named order's invoice.
func NewDownloadInvoiceQuery(sess ports.Session, orderID string) (DownloadInvoiceQuery, error) {
	q := DownloadInvoiceQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setSession(sess),
		q.setOrderID(orderID),
	); err != nil {
		return DownloadInvoiceQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q DownloadInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrDownloadInvoiceQueryIsNotConstructed)
}

// Session returns the buyer's session.
func (q DownloadInvoiceQuery) Session() ports.Session {
	return q.sess
}

// OrderID returns the order whose invoice is wanted.
func (q DownloadInvoiceQuery) OrderID() string {
	return q.orderID
}

func (q *DownloadInvoiceQuery) setSession(sess ports.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}

	q.sess = sess
	return nil
}

func (q *DownloadInvoiceQuery) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	q.orderID = orderID
	return nil
}
