// Package gateway wraps outbound calls to the remote invoice API. It owns
// JSON marshaling of request bodies, content-type-driven decoding of
// responses, and the mapping of transport and HTTP failures onto errors the
// rest of the client can match with errors.Is.
package gateway

import (
	"context"
	"encoding/json"

	"github.com/andrissp/invoicedesk/internal/client/models"
)

// Client is the surface of the remote API the application depends on.
// HTTPClient is the production implementation; tests provide fakes.
type Client interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, name, email, password string) error
	ListCustomers(ctx context.Context, userID int64) ([]models.Customer, error)
	// CreateCustomer returns the raw response document: the endpoint does not
	// guarantee a shape, so identifier extraction is left to the caller.
	CreateCustomer(ctx context.Context, userID int64, name, email string) (json.RawMessage, error)
	ListInvoices(ctx context.Context, userID int64) ([]InvoiceRecord, error)
	CreateInvoice(ctx context.Context, p InvoicePayload) error
	UpdateInvoice(ctx context.Context, id int64, p InvoicePayload) error
	DeleteInvoice(ctx context.Context, id int64) error
}

// InvoiceRecord is an invoice exactly as the remote store returns it. Note
// how much thinner it is than the client view model: the store keeps only a
// customer reference, total and status.
type InvoiceRecord struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	Total         float64 `json:"total"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

// InvoicePayload is the only shape the store accepts on invoice writes.
type InvoicePayload struct {
	CustomerID int64   `json:"customer_id"`
	Total      float64 `json:"total"`
	Status     string  `json:"status"`
}
