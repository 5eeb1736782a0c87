package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/andrissp/invoicedesk/internal/client/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type customerPayload struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Login exchanges credentials for the authenticated identity.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	var s models.Session
	if err := c.post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Register creates an account. The endpoint returns no session; callers log
// in separately with the just-registered credentials.
func (c *HTTPClient) Register(ctx context.Context, name, email, password string) error {
	return c.post(ctx, "/auth/register", registerRequest{Name: name, Email: email, Password: password}, nil)
}

func (c *HTTPClient) ListCustomers(ctx context.Context, userID int64) ([]models.Customer, error) {
	var customers []models.Customer
	if err := c.get(ctx, fmt.Sprintf("/customers/%d", userID), &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *HTTPClient) CreateCustomer(ctx context.Context, userID int64, name, email string) (json.RawMessage, error) {
	var raw json.RawMessage
	p := customerPayload{UserID: userID, Name: name, Email: email}
	if err := c.post(ctx, "/customers", p, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *HTTPClient) ListInvoices(ctx context.Context, userID int64) ([]InvoiceRecord, error) {
	var records []InvoiceRecord
	if err := c.get(ctx, fmt.Sprintf("/invoices/%d", userID), &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *HTTPClient) CreateInvoice(ctx context.Context, p InvoicePayload) error {
	return c.post(ctx, "/invoices", p, nil)
}

func (c *HTTPClient) UpdateInvoice(ctx context.Context, id int64, p InvoicePayload) error {
	return c.put(ctx, fmt.Sprintf("/invoices/%d", id), p, nil)
}

func (c *HTTPClient) DeleteInvoice(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("/invoices/%d", id))
}
