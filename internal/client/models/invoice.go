package models

import (
	"fmt"
	"strings"
	"time"
)

// Item is one billable row of an invoice. Total is recomputed from
// Quantity*Price on every edit; it is never trusted from input.
type Item struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}

// Valid reports whether the item is well-formed enough to be submitted:
// non-empty description, positive quantity, non-negative price.
func (i Item) Valid() bool {
	return strings.TrimSpace(i.Description) != "" && i.Quantity > 0 && i.Price >= 0
}

// Invoice is the client-side view model. The remote store persists only a
// customer reference, total and status per invoice; every other field is
// edited locally and lost on reload. That asymmetry belongs to the external
// service and is preserved here.
type Invoice struct {
	ID              int64
	UserID          int64
	InvoiceNumber   string
	InvoiceDate     string
	DueDate         string
	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	Items           []Item
	Subtotal        float64
	TaxRate         float64
	TaxAmount       float64
	Total           float64
	Status          Status
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// InvoiceNumber derives the display number from the numeric record id.
// It is never sent to the server as authoritative.
func InvoiceNumber(id int64) string {
	return fmt.Sprintf("INV-%04d", id)
}
