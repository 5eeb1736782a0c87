// Package workspace owns the in-memory mirror of the current user's invoices
// and every operation over it: loading, CRUD, customer resolution, totals,
// filtering and statistics. It never renders anything itself; the view
// subscribes to change notifications and reads snapshots.
package workspace

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/andrissp/invoicedesk/internal/client/gateway"
	"github.com/andrissp/invoicedesk/internal/client/models"
	"github.com/andrissp/invoicedesk/internal/logging"
)

var (
	ErrNoItems         = errors.New("Please add at least one item to the invoice.")
	ErrCustomerDetails = errors.New("Customer name and a valid email are required")
)

// Form carries everything the invoice form edits. Most of it is presentation
// state: the remote store persists only the customer reference, the total
// and the status.
type Form struct {
	InvoiceDate     string
	DueDate         string
	CustomerName    string `validate:"required"`
	CustomerEmail   string `validate:"required,email"`
	CustomerAddress string
	Items           []models.Item
	TaxRate         float64 `validate:"gte=0"`
	Status          models.Status
	Notes           string
}

// ValidItems returns the well-formed line items with their totals recomputed.
// Malformed rows are dropped, not rejected: the form may carry half-filled
// rows the user abandoned.
func (f Form) ValidItems() []models.Item {
	items := make([]models.Item, 0, len(f.Items))
	for _, it := range f.Items {
		if !it.Valid() {
			continue
		}
		it.Total = LineTotal(it)
		items = append(items, it)
	}
	return items
}

// Workspace mirrors the server-side invoices of exactly one user. All reads
// are local and synchronous; writes go to the server and converge through a
// full reload (except delete, which is optimistic).
type Workspace struct {
	userID   int64
	client   gateway.Client
	log      logging.Logger
	validate *validator.Validate
	invoices map[int64]*models.Invoice
	onChange func()
	nowFn    func() time.Time
}

func New(client gateway.Client, userID int64, log logging.Logger) *Workspace {
	return &Workspace{
		userID:   userID,
		client:   client,
		log:      log,
		validate: validator.New(),
		invoices: make(map[int64]*models.Invoice),
		nowFn:    time.Now,
	}
}

func (w *Workspace) UserID() int64 {
	return w.userID
}

// SetChangeListener registers the view callback invoked after every
// collection change.
func (w *Workspace) SetChangeListener(fn func()) {
	w.onChange = fn
}

func (w *Workspace) notifyChange() {
	if w.onChange != nil {
		w.onChange()
	}
}

// LoadInvoices fetches the user's full invoice list and replaces the local
// collection with the remapped records. On failure the previous collection
// is left untouched; there is no retry.
func (w *Workspace) LoadInvoices(ctx context.Context) error {
	records, err := w.client.ListInvoices(ctx, w.userID)
	if err != nil {
		return err
	}

	next := make(map[int64]*models.Invoice, len(records))
	for _, r := range records {
		if r.UserID != w.userID {
			// Access-scoping rule: the mirror holds only the active user's
			// records even if the server over-returns.
			continue
		}
		inv := w.invoiceFromRecord(r)
		next[inv.ID] = inv
	}

	w.invoices = next
	w.log.Info(ctx, "invoices loaded", "user_id", w.userID, "count", len(next))
	w.notifyChange()
	return nil
}

// invoiceFromRecord remaps a server record into the client view model.
// Fields the store does not keep come back empty or zero; the invoice number
// is synthesized from the record id. The tax rate is zero on load, so the
// subtotal equals the total.
func (w *Workspace) invoiceFromRecord(r gateway.InvoiceRecord) *models.Invoice {
	created := parseServerTime(r.CreatedAt)
	return &models.Invoice{
		ID:            r.ID,
		UserID:        r.UserID,
		InvoiceNumber: models.InvoiceNumber(r.ID),
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Subtotal:      r.Total,
		Total:         r.Total,
		Status:        models.ParseStatus(r.Status),
		CreatedAt:     created,
		UpdatedAt:     created,
	}
}

// serverTimeLayouts are the timestamp formats the API has been seen to emit.
var serverTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseServerTime(v string) time.Time {
	for _, layout := range serverTimeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

// CreateInvoice validates the form, resolves the customer, and submits the
// persisted subset of the invoice. On success the whole list is reloaded
// from the server; there is no optimistic local merge.
func (w *Workspace) CreateInvoice(ctx context.Context, form Form) error {
	payload, err := w.buildPayload(ctx, form)
	if err != nil {
		return err
	}
	if err := w.client.CreateInvoice(ctx, *payload); err != nil {
		return err
	}
	w.log.Info(ctx, "invoice created", "user_id", w.userID, "total", payload.Total)
	return w.LoadInvoices(ctx)
}

// UpdateInvoice behaves like CreateInvoice against an existing record.
func (w *Workspace) UpdateInvoice(ctx context.Context, id int64, form Form) error {
	payload, err := w.buildPayload(ctx, form)
	if err != nil {
		return err
	}
	if err := w.client.UpdateInvoice(ctx, id, *payload); err != nil {
		return err
	}
	w.log.Info(ctx, "invoice updated", "invoice_id", id)
	return w.LoadInvoices(ctx)
}

// buildPayload runs local validation, resolves the customer, maps the status
// onto the persisted vocabulary and computes the document total. Validation
// failures short-circuit before any network call.
func (w *Workspace) buildPayload(ctx context.Context, form Form) (*gateway.InvoicePayload, error) {
	items := form.ValidItems()
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if err := w.validate.Struct(form); err != nil {
		return nil, ErrCustomerDetails
	}

	customer, err := w.ResolveCustomer(ctx, form.CustomerName, form.CustomerEmail)
	if err != nil {
		return nil, err
	}

	totals := DocumentTotals(items, form.TaxRate)
	return &gateway.InvoicePayload{
		CustomerID: customer.ID,
		Total:      totals.Total,
		Status:     string(form.Status.Persisted()),
	}, nil
}

// DeleteInvoice issues the delete and removes the record locally without a
// reload. The next full load reconverges if the server disagreed.
func (w *Workspace) DeleteInvoice(ctx context.Context, id int64) error {
	if err := w.client.DeleteInvoice(ctx, id); err != nil {
		return err
	}
	delete(w.invoices, id)
	w.log.Info(ctx, "invoice deleted", "invoice_id", id)
	w.notifyChange()
	return nil
}

// Get returns the invoice with the given id from the local mirror.
func (w *Workspace) Get(id int64) (*models.Invoice, bool) {
	inv, ok := w.invoices[id]
	return inv, ok
}

// Invoices returns the whole collection, newest first.
func (w *Workspace) Invoices() []*models.Invoice {
	out := make([]*models.Invoice, 0, len(w.invoices))
	for _, inv := range w.invoices {
		out = append(out, inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}
