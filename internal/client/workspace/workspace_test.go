package workspace

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrissp/invoicedesk/internal/client/gateway"
	"github.com/andrissp/invoicedesk/internal/client/models"
	"github.com/andrissp/invoicedesk/internal/logging"
)

type fakeClient struct {
	gateway.Client

	invoices      []gateway.InvoiceRecord
	listInvErr    error
	listInvCalls  int

	customers           []models.Customer
	customersAfterCreate []models.Customer
	listCustErr         error
	listCustCalls       int

	createCustRaw   json.RawMessage
	createCustErr   error
	createCustCalls int

	createInvPayload gateway.InvoicePayload
	createInvErr     error
	createInvCalls   int

	updateInvID      int64
	updateInvPayload gateway.InvoicePayload
	updateInvErr     error
	updateInvCalls   int

	deleteInvErr   error
	deletedInvIDs  []int64
}

func (f *fakeClient) ListInvoices(_ context.Context, _ int64) ([]gateway.InvoiceRecord, error) {
	f.listInvCalls++
	return f.invoices, f.listInvErr
}

func (f *fakeClient) ListCustomers(_ context.Context, _ int64) ([]models.Customer, error) {
	f.listCustCalls++
	if f.createCustCalls > 0 && f.customersAfterCreate != nil {
		return f.customersAfterCreate, f.listCustErr
	}
	return f.customers, f.listCustErr
}

func (f *fakeClient) CreateCustomer(_ context.Context, _ int64, _, _ string) (json.RawMessage, error) {
	f.createCustCalls++
	return f.createCustRaw, f.createCustErr
}

func (f *fakeClient) CreateInvoice(_ context.Context, p gateway.InvoicePayload) error {
	f.createInvCalls++
	f.createInvPayload = p
	return f.createInvErr
}

func (f *fakeClient) UpdateInvoice(_ context.Context, id int64, p gateway.InvoicePayload) error {
	f.updateInvCalls++
	f.updateInvID, f.updateInvPayload = id, p
	return f.updateInvErr
}

func (f *fakeClient) DeleteInvoice(_ context.Context, id int64) error {
	if f.deleteInvErr != nil {
		return f.deleteInvErr
	}
	f.deletedInvIDs = append(f.deletedInvIDs, id)
	return nil
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newWorkspace(fc *fakeClient) *Workspace {
	return New(fc, 3, testLogger())
}

func validForm() Form {
	return Form{
		CustomerName:  "Acme",
		CustomerEmail: "acme@x.com",
		Items:         []models.Item{{Description: "Design", Quantity: 2, Price: 50.25}},
		TaxRate:       0,
		Status:        models.StatusDraft,
	}
}

func TestLoadInvoices_RemapsRecords(t *testing.T) {
	fc := &fakeClient{invoices: []gateway.InvoiceRecord{
		{ID: 7, UserID: 3, CustomerName: "Acme", CustomerEmail: "acme@x.com", Total: 100, Status: "Unpaid", CreatedAt: "2026-08-01T10:00:00Z"},
		{ID: 8, UserID: 3, CustomerName: "Globex", CustomerEmail: "g@x.com", Total: 250.5, Status: "Paid", CreatedAt: "2026-08-02 10:00:00"},
		{ID: 9, UserID: 99, CustomerName: "NotMine", CustomerEmail: "n@x.com", Total: 1, Status: "Paid", CreatedAt: ""},
	}}
	w := newWorkspace(fc)

	changes := 0
	w.SetChangeListener(func() { changes++ })

	require.NoError(t, w.LoadInvoices(context.Background()))
	require.Equal(t, 1, changes)

	invoices := w.Invoices()
	require.Len(t, invoices, 2, "foreign user's record must be dropped")
	require.Equal(t, int64(8), invoices[0].ID, "newest first")

	inv, ok := w.Get(7)
	require.True(t, ok)
	require.Equal(t, "INV-0007", inv.InvoiceNumber)
	require.Equal(t, models.StatusUnpaid, inv.Status)
	require.Equal(t, 100.0, inv.Total)
	require.Equal(t, 100.0, inv.Subtotal)
	require.Zero(t, inv.TaxRate)
	require.Empty(t, inv.Items)
	require.Empty(t, inv.Notes)
	require.Equal(t, 2026, inv.CreatedAt.Year())

	inv8, _ := w.Get(8)
	require.Equal(t, models.StatusPaid, inv8.Status)
	require.Equal(t, 2026, inv8.CreatedAt.Year(), "space-separated timestamp accepted")
}

func TestLoadInvoices_FailureLeavesCollectionUntouched(t *testing.T) {
	fc := &fakeClient{invoices: []gateway.InvoiceRecord{
		{ID: 1, UserID: 3, Total: 10, Status: "Unpaid", CreatedAt: "2026-08-01T10:00:00Z"},
	}}
	w := newWorkspace(fc)
	require.NoError(t, w.LoadInvoices(context.Background()))

	fc.listInvErr = errors.New("boom")
	require.Error(t, w.LoadInvoices(context.Background()))
	require.Len(t, w.Invoices(), 1)
}

func TestCreateInvoice_RejectsEmptyItemsWithoutNetworkCall(t *testing.T) {
	fc := &fakeClient{}
	w := newWorkspace(fc)

	form := validForm()
	form.Items = []models.Item{{Description: "", Quantity: 0, Price: -1}}

	err := w.CreateInvoice(context.Background(), form)
	require.ErrorIs(t, err, ErrNoItems)
	require.EqualError(t, err, "Please add at least one item to the invoice.")
	require.Zero(t, fc.listCustCalls)
	require.Zero(t, fc.createCustCalls)
	require.Zero(t, fc.createInvCalls)
}

func TestCreateInvoice_RejectsMissingCustomerDetails(t *testing.T) {
	fc := &fakeClient{}
	w := newWorkspace(fc)

	form := validForm()
	form.CustomerEmail = "not-an-email"

	err := w.CreateInvoice(context.Background(), form)
	require.ErrorIs(t, err, ErrCustomerDetails)
	require.Zero(t, fc.listCustCalls)
	require.Zero(t, fc.createInvCalls)
}

func TestCreateInvoice_SubmitsPersistedSubsetAndReloads(t *testing.T) {
	fc := &fakeClient{
		customers: []models.Customer{{ID: 12, Name: "Acme", Email: "acme@x.com"}},
		invoices: []gateway.InvoiceRecord{
			{ID: 1, UserID: 3, Total: 100.5, Status: "Unpaid", CreatedAt: "2026-08-01T10:00:00Z"},
		},
	}
	w := newWorkspace(fc)

	form := validForm() // draft status, one item 2 x 50.25
	require.NoError(t, w.CreateInvoice(context.Background(), form))

	require.Equal(t, 1, fc.createInvCalls)
	require.Equal(t, gateway.InvoicePayload{CustomerID: 12, Total: 100.5, Status: "unpaid"}, fc.createInvPayload, "draft collapses to unpaid on write")
	require.Equal(t, 1, fc.listInvCalls, "reload after write")
	require.Len(t, w.Invoices(), 1)
}

func TestUpdateInvoice_MapsStatusAndReloads(t *testing.T) {
	fc := &fakeClient{
		customers: []models.Customer{{ID: 12, Name: "Acme", Email: "acme@x.com"}},
	}
	w := newWorkspace(fc)

	form := validForm()
	form.Status = models.StatusPaid
	require.NoError(t, w.UpdateInvoice(context.Background(), 4, form))

	require.Equal(t, int64(4), fc.updateInvID)
	require.Equal(t, "paid", fc.updateInvPayload.Status)
	require.Equal(t, 1, fc.listInvCalls)
}

func TestDeleteInvoice_OptimisticLocalRemoval(t *testing.T) {
	fc := &fakeClient{invoices: []gateway.InvoiceRecord{
		{ID: 42, UserID: 3, Total: 100, Status: "Unpaid", CreatedAt: "2026-08-01T10:00:00Z"},
		{ID: 43, UserID: 3, Total: 250.5, Status: "Unpaid", CreatedAt: "2026-08-01T10:00:00Z"},
	}}
	w := newWorkspace(fc)
	require.NoError(t, w.LoadInvoices(context.Background()))
	require.Equal(t, 1, fc.listInvCalls)

	require.NoError(t, w.DeleteInvoice(context.Background(), 42))
	require.Equal(t, []int64{42}, fc.deletedInvIDs)
	require.Equal(t, 1, fc.listInvCalls, "no reload after delete")

	_, ok := w.Get(42)
	require.False(t, ok)

	stats := w.Statistics()
	require.Equal(t, 1, stats.Count)
	require.Equal(t, 250.5, stats.TotalAmount)
}

func TestDeleteInvoice_FailureKeepsRecord(t *testing.T) {
	fc := &fakeClient{invoices: []gateway.InvoiceRecord{
		{ID: 42, UserID: 3, Total: 100, Status: "Unpaid", CreatedAt: "2026-08-01T10:00:00Z"},
	}}
	w := newWorkspace(fc)
	require.NoError(t, w.LoadInvoices(context.Background()))

	fc.deleteInvErr = errors.New("boom")
	require.Error(t, w.DeleteInvoice(context.Background(), 42))
	_, ok := w.Get(42)
	require.True(t, ok)
}

func TestStatistics_Scenario(t *testing.T) {
	fc := &fakeClient{invoices: []gateway.InvoiceRecord{
		{ID: 1, UserID: 3, Total: 100, Status: "Unpaid", CreatedAt: "2026-08-01T10:00:00Z"},
		{ID: 2, UserID: 3, Total: 250.5, Status: "Unpaid", CreatedAt: "2026-08-02T10:00:00Z"},
	}}
	w := newWorkspace(fc)
	require.NoError(t, w.LoadInvoices(context.Background()))

	require.Equal(t, Statistics{Count: 2, TotalAmount: 350.5, Pending: 2, Paid: 0}, w.Statistics())
}
