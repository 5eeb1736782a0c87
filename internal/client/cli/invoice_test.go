package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrissp/invoicedesk/internal/client/gateway"
	"github.com/andrissp/invoicedesk/internal/client/models"
)

func TestAdd_SubmitsPersistedSubsetAndReloads(t *testing.T) {
	fg := &fakeGateway{customers: []models.Customer{{ID: 12, Name: "Acme Corp", Email: "billing@acme.com"}}}
	a, out, notes := loggedInApp(t, fg)

	// Form walk: customer, dates, status, tax rate, one item, end of items.
	// Notes come from a.reader, which is primed with an empty line.
	stubInputs(t,
		"Acme Corp",         // customer name
		"billing@acme.com",  // customer email
		"",                  // address
		"2026-08-30",        // invoice date
		"2026-09-30",        // due date
		"",                  // status, keeps draft
		"",                  // tax rate, keeps 0
		"Widget",            // item 1 description
		"2",                 // quantity
		"50",                // price
		"",                  // end of items
	)

	require.NoError(t, a.Add(context.Background()))

	require.Len(t, fg.created, 1)
	require.Equal(t, gateway.InvoicePayload{CustomerID: 12, Total: 100, Status: "unpaid"}, fg.created[0],
		"draft collapses to unpaid, total computed from items")

	require.Contains(t, notes.String(), "Invoice created")
	require.Contains(t, out.String(), "INV-0001", "reload renders the new record")
}

func TestAdd_NoItemsRejectedBeforeNetwork(t *testing.T) {
	fg := &fakeGateway{}
	a, _, notes := loggedInApp(t, fg)

	stubInputs(t,
		"Acme Corp", "billing@acme.com", "", "", "", "", "",
		"", // no items at all
	)

	require.Error(t, a.Add(context.Background()))
	require.Empty(t, fg.created)
	require.Contains(t, notes.String(), "Please add at least one item")
}

func TestEdit_UpdatesExistingInvoice(t *testing.T) {
	fg := &fakeGateway{
		customers: []models.Customer{{ID: 12, Name: "Acme Corp", Email: "billing@acme.com"}},
		invoices: []gateway.InvoiceRecord{
			{ID: 7, UserID: 3, CustomerName: "Acme Corp", CustomerEmail: "billing@acme.com", Total: 100, Status: "Unpaid", CreatedAt: "2026-08-20T10:00:00Z"},
		},
	}
	a, _, notes := loggedInApp(t, fg)

	stubInputs(t,
		"",        // keep customer name
		"",        // keep customer email
		"",        // address
		"",        // invoice date
		"",        // due date
		"paid",    // status
		"",        // tax rate
		"Widget",  // items must be re-entered, the store does not keep them
		"1",
		"200",
		"",
	)

	require.NoError(t, a.Edit(context.Background(), []string{"7"}))
	require.Equal(t, gateway.InvoicePayload{CustomerID: 12, Total: 200, Status: "paid"}, fg.updated[7])
	require.Contains(t, notes.String(), "Invoice updated")
}

func TestEdit_UnknownInvoice(t *testing.T) {
	fg := &fakeGateway{}
	a, _, notes := loggedInApp(t, fg)

	require.NoError(t, a.Edit(context.Background(), []string{"99"}))
	require.Contains(t, notes.String(), "Invoice INV-0099 not found")
	require.Empty(t, fg.updated)
}

func TestDelete_ByArgument(t *testing.T) {
	fg := &fakeGateway{invoices: []gateway.InvoiceRecord{
		{ID: 42, UserID: 3, CustomerName: "Acme Corp", Total: 10, Status: "Unpaid", CreatedAt: "2026-08-20T10:00:00Z"},
	}}
	a, _, notes := loggedInApp(t, fg)

	require.NoError(t, a.Delete(context.Background(), []string{"42"}))
	require.Equal(t, []int64{42}, fg.deleted)
	_, found := a.workspace.Get(42)
	require.False(t, found, "removed locally without a reload")
	require.Contains(t, notes.String(), "Invoice deleted")
}

func TestDelete_AcceptsDisplayNumber(t *testing.T) {
	fg := &fakeGateway{invoices: []gateway.InvoiceRecord{
		{ID: 7, UserID: 3, CustomerName: "Acme Corp", Total: 10, Status: "Unpaid", CreatedAt: "2026-08-20T10:00:00Z"},
	}}
	a, _, _ := loggedInApp(t, fg)

	require.NoError(t, a.Delete(context.Background(), []string{"INV-0007"}))
	require.Equal(t, []int64{7}, fg.deleted)
}

func TestInvoiceID_Validation(t *testing.T) {
	a, _, _ := newTestApp(&fakeGateway{})

	id, err := a.invoiceID([]string{"inv-0031"}, "")
	require.NoError(t, err)
	require.Equal(t, int64(31), id)

	_, err = a.invoiceID([]string{"abc"}, "")
	require.Error(t, err)

	_, err = a.invoiceID([]string{"0"}, "")
	require.Error(t, err)
}

func TestFormStatus(t *testing.T) {
	st, err := formStatus("")
	require.NoError(t, err)
	require.Equal(t, models.StatusDraft, st)

	st, err = formStatus(" Overdue ")
	require.NoError(t, err)
	require.Equal(t, models.StatusOverdue, st)

	_, err = formStatus("archived")
	require.Error(t, err)
}
