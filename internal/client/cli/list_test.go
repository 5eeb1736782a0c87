package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrissp/invoicedesk/internal/client/gateway"
	"github.com/andrissp/invoicedesk/internal/client/models"
	"github.com/andrissp/invoicedesk/internal/client/workspace"
)

func listGateway() *fakeGateway {
	return &fakeGateway{invoices: []gateway.InvoiceRecord{
		{ID: 1, UserID: 3, CustomerName: "Acme Corp", CustomerEmail: "billing@acme.com", Total: 100, Status: "Unpaid", CreatedAt: "2026-08-30T10:00:00Z"},
		{ID: 2, UserID: 3, CustomerName: "Globex", CustomerEmail: "pay@globex.com", Total: 250.5, Status: "Paid", CreatedAt: "2026-08-10T10:00:00Z"},
	}}
}

func TestList_RendersTableAndClearsFilter(t *testing.T) {
	a, out, _ := loggedInApp(t, listGateway())
	a.filter = workspace.Filter{Term: "globex"}

	require.NoError(t, a.List(context.Background()))

	require.Equal(t, workspace.Filter{}, a.filter)
	s := out.String()
	require.Contains(t, s, "INV-0001")
	require.Contains(t, s, "INV-0002")
	require.Contains(t, s, "250.50")
	require.Contains(t, s, "2026-08-30")
	require.Contains(t, s, "2 invoice(s)")
}

func TestSearch_NarrowsRenderedRows(t *testing.T) {
	a, out, _ := loggedInApp(t, listGateway())

	require.NoError(t, a.Search(context.Background(), []string{"globex"}))

	require.Equal(t, "globex", a.filter.Term)
	s := out.String()
	require.Contains(t, s, "INV-0002")
	require.NotContains(t, s, "INV-0001")
	require.Contains(t, s, "1 invoice(s)")
}

func TestFilterCommand_UpdatesPredicates(t *testing.T) {
	a, _, _ := loggedInApp(t, listGateway())

	require.NoError(t, a.Filter(context.Background(), []string{"status=paid", "range=week"}))
	require.Equal(t, models.StatusPaid, a.filter.Status)
	require.Equal(t, workspace.DateRangeWeek, a.filter.DateRange)

	require.NoError(t, a.Filter(context.Background(), []string{"status=any", "range=none"}))
	require.Equal(t, models.Status(""), a.filter.Status)
	require.Equal(t, workspace.DateRangeNone, a.filter.DateRange)
}

func TestFilterCommand_RejectsUnknownValues(t *testing.T) {
	a, _, notes := loggedInApp(t, listGateway())
	a.filter = workspace.Filter{Status: models.StatusPaid}

	require.NoError(t, a.Filter(context.Background(), []string{"status=archived"}))
	require.Contains(t, notes.String(), "unknown status")
	require.Equal(t, models.StatusPaid, a.filter.Status, "bad input leaves the filter untouched")

	require.NoError(t, a.Filter(context.Background(), []string{"range=year"}))
	require.Contains(t, notes.String(), "Unknown range")
}

func TestStats_RendersSummary(t *testing.T) {
	a, out, _ := loggedInApp(t, listGateway())

	require.NoError(t, a.Stats(context.Background()))

	s := out.String()
	require.Contains(t, s, "Invoices")
	require.Contains(t, s, "350.50")
	require.Contains(t, s, "Pending")
	require.Contains(t, s, "Paid")
}
