package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/andrissp/invoicedesk/internal/client/models"
	"github.com/andrissp/invoicedesk/internal/client/workspace"
)

// List clears any active search or filter and renders the full collection.
func (a *App) List(ctx context.Context) error {
	if _, ok := a.requireWorkspace(); !ok {
		return nil
	}
	a.filter = workspace.Filter{}
	a.renderInvoices()
	return nil
}

// Search sets the free-text term predicate. The term comes from the command
// arguments or, when absent, an interactive prompt; an empty term clears the
// predicate. The rest of the active filter is kept.
func (a *App) Search(ctx context.Context, args []string) error {
	if _, ok := a.requireWorkspace(); !ok {
		return nil
	}

	term := strings.Join(args, " ")
	if len(args) == 0 {
		v, err := getSimpleText(a.reader, "Search term (empty to clear)", a.out)
		if err != nil {
			return err
		}
		term = v
	}

	a.filter.Term = term
	a.renderInvoices()
	return nil
}

// Filter updates the status and date-range predicates from key=value
// arguments, e.g. "filter status=paid range=week". "status=any" and
// "range=none" clear the respective predicate. Called with no arguments it
// prints the active filter.
func (a *App) Filter(ctx context.Context, args []string) error {
	if _, ok := a.requireWorkspace(); !ok {
		return nil
	}

	if len(args) == 0 {
		fmt.Fprintf(a.out, "Active filter: term=%q status=%q range=%q\n", a.filter.Term, a.filter.Status, a.filter.DateRange)
		fmt.Fprintln(a.out, "Usage: filter status=<draft|sent|unpaid|paid|overdue|any> range=<today|week|month|none>")
		return nil
	}

	next := a.filter
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			a.notify(NotifyError, fmt.Sprintf("Expected key=value, got %q", arg))
			return nil
		}

		switch key {
		case "status":
			if value == "any" || value == "" {
				next.Status = ""
				continue
			}
			st, err := formStatus(value)
			if err != nil {
				a.notifyErr(err)
				return nil
			}
			next.Status = st

		case "range":
			switch workspace.DateRange(value) {
			case workspace.DateRangeToday, workspace.DateRangeWeek, workspace.DateRangeMonth:
				next.DateRange = workspace.DateRange(value)
			case workspace.DateRangeNone:
				next.DateRange = workspace.DateRangeNone
			default:
				if value == "none" {
					next.DateRange = workspace.DateRangeNone
					continue
				}
				a.notify(NotifyError, fmt.Sprintf("Unknown range %q", value))
				return nil
			}

		default:
			a.notify(NotifyError, fmt.Sprintf("Unknown filter key %q", key))
			return nil
		}
	}

	a.filter = next
	a.renderInvoices()
	return nil
}

// Stats renders the dashboard summary over the whole collection. The active
// filter deliberately does not narrow it.
func (a *App) Stats(ctx context.Context) error {
	ws, ok := a.requireWorkspace()
	if !ok {
		return nil
	}

	s := ws.Statistics()
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Invoices\t%d\n", s.Count)
	fmt.Fprintf(tw, "Total amount\t%.2f\n", s.TotalAmount)
	fmt.Fprintf(tw, "Pending\t%d\n", s.Pending)
	fmt.Fprintf(tw, "Paid\t%d\n", s.Paid)
	tw.Flush()
	return nil
}

// renderInvoices prints the collection through the active filter as a table,
// newest first. It doubles as the workspace change listener, so the view
// refreshes after every load, create, update and delete.
func (a *App) renderInvoices() {
	if a.workspace == nil {
		return
	}

	invoices := a.workspace.Filtered(a.filter)

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NUMBER\tCUSTOMER\tEMAIL\tTOTAL\tSTATUS\tCREATED")
	for _, inv := range invoices {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%s\t%s\n",
			inv.InvoiceNumber, inv.CustomerName, inv.CustomerEmail,
			inv.Total, inv.Status, formatCreated(inv))
	}
	tw.Flush()
	fmt.Fprintf(a.out, "%d invoice(s)\n", len(invoices))
}

func formatCreated(inv *models.Invoice) string {
	if inv.CreatedAt.IsZero() {
		return "-"
	}
	return inv.CreatedAt.Format("2006-01-02")
}
