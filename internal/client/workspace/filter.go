package workspace

import (
	"strings"
	"time"

	"github.com/andrissp/invoicedesk/internal/client/models"
)

// DateRange restricts invoices by age relative to now.
type DateRange string

const (
	DateRangeNone  DateRange = ""
	DateRangeToday DateRange = "today"
	DateRangeWeek  DateRange = "week"
	DateRangeMonth DateRange = "month"
)

// Filter is a pure, synchronous predicate set over the in-memory collection.
// Its predicates compose with logical AND and are order-independent; it
// never touches the network.
type Filter struct {
	Term      string
	Status    models.Status // empty matches any status
	DateRange DateRange
}

// Matches reports whether the invoice passes all configured predicates.
func (f Filter) Matches(inv *models.Invoice, now time.Time) bool {
	return f.matchesTerm(inv) && f.matchesStatus(inv) && f.matchesDate(inv, now)
}

// matchesTerm is a case-insensitive substring match against the invoice
// number, customer name and customer email.
func (f Filter) matchesTerm(inv *models.Invoice) bool {
	term := strings.ToLower(strings.TrimSpace(f.Term))
	if term == "" {
		return true
	}
	for _, field := range []string{inv.InvoiceNumber, inv.CustomerName, inv.CustomerEmail} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func (f Filter) matchesStatus(inv *models.Invoice) bool {
	return f.Status == "" || inv.Status == f.Status
}

func (f Filter) matchesDate(inv *models.Invoice, now time.Time) bool {
	switch f.DateRange {
	case DateRangeToday:
		y1, m1, d1 := inv.CreatedAt.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case DateRangeWeek:
		return now.Sub(inv.CreatedAt) <= 7*24*time.Hour
	case DateRangeMonth:
		return now.Sub(inv.CreatedAt) <= 30*24*time.Hour
	default:
		return true
	}
}

// Filtered returns the matching invoices, newest first.
func (w *Workspace) Filtered(f Filter) []*models.Invoice {
	now := w.nowFn()
	all := w.Invoices()
	out := make([]*models.Invoice, 0, len(all))
	for _, inv := range all {
		if f.Matches(inv, now) {
			out = append(out, inv)
		}
	}
	return out
}
