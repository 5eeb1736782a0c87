package workspace

import "github.com/andrissp/invoicedesk/internal/client/models"

// Statistics is the dashboard summary over the active user's invoices.
// Pending counts draft, sent and unpaid invoices.
type Statistics struct {
	Count       int
	TotalAmount float64
	Pending     int
	Paid        int
}

// Statistics recomputes the summary from the current collection.
func (w *Workspace) Statistics() Statistics {
	var s Statistics
	for _, inv := range w.invoices {
		s.Count++
		s.TotalAmount += inv.Total
		if inv.Status.Pending() {
			s.Pending++
		}
		if inv.Status == models.StatusPaid {
			s.Paid++
		}
	}
	s.TotalAmount = round2(s.TotalAmount)
	return s
}
