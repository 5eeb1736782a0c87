package models

import "strings"

// Status is the client-facing invoice status. The remote store only persists
// unpaid/paid/overdue; draft and sent are presentation-only and collapse to
// unpaid on write, so they can never be read back.
type Status string

const (
	StatusDraft   Status = "draft"
	StatusSent    Status = "sent"
	StatusUnpaid  Status = "unpaid"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

// Persisted maps a client status onto the vocabulary the store accepts.
// The mapping is total: any unknown value also collapses to unpaid.
func (s Status) Persisted() Status {
	switch s {
	case StatusUnpaid, StatusPaid, StatusOverdue:
		return s
	default:
		return StatusUnpaid
	}
}

// Pending reports whether the invoice still awaits payment from the
// dashboard's point of view.
func (s Status) Pending() bool {
	switch s {
	case StatusDraft, StatusSent, StatusUnpaid:
		return true
	}
	return false
}

// ParseStatus maps a persisted value (capitalized on read, e.g. "Paid") onto
// a client status. Unknown values map to unpaid so the result is always a
// member of the client vocabulary.
func ParseStatus(v string) Status {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "paid":
		return StatusPaid
	case "overdue":
		return StatusOverdue
	default:
		return StatusUnpaid
	}
}
