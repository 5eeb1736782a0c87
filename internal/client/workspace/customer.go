package workspace

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/andrissp/invoicedesk/internal/client/models"
)

// The customer-creation endpoint does not guarantee a response shape: it has
// been seen returning a bare id, an id wrapped in a "customer" object and an
// id wrapped in a "data" object. Extraction is an ordered list of explicit
// strategies rather than duck typing, with a list re-fetch as the final
// fallback.
type idExtractor struct {
	name    string
	extract func(raw json.RawMessage) (int64, bool)
}

var idExtractors = []idExtractor{
	{"bare id", extractBareID},
	{"customer object", objectIDExtractor("customer")},
	{"data object", objectIDExtractor("data")},
}

// extractBareID accepts either a plain number or a top-level {"id": n}.
func extractBareID(raw json.RawMessage) (int64, bool) {
	var id int64
	if err := json.Unmarshal(raw, &id); err == nil && id > 0 {
		return id, true
	}
	var doc struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(raw, &doc); err == nil && doc.ID > 0 {
		return doc.ID, true
	}
	return 0, false
}

func objectIDExtractor(field string) func(raw json.RawMessage) (int64, bool) {
	return func(raw json.RawMessage) (int64, bool) {
		var doc map[string]json.RawMessage
		if err := json.Unmarshal(raw, &doc); err != nil {
			return 0, false
		}
		nested, ok := doc[field]
		if !ok {
			return 0, false
		}
		var obj struct {
			ID int64 `json:"id"`
		}
		if err := json.Unmarshal(nested, &obj); err != nil || obj.ID <= 0 {
			return 0, false
		}
		return obj.ID, true
	}
}

// ResolveCustomer finds the user's customer with the given email, creating
// one when absent. A freshly created customer's id is derived from the
// response via the extraction strategies, then by re-fetching the list and
// matching by email again; only after all fallbacks are exhausted does the
// resolution fail.
func (w *Workspace) ResolveCustomer(ctx context.Context, name, email string) (*models.Customer, error) {
	customers, err := w.client.ListCustomers(ctx, w.userID)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	if c := matchByEmail(customers, email); c != nil {
		return c, nil
	}

	raw, err := w.client.CreateCustomer(ctx, w.userID, name, email)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	for _, e := range idExtractors {
		if id, ok := e.extract(raw); ok {
			w.log.Info(ctx, "customer created", "customer_id", id, "shape", e.name)
			return &models.Customer{ID: id, Name: name, Email: email}, nil
		}
	}

	// Last resort: the record should exist now, so fetch again and match.
	customers, err = w.client.ListCustomers(ctx, w.userID)
	if err != nil {
		return nil, fmt.Errorf("re-list customers: %w", err)
	}
	if c := matchByEmail(customers, email); c != nil {
		return c, nil
	}

	return nil, fmt.Errorf("could not determine id of created customer %q: tried bare id, customer object, data object and re-fetching the customer list", email)
}

func matchByEmail(customers []models.Customer, email string) *models.Customer {
	for i := range customers {
		if customers[i].Email == email {
			return &customers[i]
		}
	}
	return nil
}
