package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/andrissp/invoicedesk/internal/client/models"
	"github.com/andrissp/invoicedesk/internal/client/workspace"
)

// Add walks the user through the invoice form and submits it. Validation
// failures (no items, missing customer details) come back from the workspace
// already worded for end users and are shown as error notifications.
func (a *App) Add(ctx context.Context) error {
	ws, ok := a.requireWorkspace()
	if !ok {
		return nil
	}

	form, err := a.inputInvoiceForm(workspace.Form{Status: models.StatusDraft})
	if err != nil {
		a.notifyErr(err)
		return err
	}

	if err := ws.CreateInvoice(ctx, *form); err != nil {
		a.notifyErr(err)
		return err
	}

	a.notify(NotifySuccess, "Invoice created")
	return nil
}

// Edit re-runs the form against an existing invoice. Only the customer
// reference, total and status survive on the server, so line items have to
// be entered again; the other fields are prefilled from the local mirror.
func (a *App) Edit(ctx context.Context, args []string) error {
	ws, ok := a.requireWorkspace()
	if !ok {
		return nil
	}

	id, err := a.invoiceID(args, "Enter invoice id to edit")
	if err != nil {
		a.notifyErr(err)
		return err
	}

	inv, found := ws.Get(id)
	if !found {
		a.notify(NotifyError, fmt.Sprintf("Invoice %s not found", models.InvoiceNumber(id)))
		return nil
	}

	form, err := a.inputInvoiceForm(workspace.Form{
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		CustomerName:  inv.CustomerName,
		CustomerEmail: inv.CustomerEmail,
		TaxRate:       inv.TaxRate,
		Status:        inv.Status,
		Notes:         inv.Notes,
	})
	if err != nil {
		a.notifyErr(err)
		return err
	}

	if err := ws.UpdateInvoice(ctx, id, *form); err != nil {
		a.notifyErr(err)
		return err
	}

	a.notify(NotifySuccess, "Invoice updated")
	return nil
}

// Delete removes an invoice. The removal is optimistic: the local record is
// dropped as soon as the server accepts the call.
func (a *App) Delete(ctx context.Context, args []string) error {
	ws, ok := a.requireWorkspace()
	if !ok {
		return nil
	}

	id, err := a.invoiceID(args, "Enter invoice id to delete")
	if err != nil {
		a.notifyErr(err)
		return err
	}

	if _, found := ws.Get(id); !found {
		a.notify(NotifyError, fmt.Sprintf("Invoice %s not found", models.InvoiceNumber(id)))
		return nil
	}

	if err := ws.DeleteInvoice(ctx, id); err != nil {
		a.notifyErr(err)
		return err
	}

	a.notify(NotifySuccess, "Invoice deleted")
	return nil
}

// invoiceID resolves the target invoice from the command arguments, falling
// back to an interactive prompt. Both the numeric id and the display number
// ("INV-0007") are accepted.
func (a *App) invoiceID(args []string, prompt string) (int64, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		v, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return 0, err
		}
		raw = v
	}

	raw = strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(raw)), "INV-")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid invoice id %q", raw)
	}
	return id, nil
}

// inputInvoiceForm collects the full invoice form interactively. Prompts show
// the initial value in brackets; entering nothing keeps it. Item rows are
// collected until an empty description is entered.
func (a *App) inputInvoiceForm(initial workspace.Form) (*workspace.Form, error) {
	form := initial

	var err error
	if form.CustomerName, err = a.promptDefault("Customer name", initial.CustomerName); err != nil {
		return nil, err
	}
	if form.CustomerEmail, err = a.promptDefault("Customer email", initial.CustomerEmail); err != nil {
		return nil, err
	}
	if form.CustomerAddress, err = a.promptDefault("Customer address", initial.CustomerAddress); err != nil {
		return nil, err
	}
	if form.InvoiceDate, err = a.promptDefault("Invoice date (YYYY-MM-DD)", initial.InvoiceDate); err != nil {
		return nil, err
	}
	if form.DueDate, err = a.promptDefault("Due date (YYYY-MM-DD)", initial.DueDate); err != nil {
		return nil, err
	}

	status, err := a.promptDefault("Status (draft/sent/unpaid/paid/overdue)", string(initial.Status))
	if err != nil {
		return nil, err
	}
	form.Status, err = formStatus(status)
	if err != nil {
		return nil, err
	}

	form.TaxRate, err = a.promptFloat("Tax rate (%)", initial.TaxRate)
	if err != nil {
		return nil, err
	}

	form.Items, err = a.inputItems()
	if err != nil {
		return nil, err
	}

	notes, err := GetMultiline(a.reader, "Notes", a.out)
	if err != nil {
		return nil, err
	}
	if notes != "" {
		form.Notes = notes
	}

	return &form, nil
}

func (a *App) inputItems() ([]models.Item, error) {
	var items []models.Item
	for {
		desc, err := getSimpleText(a.reader, "Item description (empty line to finish)", a.out)
		if err != nil {
			return nil, err
		}
		if desc == "" {
			return items, nil
		}

		qty, err := a.promptFloat("Quantity", 1)
		if err != nil {
			return nil, err
		}
		price, err := a.promptFloat("Unit price", 0)
		if err != nil {
			return nil, err
		}

		items = append(items, models.Item{Description: desc, Quantity: qty, Price: price})
	}
}

func (a *App) promptDefault(prompt, current string) (string, error) {
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, current)
	}
	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

func (a *App) promptFloat(prompt string, def float64) (float64, error) {
	v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%g]", prompt, def), a.out)
	if err != nil {
		return 0, err
	}
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", v)
	}
	return f, nil
}

// formStatus validates user input against the client status vocabulary.
// Empty input means draft.
func formStatus(v string) (models.Status, error) {
	s := models.Status(strings.ToLower(strings.TrimSpace(v)))
	switch s {
	case "":
		return models.StatusDraft, nil
	case models.StatusDraft, models.StatusSent, models.StatusUnpaid, models.StatusPaid, models.StatusOverdue:
		return s, nil
	}
	return "", fmt.Errorf("unknown status %q", v)
}
