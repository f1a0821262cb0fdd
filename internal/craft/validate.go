package craft

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	dec "github.com/rezonia/invoice-playground/internal/decimal"
	"github.com/rezonia/invoice-playground/internal/invoice"
	"github.com/rezonia/invoice-playground/internal/model"
)

// Report is the accumulated validation result used by the advanced
// surfaces. Unlike the fail-fast invoice.Validate, it collects every
// violation and adds non-blocking warnings.
type Report struct {
	Valid    bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

var currencyShape = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidateInvoice checks an invoice against the full rule set and
// reports every violation plus advisory warnings.
func (e *Engine) ValidateInvoice(inv *model.Invoice) *Report {
	r := &Report{Errors: []string{}, Warnings: []string{}}

	if strings.TrimSpace(inv.From.Name) == "" {
		r.Errors = append(r.Errors, "From company name is required")
	}
	if strings.TrimSpace(inv.To.Name) == "" {
		r.Errors = append(r.Errors, "To customer name is required")
	}
	if strings.TrimSpace(inv.InvoiceNumber) == "" {
		r.Errors = append(r.Errors, "Invoice number is required")
	}
	if strings.TrimSpace(inv.InvoiceDate) == "" {
		r.Errors = append(r.Errors, "Invoice date is required")
	}
	if len(inv.Items) == 0 {
		r.Errors = append(r.Errors, "At least one item is required")
	}

	for i, item := range inv.Items {
		if strings.TrimSpace(item.Description) == "" {
			r.Errors = append(r.Errors, fmt.Sprintf("Item %d: Description is required", i+1))
		}
		if !dec.IsPositive(item.Quantity) {
			r.Errors = append(r.Errors, fmt.Sprintf("Item %d: Quantity must be greater than 0", i+1))
		}
		if !dec.IsNonNegative(item.UnitPrice) {
			r.Errors = append(r.Errors, fmt.Sprintf("Item %d: Unit price cannot be negative", i+1))
		}
		if item.TaxRate.LessThan(dec.Zero) || item.TaxRate.GreaterThan(dec.FromInt(1)) {
			r.Warnings = append(r.Warnings, fmt.Sprintf("Item %d: tax rate %s is outside [0,1]", i+1, item.TaxRate))
		}
	}

	if inv.Discount.LessThan(dec.Zero) {
		r.Errors = append(r.Errors, "Discount cannot be negative")
	}

	// Advisory checks only; none of these block generation.
	if strings.TrimSpace(inv.Currency) == "" {
		r.Warnings = append(r.Warnings, "no currency set")
	} else if !currencyShape.MatchString(inv.Currency) {
		r.Warnings = append(r.Warnings, fmt.Sprintf("currency %q does not look like an ISO 4217 code", inv.Currency))
	}

	if inv.DueDate == "" {
		r.Warnings = append(r.Warnings, "no due date set")
	} else if before, ok := dateBefore(inv.DueDate, inv.InvoiceDate); ok && before {
		r.Warnings = append(r.Warnings, fmt.Sprintf("due date %s is earlier than invoice date %s", inv.DueDate, inv.InvoiceDate))
	}

	if len(inv.Items) > 0 && invoice.CalculateTotals(inv).Total.IsZero() {
		r.Warnings = append(r.Warnings, "invoice total is zero")
	}

	r.Valid = len(r.Errors) == 0
	return r
}

// ValidateInvoiceStrict additionally requires the fields the relaxed
// rule set only recommends
func (e *Engine) ValidateInvoiceStrict(inv *model.Invoice) *Report {
	r := e.ValidateInvoice(inv)

	strictRequired := []struct {
		value string
		msg   string
	}{
		{inv.From.Address, "From address is required"},
		{inv.From.Email, "From email is required"},
		{inv.To.Address, "To address is required"},
		{inv.DueDate, "Due date is required"},
		{inv.Currency, "Currency is required"},
	}
	for _, req := range strictRequired {
		if strings.TrimSpace(req.value) == "" {
			r.Errors = append(r.Errors, req.msg)
		}
	}

	r.Valid = len(r.Errors) == 0
	return r
}

// dateBefore reports whether a sorts before b; ok is false when either
// is not a parseable calendar date
func dateBefore(a, b string) (before, ok bool) {
	ta, err := time.Parse("2006-01-02", a)
	if err != nil {
		return false, false
	}
	tb, err := time.Parse("2006-01-02", b)
	if err != nil {
		return false, false
	}
	return ta.Before(tb), true
}
