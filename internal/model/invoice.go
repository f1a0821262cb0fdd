package model

import (
	"github.com/shopspring/decimal"
)

// Contact represents an invoice party (issuer or recipient)
type Contact struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// InvoiceItem represents one billable line entry
type InvoiceItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	// TaxRate is a fraction in [0,1], e.g. 0.08 for 8%. Zero when absent.
	TaxRate decimal.Decimal `json:"taxRate,omitempty"`
}

// Invoice represents the bill document's structured data.
//
// Totals are never stored on the invoice; they are derived from Items
// and Discount on every read (see internal/invoice).
type Invoice struct {
	From          Contact `json:"from"`
	To            Contact `json:"to"`
	InvoiceNumber string  `json:"invoiceNumber"`
	// InvoiceDate and DueDate are ISO 8601 calendar date strings
	// ("YYYY-MM-DD" by convention). No ordering between them is
	// enforced at submission time.
	InvoiceDate string `json:"invoiceDate"`
	DueDate     string `json:"dueDate,omitempty"`
	// Currency is an ISO-4217-like code, free form.
	Currency string        `json:"currency"`
	Items    []InvoiceItem `json:"items"`
	// Discount is a flat amount subtracted once from the grand total,
	// never a percentage.
	Discount decimal.Decimal `json:"discount,omitempty"`
	Notes    string          `json:"notes,omitempty"`
	Terms    string          `json:"terms,omitempty"`
}

// Totals holds the derived monetary totals of an invoice
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	TotalTax decimal.Decimal `json:"totalTax"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// ItemTotal returns quantity * unitPrice for a single line item
func (it InvoiceItem) ItemTotal() decimal.Decimal {
	return it.Quantity.Mul(it.UnitPrice)
}

// TaxAmount returns the tax portion of a single line item
func (it InvoiceItem) TaxAmount() decimal.Decimal {
	if it.TaxRate.IsZero() {
		return decimal.Zero
	}
	return it.ItemTotal().Mul(it.TaxRate)
}
