// Package invoice holds the pure invoice arithmetic shared by every
// playground surface: totals derivation and pre-submission validation.
//
// Both functions are synchronous, total, and side-effect-free. Every
// caller (CLI commands, HTTP handlers, the generation engine) goes
// through this package instead of carrying its own copy of the math.
package invoice

import (
	dec "github.com/rezonia/invoice-playground/internal/decimal"
	"github.com/rezonia/invoice-playground/internal/model"
)

// CalculateTotals derives the monetary totals from an invoice's line
// items and flat discount:
//
//	subtotal = Σ quantity×unitPrice
//	totalTax = Σ itemTotal×taxRate   (rate defaults to 0)
//	total    = subtotal + totalTax − discount
//
// Malformed values (negative quantities and the like) are not
// rejected here; Validate runs first at every call site.
func CalculateTotals(inv *model.Invoice) model.Totals {
	subtotal := dec.Zero
	totalTax := dec.Zero

	for _, item := range inv.Items {
		itemTotal := item.ItemTotal()
		subtotal = subtotal.Add(itemTotal)
		totalTax = totalTax.Add(dec.ApplyRate(itemTotal, item.TaxRate))
	}

	return model.Totals{
		Subtotal: subtotal,
		TotalTax: totalTax,
		Discount: inv.Discount,
		Total:    subtotal.Add(totalTax).Sub(inv.Discount),
	}
}
