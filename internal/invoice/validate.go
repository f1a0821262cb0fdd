package invoice

import (
	"fmt"
	"strings"

	dec "github.com/rezonia/invoice-playground/internal/decimal"
	"github.com/rezonia/invoice-playground/internal/model"
)

// Validate gates invoice submission. It reports the first violation in
// a fixed order and stops there; a nil return means the invoice may be
// handed to the generation engine.
//
// Check order: from.name, to.name, invoiceNumber, invoiceDate, at
// least one item, then per item (in sequence) description, quantity,
// unit price.
func Validate(inv *model.Invoice) error {
	if strings.TrimSpace(inv.From.Name) == "" {
		return model.NewValidationError("from.name", "From company name is required")
	}
	if strings.TrimSpace(inv.To.Name) == "" {
		return model.NewValidationError("to.name", "To customer name is required")
	}
	if strings.TrimSpace(inv.InvoiceNumber) == "" {
		return model.NewValidationError("invoiceNumber", "Invoice number is required")
	}
	if strings.TrimSpace(inv.InvoiceDate) == "" {
		return model.NewValidationError("invoiceDate", "Invoice date is required")
	}
	if len(inv.Items) == 0 {
		return model.NewValidationError("items", "At least one item is required")
	}

	for i, item := range inv.Items {
		field := fmt.Sprintf("items[%d]", i)
		if strings.TrimSpace(item.Description) == "" {
			return model.NewValidationError(field+".description",
				fmt.Sprintf("Item %d: Description is required", i+1))
		}
		if !dec.IsPositive(item.Quantity) {
			return model.NewValidationError(field+".quantity",
				fmt.Sprintf("Item %d: Quantity must be greater than 0", i+1))
		}
		if !dec.IsNonNegative(item.UnitPrice) {
			return model.NewValidationError(field+".unitPrice",
				fmt.Sprintf("Item %d: Unit price cannot be negative", i+1))
		}
	}

	return nil
}
