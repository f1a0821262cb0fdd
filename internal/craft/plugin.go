package craft

import (
	"fmt"
	"strings"
	"time"

	"github.com/rezonia/invoice-playground/internal/model"
)

// Plugin hooks into the generation pipeline. BeforeRender receives a
// private copy of the invoice and may mutate it; returning an error
// aborts generation.
type Plugin struct {
	Name         string
	BeforeRender func(inv *model.Invoice) error
}

// CurrencyFormatter is a built-in plugin that normalizes the currency
// code to upper case and fills in USD when none is set
func CurrencyFormatter() Plugin {
	return Plugin{
		Name: "currency-formatter",
		BeforeRender: func(inv *model.Invoice) error {
			code := strings.ToUpper(strings.TrimSpace(inv.Currency))
			if code == "" {
				code = "USD"
			}
			inv.Currency = code
			return nil
		},
	}
}

// DateValidator is a built-in plugin that rejects invoices whose date
// fields are present but not ISO 8601 calendar dates
func DateValidator() Plugin {
	return Plugin{
		Name: "date-validator",
		BeforeRender: func(inv *model.Invoice) error {
			if err := checkISODate("invoiceDate", inv.InvoiceDate); err != nil {
				return err
			}
			return checkISODate("dueDate", inv.DueDate)
		},
	}
}

// BuiltInPlugins returns the plugins shipped with the engine
func BuiltInPlugins() []Plugin {
	return []Plugin{CurrencyFormatter(), DateValidator()}
}

func checkISODate(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%s %q is not a valid YYYY-MM-DD date", field, value)
	}
	return nil
}
