package craft_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-playground/internal/craft"
	"github.com/rezonia/invoice-playground/internal/model"
)

func TestValidateInvoice_Valid(t *testing.T) {
	engine := craft.NewEngine()

	report := engine.ValidateInvoice(sampleInvoice())

	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
}

func TestValidateInvoice_AccumulatesAllErrors(t *testing.T) {
	engine := craft.NewEngine()

	// Unlike the fail-fast validator, every violation is reported.
	inv := &model.Invoice{
		Items: []model.InvoiceItem{
			{Quantity: decimal.Zero, UnitPrice: decimal.NewFromInt(-5)},
		},
	}

	report := engine.ValidateInvoice(inv)

	assert.False(t, report.Valid)
	assert.Equal(t, []string{
		"From company name is required",
		"To customer name is required",
		"Invoice number is required",
		"Invoice date is required",
		"Item 1: Description is required",
		"Item 1: Quantity must be greater than 0",
		"Item 1: Unit price cannot be negative",
	}, report.Errors)
}

func TestValidateInvoice_NegativeDiscount(t *testing.T) {
	engine := craft.NewEngine()

	inv := sampleInvoice()
	inv.Discount = decimal.NewFromInt(-10)

	report := engine.ValidateInvoice(inv)

	assert.False(t, report.Valid)
	assert.Contains(t, report.Errors, "Discount cannot be negative")
}

func TestValidateInvoice_Warnings(t *testing.T) {
	engine := craft.NewEngine()

	tests := []struct {
		name    string
		mutate  func(inv *model.Invoice)
		warning string
	}{
		{
			name:    "no due date",
			mutate:  func(inv *model.Invoice) {},
			warning: "no due date set",
		},
		{
			name:    "due date before invoice date",
			mutate:  func(inv *model.Invoice) { inv.DueDate = "2024-01-01" },
			warning: "due date 2024-01-01 is earlier than invoice date 2024-01-15",
		},
		{
			name:    "no currency",
			mutate:  func(inv *model.Invoice) { inv.Currency = "" },
			warning: "no currency set",
		},
		{
			name:    "non ISO currency",
			mutate:  func(inv *model.Invoice) { inv.Currency = "dollars" },
			warning: `currency "dollars" does not look like an ISO 4217 code`,
		},
		{
			name: "tax rate above 1",
			mutate: func(inv *model.Invoice) {
				inv.Items[0].TaxRate = decimal.NewFromInt(8)
			},
			warning: "Item 1: tax rate 8 is outside [0,1]",
		},
		{
			name: "zero total",
			mutate: func(inv *model.Invoice) {
				inv.Items[0].UnitPrice = decimal.Zero
			},
			warning: "invoice total is zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := sampleInvoice()
			tt.mutate(inv)

			report := engine.ValidateInvoice(inv)

			// Warnings never invalidate the invoice.
			assert.True(t, report.Valid)
			assert.Contains(t, report.Warnings, tt.warning)
		})
	}
}

func TestValidateInvoiceStrict(t *testing.T) {
	engine := craft.NewEngine()

	// Valid under the relaxed rules, incomplete under strict.
	inv := sampleInvoice()
	inv.From.Address = ""

	relaxed := engine.ValidateInvoice(inv)
	require.True(t, relaxed.Valid)

	strict := engine.ValidateInvoiceStrict(inv)
	assert.False(t, strict.Valid)
	assert.Contains(t, strict.Errors, "From address is required")
	assert.Contains(t, strict.Errors, "From email is required")
	assert.Contains(t, strict.Errors, "To address is required")
	assert.Contains(t, strict.Errors, "Due date is required")
	assert.NotContains(t, strict.Errors, "Currency is required")
}

func TestValidateInvoiceStrict_Complete(t *testing.T) {
	engine := craft.NewEngine()

	inv := sampleInvoice()
	inv.From.Address = "123 Test St"
	inv.From.Email = "billing@test.example"
	inv.To.Address = "456 Client Ave"
	inv.DueDate = "2024-02-15"

	report := engine.ValidateInvoiceStrict(inv)
	assert.True(t, report.Valid, "unexpected errors: %v", report.Errors)
}
