package craft_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-playground/internal/craft"
	"github.com/rezonia/invoice-playground/internal/model"
)

func sampleInvoice() *model.Invoice {
	return &model.Invoice{
		From:          model.Contact{Name: "Test Company", Address: "123 Test St\nTest City"},
		To:            model.Contact{Name: "Test Customer"},
		InvoiceNumber: "INV-001",
		InvoiceDate:   "2024-01-15",
		Currency:      "USD",
		Items: []model.InvoiceItem{
			{Description: "Test Service", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
		},
	}
}

func TestEngine_Generate(t *testing.T) {
	engine := craft.NewEngine()

	artifact, err := engine.Generate(context.Background(), sampleInvoice(), nil)
	require.NoError(t, err)

	assert.Equal(t, "invoice-INV-001.pdf", artifact.Filename)
	assert.Equal(t, "application/pdf", artifact.MIMEType)
	require.NotEmpty(t, artifact.Data)
	assert.True(t, bytes.HasPrefix(artifact.Data, []byte("%PDF")),
		"artifact does not start with a PDF header")
}

func TestEngine_GenerateAllLayouts(t *testing.T) {
	engine := craft.NewEngine()

	for _, layout := range model.KnownLayouts {
		t.Run(string(layout), func(t *testing.T) {
			artifact, err := engine.Generate(context.Background(), sampleInvoice(), &model.RenderOptions{
				LayoutStyle: layout,
				BrandColor:  "#2563eb",
			})
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(artifact.Data, []byte("%PDF")))
		})
	}
}

func TestEngine_GenerateUnicodeContent(t *testing.T) {
	engine := craft.NewEngine()

	inv := sampleInvoice()
	inv.From.Name = "Ünïcödé & Spëcïål Chäracters Co. ™"
	inv.Items[0].Description = "Service with émojis 🚀 and symbols ©®™"

	artifact, err := engine.Generate(context.Background(), inv, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, artifact.Data)
}

func TestEngine_GenerateCancelledContext(t *testing.T) {
	engine := craft.NewEngine()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Generate(ctx, sampleInvoice(), nil)
	require.Error(t, err)

	var gerr *model.GenerateError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, "generate", gerr.Op)
	require.ErrorIs(t, err, context.Canceled)
}

func TestEngine_FilenameSanitized(t *testing.T) {
	engine := craft.NewEngine()

	inv := sampleInvoice()
	inv.InvoiceNumber = "INV 001/посилання"

	artifact, err := engine.Generate(context.Background(), inv, nil)
	require.NoError(t, err)
	assert.Equal(t, "invoice-INV-001-.pdf", artifact.Filename)
}

func TestEngine_FilenameDraftFallback(t *testing.T) {
	engine := craft.NewEngine()

	inv := sampleInvoice()
	inv.InvoiceNumber = "   "

	artifact, err := engine.Generate(context.Background(), inv, nil)
	require.NoError(t, err)
	assert.Equal(t, "invoice-draft.pdf", artifact.Filename)
}

func TestEngine_DefaultsApplied(t *testing.T) {
	engine := craft.NewEngine(craft.WithDefaults(model.RenderOptions{
		Labels: &model.Labels{Invoice: "Rechnung"},
	}))

	// Defaults back-fill a nil options argument.
	artifact, err := engine.Generate(context.Background(), sampleInvoice(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, artifact.Data)
}

func TestEngine_PluginsRunInOrder(t *testing.T) {
	var order []string
	mk := func(name string) craft.Plugin {
		return craft.Plugin{
			Name: name,
			BeforeRender: func(inv *model.Invoice) error {
				order = append(order, name)
				return nil
			},
		}
	}

	engine := craft.NewEngine(craft.WithPlugins(mk("first"), mk("second")))
	engine.Register(mk("third"))

	_, err := engine.Generate(context.Background(), sampleInvoice(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, order)
	assert.Equal(t, []string{"first", "second", "third"}, engine.Plugins())
}

func TestEngine_PluginMutatesCopyNotInput(t *testing.T) {
	engine := craft.NewEngine(craft.WithPlugins(craft.CurrencyFormatter()))

	inv := sampleInvoice()
	inv.Currency = "usd"

	_, err := engine.Generate(context.Background(), inv, nil)
	require.NoError(t, err)

	// The caller's invoice keeps its original currency.
	assert.Equal(t, "usd", inv.Currency)
}

func TestEngine_PluginErrorAbortsGeneration(t *testing.T) {
	boom := errors.New("rejected")
	engine := craft.NewEngine(craft.WithPlugins(craft.Plugin{
		Name:         "rejector",
		BeforeRender: func(inv *model.Invoice) error { return boom },
	}))

	_, err := engine.Generate(context.Background(), sampleInvoice(), nil)
	require.Error(t, err)

	var gerr *model.GenerateError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, "plugin", gerr.Op)
	require.ErrorIs(t, err, boom)
}

func TestCurrencyFormatter(t *testing.T) {
	plugin := craft.CurrencyFormatter()

	inv := sampleInvoice()
	inv.Currency = " eur "
	require.NoError(t, plugin.BeforeRender(inv))
	assert.Equal(t, "EUR", inv.Currency)

	inv.Currency = ""
	require.NoError(t, plugin.BeforeRender(inv))
	assert.Equal(t, "USD", inv.Currency)
}

func TestDateValidator(t *testing.T) {
	plugin := craft.DateValidator()

	inv := sampleInvoice()
	require.NoError(t, plugin.BeforeRender(inv))

	inv.DueDate = "2024-02-15"
	require.NoError(t, plugin.BeforeRender(inv))

	inv.InvoiceDate = "15/01/2024"
	err := plugin.BeforeRender(inv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invoiceDate")

	inv.InvoiceDate = "2024-01-15"
	inv.DueDate = "soon"
	err = plugin.BeforeRender(inv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dueDate")
}
