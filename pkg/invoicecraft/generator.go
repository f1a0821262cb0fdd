package invoicecraft

import (
	"context"

	"github.com/rezonia/invoice-playground/internal/craft"
	"github.com/rezonia/invoice-playground/internal/invoice"
)

// Re-export engine types
type (
	Artifact       = craft.Artifact
	Plugin         = craft.Plugin
	Report         = craft.Report
	PreviewOptions = craft.PreviewOptions
	ExportFormat   = craft.ExportFormat
	ExportOptions  = craft.ExportOptions
	ExportResult   = craft.ExportResult
	BatchOptions   = craft.BatchOptions
	BatchResult    = craft.BatchResult
)

// Re-export export formats
const (
	FormatPDF  = craft.FormatPDF
	FormatHTML = craft.FormatHTML
	FormatJSON = craft.FormatJSON
	FormatCSV  = craft.FormatCSV
)

// GeneratorOptions configures generator behavior
type GeneratorOptions struct {
	// Defaults are applied when a call carries no render options
	Defaults RenderOptions

	// Plugins run before each render, in order
	Plugins []Plugin

	// UseBuiltInPlugins appends the built-in plugin set
	UseBuiltInPlugins bool
}

// Generator renders invoices using the internal generation engine
type Generator struct {
	engine *craft.Engine
}

// NewGenerator creates a generator with default options
func NewGenerator() *Generator {
	return NewGeneratorWith(GeneratorOptions{})
}

// NewGeneratorWith creates a generator with the given options
func NewGeneratorWith(opts GeneratorOptions) *Generator {
	plugins := append([]Plugin(nil), opts.Plugins...)
	if opts.UseBuiltInPlugins {
		plugins = append(plugins, craft.BuiltInPlugins()...)
	}
	return &Generator{
		engine: craft.NewEngine(
			craft.WithDefaults(opts.Defaults),
			craft.WithPlugins(plugins...),
		),
	}
}

// Generate renders an invoice as a PDF artifact
func (g *Generator) Generate(ctx context.Context, inv *Invoice, opts *RenderOptions) (*Artifact, error) {
	return g.engine.Generate(ctx, inv, opts)
}

// Preview renders an invoice as standalone HTML
func (g *Generator) Preview(inv *Invoice, opts PreviewOptions) (string, error) {
	return g.engine.PreviewHTML(inv, opts)
}

// Export encodes an invoice in the requested format
func (g *Generator) Export(ctx context.Context, inv *Invoice, opts ExportOptions) (*ExportResult, error) {
	return g.engine.Export(ctx, inv, opts)
}

// Validate accumulates every rule violation and warning for an invoice
func (g *Generator) Validate(inv *Invoice) *Report {
	return g.engine.ValidateInvoice(inv)
}

// ValidateStrict applies the extended rule set on top of Validate
func (g *Generator) ValidateStrict(inv *Invoice) *Report {
	return g.engine.ValidateInvoiceStrict(inv)
}

// GenerateBatch renders multiple invoices with bounded concurrency
func (g *Generator) GenerateBatch(ctx context.Context, invoices []*Invoice, opts BatchOptions) (*BatchResult, error) {
	return g.engine.GenerateBatch(ctx, invoices, opts)
}

// Plugins lists the registered plugin names in run order
func (g *Generator) Plugins() []string {
	return g.engine.Plugins()
}

// CalculateTotals derives an invoice's monetary summary. The input is
// never modified.
func CalculateTotals(inv *Invoice) Totals {
	return invoice.CalculateTotals(inv)
}

// Validate checks an invoice and reports the first violation found, or
// nil when the invoice is well formed.
func Validate(inv *Invoice) error {
	return invoice.Validate(inv)
}

// BuiltInPlugins returns the built-in plugin set
func BuiltInPlugins() []Plugin {
	return craft.BuiltInPlugins()
}
