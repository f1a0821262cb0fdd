package cmd

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-playground/internal/craft"
	"github.com/rezonia/invoice-playground/internal/decimal"
	"github.com/rezonia/invoice-playground/internal/invoice"
	"github.com/rezonia/invoice-playground/internal/model"
	"github.com/rezonia/invoice-playground/internal/preset"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the generation engine end to end",
	Long: `Run a smoke test against every engine surface and exit non-zero
on the first failure.

Checks:
  - the engine is constructible and its plugins are callable
  - the invoice core validates and totals a known invoice correctly
  - PDF generation produces output that passes PDF validation
  - the HTML preview renders
  - every export format produces data
  - batch generation completes

Examples:
  invoice-playground verify
  invoice-playground verify -v`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	fmt.Println("Verifying invoice generation engine...")
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	engine := craft.NewEngine(craft.WithPlugins(craft.BuiltInPlugins()...))

	// Engine surface
	plugins := engine.Plugins()
	if len(plugins) == 0 {
		return fmt.Errorf("engine exposes no plugins")
	}
	fmt.Printf("✓ Engine ready (plugins: %s)\n", strings.Join(plugins, ", "))

	// Core smoke test
	smoke := &model.Invoice{
		From:          model.Contact{Name: "Test Company", Address: "123 Test St"},
		To:            model.Contact{Name: "Test Client", Address: "456 Client Ave"},
		InvoiceNumber: "TEST-001",
		InvoiceDate:   "2024-01-15",
		Currency:      "USD",
		Items: []model.InvoiceItem{
			{Description: "Test Service", Quantity: decimal.FromInt(1), UnitPrice: decimal.FromInt(100)},
		},
	}
	if err := invoice.Validate(smoke); err != nil {
		return fmt.Errorf("smoke invoice failed validation: %w", err)
	}
	totals := invoice.CalculateTotals(smoke)
	if !totals.Total.Equal(decimal.FromInt(100)) {
		return fmt.Errorf("smoke invoice totals wrong: got total %s, want 100", totals.Total)
	}
	report := engine.ValidateInvoice(smoke)
	if !report.Valid {
		return fmt.Errorf("smoke invoice failed rich validation: %v", report.Errors)
	}
	fmt.Printf("✓ Core validation and totals (errors: %d, warnings: %d)\n",
		len(report.Errors), len(report.Warnings))

	// PDF generation, checked with pdfcpu
	basic, ok := preset.Get("basic")
	if !ok {
		return fmt.Errorf("built-in basic preset is missing")
	}
	artifact, err := engine.Generate(ctx, &basic.Invoice, &basic.Options)
	if err != nil {
		return fmt.Errorf("PDF generation failed: %w", err)
	}
	if len(artifact.Data) == 0 {
		return fmt.Errorf("PDF generation produced no data")
	}
	if err := api.Validate(bytes.NewReader(artifact.Data), pdfmodel.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("generated PDF failed validation: %w", err)
	}
	fmt.Printf("✓ PDF generation (%s, %d bytes, passes PDF validation)\n",
		artifact.Filename, len(artifact.Data))

	// HTML preview
	html, err := engine.PreviewHTML(&basic.Invoice, craft.PreviewOptions{IncludeStyles: true})
	if err != nil {
		return fmt.Errorf("HTML preview failed: %w", err)
	}
	if !strings.Contains(html, basic.Invoice.InvoiceNumber) {
		return fmt.Errorf("HTML preview is missing the invoice number")
	}
	fmt.Printf("✓ HTML preview (%d bytes)\n", len(html))

	// Export formats
	for _, format := range craft.ExportFormats {
		result, err := engine.Export(ctx, &basic.Invoice, craft.ExportOptions{Format: format})
		if err != nil {
			return fmt.Errorf("%s export failed: %w", format, err)
		}
		if len(result.Data) == 0 {
			return fmt.Errorf("%s export produced no data", format)
		}
		printVerbose("  %s -> %s (%d bytes)\n", format, result.Filename, len(result.Data))
	}
	fmt.Printf("✓ Export formats (%d)\n", len(craft.ExportFormats))

	// Batch generation
	batch, err := engine.GenerateBatch(ctx, craft.TestBatch(3), craft.BatchOptions{Concurrency: 2})
	if err != nil {
		return fmt.Errorf("batch generation failed: %w", err)
	}
	if batch.Summary.Successful != 3 || batch.Summary.Failed != 0 {
		return fmt.Errorf("batch summary wrong: %d successful, %d failed",
			batch.Summary.Successful, batch.Summary.Failed)
	}
	fmt.Printf("✓ Batch generation (%d invoices)\n", batch.Summary.Successful)

	fmt.Println()
	fmt.Println("All checks passed.")
	return nil
}
