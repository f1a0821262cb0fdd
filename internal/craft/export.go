package craft

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"

	dec "github.com/rezonia/invoice-playground/internal/decimal"
	"github.com/rezonia/invoice-playground/internal/invoice"
	"github.com/rezonia/invoice-playground/internal/model"
)

// ExportFormat names a supported export encoding
type ExportFormat string

const (
	FormatPDF  ExportFormat = "pdf"
	FormatHTML ExportFormat = "html"
	FormatJSON ExportFormat = "json"
	FormatCSV  ExportFormat = "csv"
)

// ExportFormats lists the supported encodings
var ExportFormats = []ExportFormat{FormatPDF, FormatHTML, FormatJSON, FormatCSV}

// ParseExportFormat resolves a format string, case-sensitively
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case FormatPDF, FormatHTML, FormatJSON, FormatCSV:
		return ExportFormat(s), nil
	}
	return "", fmt.Errorf("unsupported export format %q (pdf, html, json, csv)", s)
}

// ExportOptions selects the output encoding plus cosmetic styling for
// the renderable formats
type ExportOptions struct {
	Format        ExportFormat      `json:"format"`
	BrandColor    string            `json:"brandColor,omitempty"`
	IncludeStyles bool              `json:"includeStyles,omitempty"`
	LayoutStyle   model.LayoutStyle `json:"layoutStyle,omitempty"`
	Labels        *model.Labels     `json:"labels,omitempty"`
}

// ExportResult is an encoded invoice ready for download
type ExportResult struct {
	Data     []byte `json:"-"`
	MIMEType string `json:"mime_type"`
	Filename string `json:"filename"`
}

// Export encodes an invoice in the requested format
func (e *Engine) Export(ctx context.Context, inv *model.Invoice, opts ExportOptions) (*ExportResult, error) {
	switch opts.Format {
	case FormatPDF:
		artifact, err := e.Generate(ctx, inv, &model.RenderOptions{
			LayoutStyle: opts.LayoutStyle,
			BrandColor:  opts.BrandColor,
			Labels:      opts.Labels,
		})
		if err != nil {
			return nil, err
		}
		return &ExportResult{Data: artifact.Data, MIMEType: artifact.MIMEType, Filename: artifact.Filename}, nil

	case FormatHTML:
		html, err := e.PreviewHTML(inv, PreviewOptions{
			IncludeStyles: opts.IncludeStyles,
			BrandColor:    opts.BrandColor,
			Labels:        opts.Labels,
		})
		if err != nil {
			return nil, err
		}
		return &ExportResult{
			Data:     []byte(html),
			MIMEType: "text/html; charset=utf-8",
			Filename: documentFilename(inv, "html"),
		}, nil

	case FormatJSON:
		return e.exportJSON(inv)

	case FormatCSV:
		return e.exportCSV(inv)
	}

	return nil, model.NewGenerateError("export", fmt.Sprintf("unsupported format %q", opts.Format), nil)
}

func (e *Engine) exportJSON(inv *model.Invoice) (*ExportResult, error) {
	working, err := e.applyPlugins(inv)
	if err != nil {
		return nil, err
	}

	payload := struct {
		Invoice *model.Invoice `json:"invoice"`
		Totals  model.Totals   `json:"totals"`
	}{working, invoice.CalculateTotals(working)}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, model.NewGenerateError("export", "JSON encoding failed", err)
	}
	return &ExportResult{
		Data:     data,
		MIMEType: "application/json",
		Filename: documentFilename(inv, "json"),
	}, nil
}

func (e *Engine) exportCSV(inv *model.Invoice) (*ExportResult, error) {
	working, err := e.applyPlugins(inv)
	if err != nil {
		return nil, err
	}
	totals := invoice.CalculateTotals(working)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"Invoice Number", working.InvoiceNumber},
		{"Invoice Date", working.InvoiceDate},
		{"From", working.From.Name},
		{"To", working.To.Name},
		{"Currency", working.Currency},
		{},
		{"Description", "Quantity", "Unit Price", "Tax Rate", "Line Total"},
	}
	for _, item := range working.Items {
		records = append(records, []string{
			item.Description,
			item.Quantity.String(),
			dec.Display(item.UnitPrice),
			item.TaxRate.String(),
			dec.Display(item.ItemTotal().Add(item.TaxAmount())),
		})
	}
	records = append(records,
		[]string{},
		[]string{"Subtotal", dec.Display(totals.Subtotal)},
		[]string{"Tax", dec.Display(totals.TotalTax)},
		[]string{"Discount", dec.Display(totals.Discount)},
		[]string{"Total", dec.Display(totals.Total)},
	)

	if err := w.WriteAll(records); err != nil {
		return nil, model.NewGenerateError("export", "CSV encoding failed", err)
	}
	return &ExportResult{
		Data:     buf.Bytes(),
		MIMEType: "text/csv; charset=utf-8",
		Filename: documentFilename(inv, "csv"),
	}, nil
}
