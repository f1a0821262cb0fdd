// Package invoicecraft provides a public API for generating invoice PDFs.
//
// This package exposes the core types for validating invoices, computing
// totals, and rendering invoices as PDF, HTML, JSON or CSV documents.
//
// Example usage:
//
//	gen := invoicecraft.NewGenerator()
//	artifact, err := gen.Generate(ctx, inv, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(artifact.Filename, artifact.Data, 0o644)
package invoicecraft

import "github.com/rezonia/invoice-playground/internal/model"

// Re-export core types for public API
type (
	Invoice       = model.Invoice
	InvoiceItem   = model.InvoiceItem
	Contact       = model.Contact
	Totals        = model.Totals
	RenderOptions = model.RenderOptions
	Labels        = model.Labels
	LayoutStyle   = model.LayoutStyle
	Status        = model.Status
	StatusKind    = model.StatusKind
	Document      = model.Document
)

// Re-export layout styles
const (
	LayoutDefault  = model.LayoutDefault
	LayoutModern   = model.LayoutModern
	LayoutMinimal  = model.LayoutMinimal
	LayoutCreative = model.LayoutCreative
)

// Re-export status kinds
const (
	StatusIdle       = model.StatusIdle
	StatusValidating = model.StatusValidating
	StatusGenerating = model.StatusGenerating
	StatusSuccess    = model.StatusSuccess
	StatusError      = model.StatusError
)

// Re-export error types
type (
	ParseError      = model.ParseError
	ValidationError = model.ValidationError
	GenerateError   = model.GenerateError
)

// DefaultLabels returns the built-in English document labels.
func DefaultLabels() Labels {
	return model.DefaultLabels()
}

// ParseInvoice decodes invoice JSON, checking structural shape first.
func ParseInvoice(data []byte) (*Invoice, error) {
	return model.ParseInvoice(data)
}

// ParseDocument decodes an invoice plus optional render options.
func ParseDocument(data []byte) (*Document, error) {
	return model.ParseDocument(data)
}
