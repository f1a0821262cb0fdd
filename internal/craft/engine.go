// Package craft implements the invoice generation engine behind the
// playground: PDF rendering, HTML previews, export encoders, rich
// validation, batch generation, and a plugin hook pipeline.
package craft

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rezonia/invoice-playground/internal/model"
)

// Artifact is the result of generating a single invoice document
type Artifact struct {
	Data     []byte `json:"-"`
	Filename string `json:"filename"`
	MIMEType string `json:"mime_type"`
}

// Engine renders invoices into downloadable documents
type Engine struct {
	defaults model.RenderOptions
	plugins  []Plugin
}

// Option configures an Engine
type Option func(*Engine)

// WithDefaults sets render options applied when a call passes none
func WithDefaults(opts model.RenderOptions) Option {
	return func(e *Engine) {
		e.defaults = opts
	}
}

// WithPlugins registers plugins run before every render
func WithPlugins(plugins ...Plugin) Option {
	return func(e *Engine) {
		e.plugins = append(e.plugins, plugins...)
	}
}

// NewEngine creates a generation engine
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Register adds a plugin after construction. Plugins run in
// registration order.
func (e *Engine) Register(p Plugin) {
	e.plugins = append(e.plugins, p)
}

// Plugins returns the names of the registered plugins
func (e *Engine) Plugins() []string {
	names := make([]string, 0, len(e.plugins))
	for _, p := range e.plugins {
		names = append(names, p.Name)
	}
	return names
}

// Generate renders an invoice into a PDF artifact. Registered plugins
// and any per-call plugins run against a copy of the invoice first, so
// the caller's value is never mutated.
func (e *Engine) Generate(ctx context.Context, inv *model.Invoice, opts *model.RenderOptions) (*Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.NewGenerateError("generate", "cancelled before rendering", err)
	}

	resolved := e.resolveOptions(opts)

	working, err := e.applyPlugins(inv)
	if err != nil {
		return nil, err
	}

	data, err := renderPDF(working, resolved)
	if err != nil {
		return nil, model.NewGenerateError("template", "PDF rendering failed", err)
	}

	return &Artifact{
		Data:     data,
		Filename: documentFilename(working, "pdf"),
		MIMEType: "application/pdf",
	}, nil
}

func (e *Engine) resolveOptions(opts *model.RenderOptions) model.RenderOptions {
	if opts == nil {
		return e.defaults
	}
	resolved := *opts
	if resolved.LayoutStyle == "" {
		resolved.LayoutStyle = e.defaults.LayoutStyle
	}
	if resolved.BrandColor == "" {
		resolved.BrandColor = e.defaults.BrandColor
	}
	if resolved.LogoURL == "" {
		resolved.LogoURL = e.defaults.LogoURL
	}
	if resolved.Labels == nil {
		resolved.Labels = e.defaults.Labels
	}
	return resolved
}

// applyPlugins runs every BeforeRender hook against a copy of the
// invoice and returns the mutated copy
func (e *Engine) applyPlugins(inv *model.Invoice) (*model.Invoice, error) {
	working := cloneInvoice(inv)
	for _, p := range e.plugins {
		if p.BeforeRender == nil {
			continue
		}
		if err := p.BeforeRender(working); err != nil {
			return nil, model.NewGenerateError("plugin", fmt.Sprintf("plugin %q rejected invoice", p.Name), err)
		}
	}
	return working, nil
}

func cloneInvoice(inv *model.Invoice) *model.Invoice {
	clone := *inv
	clone.Items = make([]model.InvoiceItem, len(inv.Items))
	copy(clone.Items, inv.Items)
	return &clone
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// documentFilename derives the download filename from the invoice
// number, e.g. invoice-INV-001.pdf
func documentFilename(inv *model.Invoice, ext string) string {
	number := strings.TrimSpace(inv.InvoiceNumber)
	if number == "" {
		number = "draft"
	}
	return fmt.Sprintf("invoice-%s.%s", unsafeFilenameChars.ReplaceAllString(number, "-"), ext)
}
