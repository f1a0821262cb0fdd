package craft

import (
	"html/template"
	"strings"

	"github.com/shopspring/decimal"

	dec "github.com/rezonia/invoice-playground/internal/decimal"
	"github.com/rezonia/invoice-playground/internal/invoice"
	"github.com/rezonia/invoice-playground/internal/model"
)

// PreviewOptions controls the HTML preview rendering
type PreviewOptions struct {
	Theme         string        `json:"theme,omitempty"` // light (default) or dark
	Responsive    bool          `json:"responsive,omitempty"`
	IncludeStyles bool          `json:"includeStyles,omitempty"`
	BrandColor    string        `json:"brandColor,omitempty"`
	Labels        *model.Labels `json:"labels,omitempty"`
}

type previewData struct {
	Invoice *model.Invoice
	Labels  model.Labels
	Totals  model.Totals
	Opts    PreviewOptions
	Accent  string
	Dark    bool
}

var previewTmpl = template.Must(template.New("preview").Funcs(template.FuncMap{
	"money": func(d decimal.Decimal) string { return dec.Display(d) },
	"rate": func(d decimal.Decimal) string {
		if d.IsZero() {
			return "-"
		}
		return d.Mul(decimal.NewFromInt(100)).String() + "%"
	},
	"lines": func(s string) []string { return strings.Split(s, "\n") },
}).Parse(previewHTML))

// PreviewHTML renders the invoice as a standalone HTML document for
// in-browser preview. It performs no validation; callers run the
// fail-fast validator first when previewing user input.
func (e *Engine) PreviewHTML(inv *model.Invoice, opts PreviewOptions) (string, error) {
	working, err := e.applyPlugins(inv)
	if err != nil {
		return "", err
	}

	labels := model.DefaultLabels()
	if opts.Labels != nil {
		labels = labels.Merge(*opts.Labels)
	}

	accent := "#333333"
	if _, ok := parseHexColor(opts.BrandColor); ok {
		accent = opts.BrandColor
	}

	var sb strings.Builder
	data := previewData{
		Invoice: working,
		Labels:  labels,
		Totals:  invoice.CalculateTotals(working),
		Opts:    opts,
		Accent:  accent,
		Dark:    opts.Theme == "dark",
	}
	if err := previewTmpl.Execute(&sb, data); err != nil {
		return "", model.NewGenerateError("preview", "HTML rendering failed", err)
	}
	return sb.String(), nil
}

const previewHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
{{- if .Opts.Responsive }}
<meta name="viewport" content="width=device-width, initial-scale=1">
{{- end }}
<title>{{ .Labels.Invoice }} {{ .Invoice.InvoiceNumber }}</title>
{{- if .Opts.IncludeStyles }}
<style>
  body { font-family: Helvetica, Arial, sans-serif; margin: 2rem; color: {{ if .Dark }}#e5e7eb{{ else }}#1f2937{{ end }}; background: {{ if .Dark }}#111827{{ else }}#ffffff{{ end }}; }
  h1 { color: {{ .Accent }}; }
  table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
  th { background: {{ .Accent }}; color: #fff; text-align: left; }
  th, td { border: 1px solid #d1d5db; padding: 0.4rem 0.6rem; }
  td.num, th.num { text-align: right; }
  .parties { display: flex; gap: 4rem; }
  .totals { margin-left: auto; width: 16rem; }
  .totals .grand { font-weight: bold; color: {{ .Accent }}; }
  .freetext { white-space: pre-line; }
</style>
{{- end }}
</head>
<body>
<h1>{{ .Labels.Invoice }} {{ .Invoice.InvoiceNumber }}</h1>
<p>{{ .Labels.Date }}: {{ .Invoice.InvoiceDate }}
{{- if .Invoice.DueDate }}<br>{{ .Labels.DueDate }}: {{ .Invoice.DueDate }}{{ end }}
{{- if .Invoice.Currency }}<br>{{ .Invoice.Currency }}{{ end }}</p>
<div class="parties">
  <div>
    <h3>{{ .Labels.From }}</h3>
    <p><strong>{{ .Invoice.From.Name }}</strong>
    {{- range lines .Invoice.From.Address }}<br>{{ . }}{{ end }}
    {{- if .Invoice.From.Email }}<br>{{ .Invoice.From.Email }}{{ end }}
    {{- if .Invoice.From.Phone }}<br>{{ .Invoice.From.Phone }}{{ end }}</p>
  </div>
  <div>
    <h3>{{ .Labels.To }}</h3>
    <p><strong>{{ .Invoice.To.Name }}</strong>
    {{- range lines .Invoice.To.Address }}<br>{{ . }}{{ end }}
    {{- if .Invoice.To.Email }}<br>{{ .Invoice.To.Email }}{{ end }}
    {{- if .Invoice.To.Phone }}<br>{{ .Invoice.To.Phone }}{{ end }}</p>
  </div>
</div>
<table>
  <thead>
    <tr><th>{{ .Labels.Description }}</th><th class="num">{{ .Labels.Quantity }}</th><th class="num">{{ .Labels.UnitPrice }}</th><th class="num">{{ .Labels.Tax }}</th><th class="num">{{ .Labels.Total }}</th></tr>
  </thead>
  <tbody>
  {{- range .Invoice.Items }}
    <tr><td>{{ .Description }}</td><td class="num">{{ .Quantity }}</td><td class="num">{{ money .UnitPrice }}</td><td class="num">{{ rate .TaxRate }}</td><td class="num">{{ money (.ItemTotal.Add .TaxAmount) }}</td></tr>
  {{- end }}
  </tbody>
</table>
<table class="totals">
  <tr><td>{{ .Labels.Subtotal }}</td><td class="num">{{ money .Totals.Subtotal }}</td></tr>
  <tr><td>{{ .Labels.Tax }}</td><td class="num">{{ money .Totals.TotalTax }}</td></tr>
  {{- if not .Totals.Discount.IsZero }}
  <tr><td>{{ .Labels.Discount }}</td><td class="num">-{{ money .Totals.Discount }}</td></tr>
  {{- end }}
  <tr class="grand"><td>{{ .Labels.Total }}</td><td class="num">{{ money .Totals.Total }}</td></tr>
</table>
{{- if .Invoice.Notes }}
<h3>{{ .Labels.Notes }}</h3>
<p class="freetext">{{ .Invoice.Notes }}</p>
{{- end }}
{{- if .Invoice.Terms }}
<h3>{{ .Labels.Terms }}</h3>
<p class="freetext">{{ .Invoice.Terms }}</p>
{{- end }}
</body>
</html>
`
