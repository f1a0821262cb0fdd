package craft

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	dec "github.com/rezonia/invoice-playground/internal/decimal"
	"github.com/rezonia/invoice-playground/internal/invoice"
	"github.com/rezonia/invoice-playground/internal/model"
)

// renderPDF lays out an invoice document with gofpdf. Core fonts only;
// text outside the cp1252 range is transliterated by the translator.
func renderPDF(inv *model.Invoice, opts model.RenderOptions) ([]byte, error) {
	style := styleFor(opts)
	labels := opts.EffectiveLabels()
	totals := invoice.CalculateTotals(inv)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s %s", labels.Invoice, inv.InvoiceNumber), true)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right

	// Title block
	pdf.SetFont(style.titleFont, "B", style.titleSize)
	pdf.SetTextColor(style.accent.r, style.accent.g, style.accent.b)
	pdf.CellFormat(usable/2, 12, tr(labels.Invoice), "", 0, "L", false, 0, "")
	pdf.SetFont(style.bodyFont, "", style.bodySize+2)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(usable/2, 12, tr(inv.InvoiceNumber), "", 1, "R", false, 0, "")

	if style.titleRule {
		pdf.SetDrawColor(style.accent.r, style.accent.g, style.accent.b)
		y := pdf.GetY()
		pdf.Line(left, y, left+usable, y)
	}
	pdf.Ln(4)

	// Dates and currency
	pdf.SetFont(style.bodyFont, "", style.bodySize)
	writeDetail(pdf, tr, labels.Date, inv.InvoiceDate)
	if inv.DueDate != "" {
		writeDetail(pdf, tr, labels.DueDate, inv.DueDate)
	}
	if inv.Currency != "" {
		writeDetail(pdf, tr, "Currency", inv.Currency)
	}
	pdf.Ln(4)

	// Parties, side by side
	writeParties(pdf, tr, style, usable/2, labels, inv.From, inv.To)
	pdf.Ln(6)

	// Items table
	colWidths := []float64{usable - 105, 25, 30, 20, 30}
	headers := []string{labels.Description, labels.Quantity, labels.UnitPrice, labels.Tax, labels.Total}

	pdf.SetFont(style.bodyFont, "B", style.bodySize)
	if style.filledTable {
		pdf.SetFillColor(style.accent.r, style.accent.g, style.accent.b)
		pdf.SetTextColor(255, 255, 255)
	} else {
		pdf.SetFillColor(240, 240, 240)
	}
	for i, header := range headers {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(colWidths[i], 8, tr(header), "1", 0, align, style.filledTable, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(style.bodyFont, "", style.bodySize)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(245, 247, 250)
	for i, item := range inv.Items {
		fill := style.bandedRows && i%2 == 1
		taxRate := "-"
		if !item.TaxRate.IsZero() {
			taxRate = item.TaxRate.Mul(dec.FromInt(100)).String() + "%"
		}
		cells := []string{
			item.Description,
			item.Quantity.String(),
			dec.Display(item.UnitPrice),
			taxRate,
			dec.Display(item.ItemTotal().Add(item.TaxAmount())),
		}
		for j, cell := range cells {
			align := "R"
			if j == 0 {
				align = "L"
			}
			pdf.CellFormat(colWidths[j], 7, tr(cell), "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	// Totals block, right aligned
	writeTotal(pdf, tr, style, usable, labels.Subtotal, totals.Subtotal, false)
	writeTotal(pdf, tr, style, usable, labels.Tax, totals.TotalTax, false)
	if !totals.Discount.IsZero() {
		writeTotal(pdf, tr, style, usable, labels.Discount, totals.Discount.Neg(), false)
	}
	writeTotal(pdf, tr, style, usable, labels.Total, totals.Total, true)
	pdf.Ln(6)

	// Free text blocks
	writeFreeText(pdf, tr, style, usable, labels.Notes, inv.Notes)
	writeFreeText(pdf, tr, style, usable, labels.Terms, inv.Terms)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeDetail(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont("", "B", 0)
	pdf.CellFormat(30, 6, tr(label+":"), "", 0, "L", false, 0, "")
	pdf.SetFont("", "", 0)
	pdf.CellFormat(0, 6, tr(value), "", 1, "L", false, 0, "")
}

func writeParties(pdf *gofpdf.Fpdf, tr func(string) string, style templateStyle, width float64, labels model.Labels, from, to model.Contact) {
	left := pdf.GetX()
	top := pdf.GetY()

	writeContact := func(x float64, label string, contact model.Contact) float64 {
		pdf.SetXY(x, top)
		pdf.SetFont(style.bodyFont, "B", style.bodySize)
		pdf.SetTextColor(style.accent.r, style.accent.g, style.accent.b)
		pdf.CellFormat(width, 6, tr(label), "", 2, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(width, 6, tr(contact.Name), "", 2, "L", false, 0, "")
		pdf.SetFont(style.bodyFont, "", style.bodySize)
		if contact.Address != "" {
			pdf.SetX(x)
			pdf.MultiCell(width, 5, tr(contact.Address), "", "L", false)
		}
		for _, line := range []string{contact.Email, contact.Phone} {
			if line != "" {
				pdf.SetX(x)
				pdf.CellFormat(width, 5, tr(line), "", 2, "L", false, 0, "")
			}
		}
		return pdf.GetY()
	}

	fromBottom := writeContact(left, labels.From, from)
	toBottom := writeContact(left+width, labels.To, to)

	bottom := fromBottom
	if toBottom > bottom {
		bottom = toBottom
	}
	pdf.SetXY(left, bottom)
}

func writeTotal(pdf *gofpdf.Fpdf, tr func(string) string, style templateStyle, usable float64, label string, amount decimal.Decimal, grand bool) {
	const labelWidth, valueWidth = 40.0, 35.0
	pdf.SetX(pdf.GetX() + usable - labelWidth - valueWidth)
	if grand {
		pdf.SetFont(style.bodyFont, "B", style.bodySize+2)
		pdf.SetTextColor(style.accent.r, style.accent.g, style.accent.b)
	} else {
		pdf.SetFont(style.bodyFont, "", style.bodySize)
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.CellFormat(labelWidth, 7, tr(label), "", 0, "R", false, 0, "")
	pdf.CellFormat(valueWidth, 7, tr(amount.StringFixed(2)), "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func writeFreeText(pdf *gofpdf.Fpdf, tr func(string) string, style templateStyle, usable float64, label, text string) {
	if text == "" {
		return
	}
	pdf.SetFont(style.bodyFont, "B", style.bodySize)
	pdf.CellFormat(usable, 6, tr(label), "", 1, "L", false, 0, "")
	pdf.SetFont(style.bodyFont, "", style.bodySize)
	pdf.MultiCell(usable, 5, tr(text), "", "L", false)
	pdf.Ln(3)
}
