// Package preset holds the playground's canned invoices: the built-in
// demonstration cases plus user preset packs loaded from YAML files.
package preset

import (
	dec "github.com/rezonia/invoice-playground/internal/decimal"
	"github.com/rezonia/invoice-playground/internal/model"
)

// Preset is a named invoice + render options pair selectable by key
type Preset struct {
	Key     string              `json:"key"`
	Name    string              `json:"name"`
	Invoice model.Invoice       `json:"invoice"`
	Options model.RenderOptions `json:"options"`
}

// Keys lists the built-in preset keys in display order
func Keys() []string {
	return []string{"basic", "detailed", "customLabels", "multipleItems", "edgeCase"}
}

// Get returns the built-in preset for key
func Get(key string) (Preset, bool) {
	p, ok := builtIn[key]
	return p, ok
}

// All returns the built-in presets in display order
func All() []Preset {
	presets := make([]Preset, 0, len(builtIn))
	for _, key := range Keys() {
		presets = append(presets, builtIn[key])
	}
	return presets
}

var builtIn = map[string]Preset{
	"basic": {
		Key:  "basic",
		Name: "Basic Invoice",
		Invoice: model.Invoice{
			From:          model.Contact{Name: "Test Company"},
			To:            model.Contact{Name: "Test Customer"},
			InvoiceNumber: "INV-001",
			InvoiceDate:   "2024-01-15",
			Currency:      "USD",
			Items: []model.InvoiceItem{
				{Description: "Test Service", Quantity: dec.FromInt(1), UnitPrice: dec.FromInt(100)},
			},
		},
	},

	"detailed": {
		Key:  "detailed",
		Name: "Detailed Invoice with All Fields",
		Invoice: model.Invoice{
			From: model.Contact{
				Name:    "Acme Corporation",
				Address: "123 Business St\nSuite 100\nNew York, NY 10001",
				Email:   "billing@acme.com",
				Phone:   "+1 (555) 123-4567",
			},
			To: model.Contact{
				Name:    "John Smith",
				Address: "456 Customer Ave\nApt 2B\nLos Angeles, CA 90210",
				Email:   "john@example.com",
				Phone:   "+1 (555) 987-6543",
			},
			InvoiceNumber: "INV-2024-001",
			InvoiceDate:   "2024-01-15",
			DueDate:       "2024-02-15",
			Currency:      "USD",
			Items: []model.InvoiceItem{
				{Description: "Web Development Services", Quantity: dec.FromInt(40), UnitPrice: dec.FromInt(75), TaxRate: dec.MustFromString("0.08")},
				{Description: "SSL Certificate", Quantity: dec.FromInt(1), UnitPrice: dec.FromInt(99), TaxRate: dec.MustFromString("0.08")},
			},
			Discount: dec.FromInt(50),
			Notes:    "Thank you for your business! Payment terms: Net 30 days.",
			Terms:    "Payment is due within 30 days of invoice date. Late payments may incur a 1.5% monthly service charge.",
		},
		Options: model.RenderOptions{LayoutStyle: model.LayoutModern, BrandColor: "#2563eb"},
	},

	"customLabels": {
		Key:  "customLabels",
		Name: "Custom Labels (Spanish)",
		Invoice: model.Invoice{
			From:          model.Contact{Name: "Mi Empresa S.A."},
			To:            model.Contact{Name: "Cliente Ejemplo"},
			InvoiceNumber: "FACT-2024-001",
			InvoiceDate:   "2024-01-15",
			DueDate:       "2024-02-15",
			Currency:      "EUR",
			Items: []model.InvoiceItem{
				{Description: "Servicios de Consultoría", Quantity: dec.FromInt(10), UnitPrice: dec.FromInt(50), TaxRate: dec.MustFromString("0.21")},
			},
			Notes: "¡Gracias por su negocio!",
		},
		Options: model.RenderOptions{
			LayoutStyle: model.LayoutMinimal,
			BrandColor:  "#dc2626",
			Labels: &model.Labels{
				Invoice:     "Factura",
				Date:        "Fecha",
				DueDate:     "Fecha de Vencimiento",
				From:        "De",
				To:          "Para",
				Description: "Descripción",
				Quantity:    "Cantidad",
				UnitPrice:   "Precio Unitario",
				Tax:         "Impuesto",
				Total:       "Total",
				Subtotal:    "Subtotal",
				Discount:    "Descuento",
				Notes:       "Notas",
				Terms:       "Términos",
			},
		},
	},

	"multipleItems": {
		Key:  "multipleItems",
		Name: "Many Items Invoice",
		Invoice: model.Invoice{
			From:          model.Contact{Name: "Tech Solutions Inc."},
			To:            model.Contact{Name: "Enterprise Client Corp."},
			InvoiceNumber: "INV-2024-MULTI",
			InvoiceDate:   "2024-01-15",
			Currency:      "USD",
			Items: []model.InvoiceItem{
				{Description: "Software License (Basic)", Quantity: dec.FromInt(5), UnitPrice: dec.MustFromString("99.99"), TaxRate: dec.MustFromString("0.10")},
				{Description: "Software License (Pro)", Quantity: dec.FromInt(2), UnitPrice: dec.MustFromString("199.99"), TaxRate: dec.MustFromString("0.10")},
				{Description: "Training Session", Quantity: dec.FromInt(8), UnitPrice: dec.FromInt(150), TaxRate: dec.MustFromString("0.10")},
				{Description: "Support Hours", Quantity: dec.FromInt(20), UnitPrice: dec.FromInt(85), TaxRate: dec.MustFromString("0.10")},
				{Description: "Custom Integration", Quantity: dec.FromInt(1), UnitPrice: dec.FromInt(2500), TaxRate: dec.MustFromString("0.10")},
				{Description: "Documentation", Quantity: dec.FromInt(3), UnitPrice: dec.FromInt(75), TaxRate: dec.MustFromString("0.10")},
				{Description: "Server Setup", Quantity: dec.FromInt(2), UnitPrice: dec.FromInt(300), TaxRate: dec.MustFromString("0.10")},
			},
			Discount: dec.FromInt(200),
		},
		Options: model.RenderOptions{LayoutStyle: model.LayoutCreative, BrandColor: "#059669"},
	},

	"edgeCase": {
		Key:  "edgeCase",
		Name: "Edge Cases (Long text, special chars)",
		Invoice: model.Invoice{
			From: model.Contact{
				Name:    "Company with Very Long Name That Might Cause Layout Issues LLC",
				Address: "A very long address that contains special characters like @#$%^&*() and might cause formatting issues\n123 Special Street\nÄÖÜ City, 12345",
			},
			To: model.Contact{
				Name:    "Customer with Special Characters: Müller & Søn A/S",
				Address: "Ñoño Street 123\nÇity with açcénts",
			},
			InvoiceNumber: "INV-2024-SPECIAL-CHARS-&-SYMBOLS",
			InvoiceDate:   "2024-01-15",
			Currency:      "USD",
			Items: []model.InvoiceItem{
				{
					Description: "Service with very long description that might wrap to multiple lines and test the layout handling of extensive text content in invoice generation",
					Quantity:    dec.MustFromString("1.5"),
					UnitPrice:   dec.MustFromString("1234.56"),
					TaxRate:     dec.MustFromString("0.195"),
				},
				{
					Description: "Émojis & Ünicöde tëst 🚀 ✨ 💼",
					Quantity:    dec.MustFromString("0.25"),
					UnitPrice:   dec.MustFromString("9999.99"),
				},
			},
		},
		Options: model.RenderOptions{BrandColor: "#7c3aed"},
	},
}
