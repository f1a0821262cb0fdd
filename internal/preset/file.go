package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	dec "github.com/rezonia/invoice-playground/internal/decimal"
	"github.com/rezonia/invoice-playground/internal/model"
)

// YAML preset files carry plain numbers; amounts are converted to
// decimals on load.
type filePreset struct {
	Key     string              `yaml:"key"`
	Name    string              `yaml:"name"`
	Invoice fileInvoice         `yaml:"invoice"`
	Options model.RenderOptions `yaml:"options"`
}

type fileInvoice struct {
	From          fileContact `yaml:"from"`
	To            fileContact `yaml:"to"`
	InvoiceNumber string      `yaml:"invoiceNumber"`
	InvoiceDate   string      `yaml:"invoiceDate"`
	DueDate       string      `yaml:"dueDate"`
	Currency      string      `yaml:"currency"`
	Items         []fileItem  `yaml:"items"`
	Discount      float64     `yaml:"discount"`
	Notes         string      `yaml:"notes"`
	Terms         string      `yaml:"terms"`
}

type fileContact struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
}

type fileItem struct {
	Description string  `yaml:"description"`
	Quantity    float64 `yaml:"quantity"`
	UnitPrice   float64 `yaml:"unitPrice"`
	TaxRate     float64 `yaml:"taxRate"`
}

// LoadFile reads a user preset pack from a YAML file. The file holds a
// list of presets; every preset needs a key and a name.
func LoadFile(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset file: %w", err)
	}

	var raw []filePreset
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse preset file %s: %w", path, err)
	}

	presets := make([]Preset, 0, len(raw))
	for i, fp := range raw {
		if fp.Key == "" || fp.Name == "" {
			return nil, fmt.Errorf("preset %d in %s: key and name are required", i+1, path)
		}
		presets = append(presets, Preset{
			Key:     fp.Key,
			Name:    fp.Name,
			Invoice: fp.Invoice.toModel(),
			Options: fp.Options,
		})
	}
	return presets, nil
}

func (fi fileInvoice) toModel() model.Invoice {
	items := make([]model.InvoiceItem, 0, len(fi.Items))
	for _, item := range fi.Items {
		items = append(items, model.InvoiceItem{
			Description: item.Description,
			Quantity:    dec.FromFloat(item.Quantity),
			UnitPrice:   dec.FromFloat(item.UnitPrice),
			TaxRate:     dec.FromFloat(item.TaxRate),
		})
	}
	return model.Invoice{
		From:          model.Contact(fi.From),
		To:            model.Contact(fi.To),
		InvoiceNumber: fi.InvoiceNumber,
		InvoiceDate:   fi.InvoiceDate,
		DueDate:       fi.DueDate,
		Currency:      fi.Currency,
		Items:         items,
		Discount:      dec.FromFloat(fi.Discount),
		Notes:         fi.Notes,
		Terms:         fi.Terms,
	}
}
