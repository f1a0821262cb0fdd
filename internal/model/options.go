package model

// LayoutStyle selects a built-in visual template. It never affects
// monetary content.
type LayoutStyle string

const (
	LayoutDefault  LayoutStyle = "default"
	LayoutModern   LayoutStyle = "modern"
	LayoutMinimal  LayoutStyle = "minimal"
	LayoutCreative LayoutStyle = "creative"
)

// KnownLayouts lists the selectable built-in templates
var KnownLayouts = []LayoutStyle{LayoutDefault, LayoutModern, LayoutMinimal, LayoutCreative}

// Valid reports whether the layout names a built-in template
func (s LayoutStyle) Valid() bool {
	switch s {
	case LayoutDefault, LayoutModern, LayoutMinimal, LayoutCreative:
		return true
	}
	return false
}

// Labels maps the fixed display label keys to localized strings
type Labels struct {
	Invoice     string `json:"invoice,omitempty" yaml:"invoice,omitempty"`
	Date        string `json:"date,omitempty" yaml:"date,omitempty"`
	DueDate     string `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	From        string `json:"from,omitempty" yaml:"from,omitempty"`
	To          string `json:"to,omitempty" yaml:"to,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Quantity    string `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	UnitPrice   string `json:"unitPrice,omitempty" yaml:"unitPrice,omitempty"`
	Tax         string `json:"tax,omitempty" yaml:"tax,omitempty"`
	Total       string `json:"total,omitempty" yaml:"total,omitempty"`
	Subtotal    string `json:"subtotal,omitempty" yaml:"subtotal,omitempty"`
	Discount    string `json:"discount,omitempty" yaml:"discount,omitempty"`
	Notes       string `json:"notes,omitempty" yaml:"notes,omitempty"`
	Terms       string `json:"terms,omitempty" yaml:"terms,omitempty"`
}

// DefaultLabels returns the English display labels
func DefaultLabels() Labels {
	return Labels{
		Invoice:     "Invoice",
		Date:        "Date",
		DueDate:     "Due Date",
		From:        "From",
		To:          "To",
		Description: "Description",
		Quantity:    "Quantity",
		UnitPrice:   "Unit Price",
		Tax:         "Tax",
		Total:       "Total",
		Subtotal:    "Subtotal",
		Discount:    "Discount",
		Notes:       "Notes",
		Terms:       "Terms",
	}
}

// Merge overlays non-empty fields of other on top of l
func (l Labels) Merge(other Labels) Labels {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&l.Invoice, other.Invoice)
	merge(&l.Date, other.Date)
	merge(&l.DueDate, other.DueDate)
	merge(&l.From, other.From)
	merge(&l.To, other.To)
	merge(&l.Description, other.Description)
	merge(&l.Quantity, other.Quantity)
	merge(&l.UnitPrice, other.UnitPrice)
	merge(&l.Tax, other.Tax)
	merge(&l.Total, other.Total)
	merge(&l.Subtotal, other.Subtotal)
	merge(&l.Discount, other.Discount)
	merge(&l.Notes, other.Notes)
	merge(&l.Terms, other.Terms)
	return l
}

// RenderOptions controls presentation only. It has no effect on
// validation or totals.
type RenderOptions struct {
	LayoutStyle LayoutStyle `json:"layoutStyle,omitempty" yaml:"layoutStyle,omitempty"`
	BrandColor  string      `json:"brandColor,omitempty" yaml:"brandColor,omitempty"`
	LogoURL     string      `json:"logoUrl,omitempty" yaml:"logoUrl,omitempty"`
	Labels      *Labels     `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// EffectiveLabels resolves the display labels, overlaying any custom
// labels onto the defaults
func (o RenderOptions) EffectiveLabels() Labels {
	labels := DefaultLabels()
	if o.Labels != nil {
		labels = labels.Merge(*o.Labels)
	}
	return labels
}

// EffectiveLayout resolves the layout, falling back to the default
// template for empty or unknown selectors
func (o RenderOptions) EffectiveLayout() LayoutStyle {
	if o.LayoutStyle.Valid() {
		return o.LayoutStyle
	}
	return LayoutDefault
}
