package craft

import (
	"strconv"
	"strings"

	"github.com/rezonia/invoice-playground/internal/model"
)

type rgb struct {
	r, g, b int
}

// templateStyle captures the cosmetic differences between the
// built-in templates. Template choice never affects invoice content.
type templateStyle struct {
	titleFont   string
	titleSize   float64
	bodyFont    string
	bodySize    float64
	accent      rgb  // overridden by RenderOptions.BrandColor
	filledTable bool // shaded header row in the items table
	bandedRows  bool // alternating row shading
	titleRule   bool // horizontal rule under the title block
}

var templates = map[model.LayoutStyle]templateStyle{
	model.LayoutDefault: {
		titleFont: "Helvetica", titleSize: 18,
		bodyFont: "Helvetica", bodySize: 10,
		accent:      rgb{51, 51, 51},
		filledTable: true,
	},
	model.LayoutModern: {
		titleFont: "Helvetica", titleSize: 22,
		bodyFont: "Helvetica", bodySize: 10,
		accent:      rgb{37, 99, 235},
		filledTable: true, bandedRows: true,
	},
	model.LayoutMinimal: {
		titleFont: "Times", titleSize: 16,
		bodyFont: "Times", bodySize: 10,
		accent:    rgb{85, 85, 85},
		titleRule: true,
	},
	model.LayoutCreative: {
		titleFont: "Helvetica", titleSize: 24,
		bodyFont: "Helvetica", bodySize: 10,
		accent:      rgb{5, 150, 105},
		filledTable: true, bandedRows: true, titleRule: true,
	},
}

// styleFor resolves the template style for the requested layout and
// applies the brand color override
func styleFor(opts model.RenderOptions) templateStyle {
	style := templates[opts.EffectiveLayout()]
	if c, ok := parseHexColor(opts.BrandColor); ok {
		style.accent = c
	}
	return style
}

// parseHexColor parses #rgb and #rrggbb color strings
func parseHexColor(s string) (rgb, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return rgb{}, false
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return rgb{}, false
	}
	return rgb{int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)}, true
}
