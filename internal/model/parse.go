package model

import (
	"encoding/json"
)

// Document pairs an invoice with its render options, mirroring the
// complete-configuration JSON the playground editor accepts.
type Document struct {
	Invoice Invoice       `json:"invoice"`
	Options RenderOptions `json:"options"`
}

// ParseInvoice decodes a bare invoice JSON object, checking the
// structure before any field is applied. Malformed input yields a
// *ParseError and no partial invoice.
func ParseInvoice(data []byte) (*Invoice, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, NewParseError("invalid JSON", err)
	}
	if err := checkInvoiceShape(probe); err != nil {
		return nil, err
	}

	var inv Invoice
	if err := json.Unmarshal(data, &inv); err != nil {
		return nil, NewParseError("invalid invoice structure", err)
	}
	return &inv, nil
}

// ParseDocument decodes either a {invoice, options} configuration or a
// bare invoice object. A bare invoice yields a document with zero
// options.
func ParseDocument(data []byte) (*Document, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, NewParseError("invalid JSON", err)
	}

	if _, ok := probe["invoice"]; ok {
		var invProbe map[string]json.RawMessage
		if err := json.Unmarshal(probe["invoice"], &invProbe); err != nil {
			return nil, NewParseError("invalid invoice structure: invoice must be an object", err)
		}
		if err := checkInvoiceShape(invProbe); err != nil {
			return nil, err
		}

		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, NewParseError("invalid invoice structure", err)
		}
		return &doc, nil
	}

	inv, err := ParseInvoice(data)
	if err != nil {
		return nil, err
	}
	return &Document{Invoice: *inv}, nil
}

func checkInvoiceShape(probe map[string]json.RawMessage) error {
	for _, key := range []string{"from", "to", "items"} {
		if _, ok := probe[key]; !ok {
			return NewParseError("invalid invoice structure: missing required fields (from, to, items)", nil)
		}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(probe["items"], &items); err != nil {
		return NewParseError("invalid invoice structure: items must be an array", err)
	}
	return nil
}
