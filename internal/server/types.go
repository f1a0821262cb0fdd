package server

import (
	"github.com/rezonia/invoice-playground/internal/craft"
	"github.com/rezonia/invoice-playground/internal/model"
)

// ValidateResponse is the response for the validate endpoint.
// FirstError carries the fail-fast validator's message (null for a
// valid invoice); Report is the accumulated rule check.
type ValidateResponse struct {
	FirstError *string       `json:"firstError"`
	Report     *craft.Report `json:"report"`
}

// PreviewRequest adds preview options to a document body
type PreviewRequest struct {
	Preview craft.PreviewOptions `json:"preview"`
}

// BatchRequest is the request body for batch generation. When no
// invoices are given, Count sample invoices are generated instead.
type BatchRequest struct {
	Invoices    []model.Invoice `json:"invoices"`
	Count       int             `json:"count"`
	Concurrency int             `json:"concurrency"`
}

// BatchItemError reports one failed batch item
type BatchItemError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// BatchResponse summarizes a batch run
type BatchResponse struct {
	Summary craft.BatchSummary `json:"summary"`
	Files   []string           `json:"files"`
	Errors  []BatchItemError   `json:"errors,omitempty"`
}

// PresetInfo identifies a selectable preset
type PresetInfo struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}
