package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-playground/internal/server"
)

func newTestServer() *server.Server {
	config := &server.Config{
		Address: ":8080",
	}
	return server.NewServer(config)
}

const validInvoiceJSON = `{
	"from": {"name": "Test Company"},
	"to": {"name": "Test Customer"},
	"invoiceNumber": "INV-001",
	"invoiceDate": "2024-01-15",
	"currency": "USD",
	"items": [
		{"description": "Test Service", "quantity": 1, "unitPrice": 100}
	]
}`

func postJSON(srv *server.Server, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "ok", response["status"])
	assert.NotEmpty(t, response["time"])
}

func TestGenerateEndpoint(t *testing.T) {
	srv := newTestServer()

	w := postJSON(srv, "/api/v1/generate", validInvoiceJSON)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="invoice-INV-001.pdf"`)
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestGenerateEndpoint_WithOptions(t *testing.T) {
	srv := newTestServer()

	body := `{
		"invoice": ` + validInvoiceJSON + `,
		"options": {"layoutStyle": "modern", "brandColor": "#2563eb"}
	}`
	w := postJSON(srv, "/api/v1/generate", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestGenerateEndpoint_EmptyBody(t *testing.T) {
	srv := newTestServer()

	w := postJSON(srv, "/api/v1/generate", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateEndpoint_MalformedJSON(t *testing.T) {
	srv := newTestServer()

	w := postJSON(srv, "/api/v1/generate", "{not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "invalid JSON")
}

func TestGenerateEndpoint_MissingStructure(t *testing.T) {
	srv := newTestServer()

	w := postJSON(srv, "/api/v1/generate", `{"from": {"name": "A"}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "missing required fields (from, to, items)")
}

func TestGenerateEndpoint_InvalidInvoice(t *testing.T) {
	srv := newTestServer()

	// Structurally fine, semantically empty: items array has no entries.
	body := `{
		"from": {"name": "Test Company"},
		"to": {"name": "Test Customer"},
		"invoiceNumber": "INV-001",
		"invoiceDate": "2024-01-15",
		"items": []
	}`
	w := postJSON(srv, "/api/v1/generate", body)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "At least one item is required", response["error"])
}

func TestValidateEndpoint(t *testing.T) {
	srv := newTestServer()

	w := postJSON(srv, "/api/v1/validate", validInvoiceJSON)

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.ValidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Nil(t, response.FirstError)
	require.NotNil(t, response.Report)
	assert.True(t, response.Report.Valid)
	// Advisory only: the missing due date shows up as a warning.
	assert.Contains(t, response.Report.Warnings, "no due date set")
}

func TestValidateEndpoint_Invalid(t *testing.T) {
	srv := newTestServer()

	body := `{
		"from": {"name": ""},
		"to": {"name": "Test Customer"},
		"invoiceNumber": "INV-001",
		"invoiceDate": "2024-01-15",
		"items": [{"description": "", "quantity": 0, "unitPrice": -5}]
	}`
	w := postJSON(srv, "/api/v1/validate", body)

	// Validation findings are payload, not transport failures.
	assert.Equal(t, http.StatusOK, w.Code)

	var response server.ValidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	require.NotNil(t, response.FirstError)
	assert.Equal(t, "From company name is required", *response.FirstError)

	require.NotNil(t, response.Report)
	assert.False(t, response.Report.Valid)
	assert.Contains(t, response.Report.Errors, "Item 1: Description is required")
	assert.Contains(t, response.Report.Errors, "Item 1: Quantity must be greater than 0")
	assert.Contains(t, response.Report.Errors, "Item 1: Unit price cannot be negative")
}

func TestValidateEndpoint_Strict(t *testing.T) {
	srv := newTestServer()

	w := postJSON(srv, "/api/v1/validate?strict=true", validInvoiceJSON)

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.ValidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	// Passes the relaxed gate, fails the strict one.
	assert.Nil(t, response.FirstError)
	require.NotNil(t, response.Report)
	assert.False(t, response.Report.Valid)
	assert.Contains(t, response.Report.Errors, "From address is required")
	assert.Contains(t, response.Report.Errors, "Due date is required")
}

func TestPreviewEndpoint(t *testing.T) {
	srv := newTestServer()

	w := postJSON(srv, "/api/v1/preview", validInvoiceJSON)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	html := w.Body.String()
	assert.Contains(t, html, "INV-001")
	assert.Contains(t, html, "<style>")
}

func TestPreviewEndpoint_OptionsApplied(t *testing.T) {
	srv := newTestServer()

	body := `{
		"invoice": ` + validInvoiceJSON + `,
		"options": {"brandColor": "#2563eb", "labels": {"invoice": "Factura"}},
		"preview": {"theme": "dark"}
	}`
	w := postJSON(srv, "/api/v1/preview", body)

	assert.Equal(t, http.StatusOK, w.Code)
	html := w.Body.String()
	assert.Contains(t, html, "#2563eb")
	assert.Contains(t, html, "Factura INV-001")
	assert.Contains(t, html, "#111827")
}

func TestPreviewEndpoint_InvalidInvoice(t *testing.T) {
	srv := newTestServer()

	body := `{
		"from": {"name": "A"},
		"to": {"name": ""},
		"items": [{"description": "X", "quantity": 1, "unitPrice": 10}]
	}`
	w := postJSON(srv, "/api/v1/preview", body)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestExportEndpoint_CSV(t *testing.T) {
	srv := newTestServer()

	w := postJSON(srv, "/api/v1/export/csv", validInvoiceJSON)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "invoice-INV-001.csv")
	assert.Contains(t, w.Body.String(), "Invoice Number,INV-001")
}

func TestExportEndpoint_JSON(t *testing.T) {
	srv := newTestServer()

	w := postJSON(srv, "/api/v1/export/json", validInvoiceJSON)

	assert.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Totals struct {
			Total string `json:"total"`
		} `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "100", payload.Totals.Total)
}

func TestExportEndpoint_UnknownFormat(t *testing.T) {
	srv := newTestServer()

	w := postJSON(srv, "/api/v1/export/docx", validInvoiceJSON)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBatchEndpoint_Count(t *testing.T) {
	srv := newTestServer()

	w := postJSON(srv, "/api/v1/batch", `{"count": 3, "concurrency": 2}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.BatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, 3, response.Summary.Successful)
	assert.Equal(t, 0, response.Summary.Failed)
	assert.Len(t, response.Files, 3)
	assert.Empty(t, response.Errors)
}

func TestBatchEndpoint_Invoices(t *testing.T) {
	srv := newTestServer()

	body := `{"invoices": [` + validInvoiceJSON + `,` + validInvoiceJSON + `]}`
	w := postJSON(srv, "/api/v1/batch", body)

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.BatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Summary.Successful)
}

func TestBatchEndpoint_NothingToDo(t *testing.T) {
	srv := newTestServer()

	w := postJSON(srv, "/api/v1/batch", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPresetsEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/presets", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Presets []server.PresetInfo `json:"presets"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	require.Len(t, response.Presets, 5)
	assert.Equal(t, "basic", response.Presets[0].Key)
	assert.Equal(t, "Basic Invoice", response.Presets[0].Name)
}

func TestPresetGenerateEndpoint(t *testing.T) {
	srv := newTestServer()

	w := postJSON(srv, "/api/v1/presets/detailed/generate", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestPresetGenerateEndpoint_Unknown(t *testing.T) {
	srv := newTestServer()

	w := postJSON(srv, "/api/v1/presets/nonexistent/generate", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Benchmark tests

func BenchmarkGenerate(b *testing.B) {
	srv := newTestServer()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(validInvoiceJSON))
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
	}
}

func BenchmarkHealth(b *testing.B) {
	srv := newTestServer()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
	}
}
