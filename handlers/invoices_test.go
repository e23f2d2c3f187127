package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slate/database"
)

func TestCreateAndListInvoices(t *testing.T) {
	r := newTestRouter(database.NewMemStore())

	id := createOK(t, r, "/api/invoices", map[string]any{
		"client_id":  "c1",
		"project_id": "p1",
		"number":     "INV-001",
		"currency":   "EUR",
		"items": []map[string]any{
			{"description": "Editing", "quantity": 12, "unit_price": 85},
			{"description": "Color grade", "quantity": 4, "unit_price": 110},
		},
		"tax_rate": 0.2,
	})

	w := doRequest(t, r, http.MethodGet, "/api/invoices", nil)
	require.Equal(t, http.StatusOK, w.Code)

	invoices := decodeList(t, w)
	require.Len(t, invoices, 1)

	got := invoices[0]
	assert.Equal(t, id, got["id"])
	assert.Equal(t, "c1", got["client_id"])
	assert.Equal(t, "INV-001", got["number"])
	assert.Equal(t, "EUR", got["currency"])
	assert.Equal(t, 0.2, got["tax_rate"])
	assert.Equal(t, "draft", got["status"], "unset status defaults to draft")

	items, ok := got["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	first, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Editing", first["description"])
	assert.Equal(t, float64(12), first["quantity"])
	assert.Equal(t, float64(85), first["unit_price"])
}

func TestCreateInvoice_Defaults(t *testing.T) {
	r := newTestRouter(database.NewMemStore())

	createOK(t, r, "/api/invoices", map[string]any{"client_id": "c1"})

	w := doRequest(t, r, http.MethodGet, "/api/invoices", nil)
	got := decodeList(t, w)[0]

	assert.Equal(t, "USD", got["currency"])
	assert.Equal(t, "draft", got["status"])
	assert.Equal(t, []any{}, got["items"])
	assert.Equal(t, float64(0), got["tax_rate"])
	assert.Equal(t, float64(0), got["discount"])
}

func TestCreateInvoice_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"missing client_id", map[string]any{"number": "INV-001"}},
		{"tax_rate above 1", map[string]any{"client_id": "c1", "tax_rate": 1.5}},
		{"negative discount", map[string]any{"client_id": "c1", "discount": -10}},
		{"currency outside enum", map[string]any{"client_id": "c1", "currency": "JPY"}},
		{"item with negative quantity", map[string]any{
			"client_id": "c1",
			"items":     []map[string]any{{"description": "Editing", "quantity": -1, "unit_price": 85}},
		}},
		{"item missing description", map[string]any{
			"client_id": "c1",
			"items":     []map[string]any{{"quantity": 1, "unit_price": 85}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(database.NewMemStore())

			w := doRequest(t, r, http.MethodPost, "/api/invoices", tt.payload)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

			w = doRequest(t, r, http.MethodGet, "/api/invoices", nil)
			assert.Empty(t, decodeList(t, w))
		})
	}
}

// client_id and project_id filters combine as an AND.
func TestListInvoices_CombinedFilter(t *testing.T) {
	r := newTestRouter(database.NewMemStore())

	createOK(t, r, "/api/invoices", map[string]any{"client_id": "a", "project_id": "b", "number": "INV-1"})
	createOK(t, r, "/api/invoices", map[string]any{"client_id": "a", "project_id": "x", "number": "INV-2"})
	createOK(t, r, "/api/invoices", map[string]any{"client_id": "y", "project_id": "b", "number": "INV-3"})

	w := doRequest(t, r, http.MethodGet, "/api/invoices?client_id=a&project_id=b", nil)
	require.Equal(t, http.StatusOK, w.Code)

	invoices := decodeList(t, w)
	require.Len(t, invoices, 1)
	assert.Equal(t, "INV-1", invoices[0]["number"])

	w = doRequest(t, r, http.MethodGet, "/api/invoices?client_id=a", nil)
	assert.Len(t, decodeList(t, w), 2)

	w = doRequest(t, r, http.MethodGet, "/api/invoices?project_id=b", nil)
	assert.Len(t, decodeList(t, w), 2)

	w = doRequest(t, r, http.MethodGet, "/api/invoices", nil)
	assert.Len(t, decodeList(t, w), 3)
}
