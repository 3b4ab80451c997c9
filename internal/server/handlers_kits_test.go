package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHandleGetKit_InvalidID tests get kit with invalid UUID
func TestHandleGetKit_InvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/kits/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleGetKit(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "Invalid kit ID")
}

// TestHandleGetKit_MissingID tests get kit with missing ID
func TestHandleGetKit_MissingID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/kits/", nil)
	req.SetPathValue("id", "")
	w := httptest.NewRecorder()

	s.handleGetKit(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleGetKitByName_MissingName tests get kit by name with missing name parameter
func TestHandleGetKitByName_MissingName(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/kits/by-name", nil)
	w := httptest.NewRecorder()

	s.handleGetKitByName(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "name query parameter is required")
}

// TestHandleListKits_InvalidLimit tests list kits with invalid limit parameter
func TestHandleListKits_InvalidLimit(t *testing.T) {
	s := newTestServer()

	for _, limit := range []string{"not-a-number", "0", "-5"} {
		req := httptest.NewRequest(http.MethodGet, "/kits?limit="+limit, nil)
		w := httptest.NewRecorder()

		s.handleListKits(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "limit=%s", limit)
	}
}

// TestHandleCreateKit_InvalidJSON tests create kit with invalid JSON
func TestHandleCreateKit_InvalidJSON(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/kits", bytes.NewBufferString("{invalid json}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleCreateKit(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleCreateKit_MissingBrandName tests create kit without required brand name
func TestHandleCreateKit_MissingBrandName(t *testing.T) {
	s := newTestServer()

	body := `{"guidelines": {"primary_colors": [{"name": "Core Aubergine", "hex": "#4A154B"}]}}`
	req := httptest.NewRequest(http.MethodPost, "/kits", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleCreateKit(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "BrandName")
}

// TestHandleCreateKit_NegativeTolerance tests create kit with negative tolerance
func TestHandleCreateKit_NegativeTolerance(t *testing.T) {
	s := newTestServer()

	body := `{"brand_name": "Acme", "tolerance": -1}`
	req := httptest.NewRequest(http.MethodPost, "/kits", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleCreateKit(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleDeleteKit_InvalidID tests delete kit with invalid UUID
func TestHandleDeleteKit_InvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodDelete, "/kits/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleDeleteKit(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
