package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/brand-auditor/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHandleCreateAudit_InvalidKitID tests create audit with invalid kit UUID
func TestHandleCreateAudit_InvalidKitID(t *testing.T) {
	s := newTestServer()

	body := `{"asset": {"name": "hero.png"}}`
	req := httptest.NewRequest(http.MethodPost, "/kits/not-a-uuid/audits", bytes.NewBufferString(body))
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleCreateAudit(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "Invalid kit ID")
}

// TestHandleCreateAudit_InvalidJSON tests create audit with invalid JSON body
func TestHandleCreateAudit_InvalidJSON(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/kits/"+uuid.New().String()+"/audits", bytes.NewBufferString("{invalid json}"))
	req.SetPathValue("id", uuid.New().String())
	w := httptest.NewRecorder()

	s.handleCreateAudit(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleCreateAudit_MissingAsset tests create audit without the required asset
func TestHandleCreateAudit_MissingAsset(t *testing.T) {
	s := newTestServer()

	kitID := uuid.New().String()
	req := httptest.NewRequest(http.MethodPost, "/kits/"+kitID+"/audits", bytes.NewBufferString(`{}`))
	req.SetPathValue("id", kitID)
	w := httptest.NewRecorder()

	s.handleCreateAudit(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "Asset")
}

// TestHandleGetAuditRun_InvalidID tests get audit run with invalid UUID
func TestHandleGetAuditRun_InvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/audits/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleGetAuditRun(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleListAuditRuns_InvalidKitID tests list audit runs with invalid kit UUID
func TestHandleListAuditRuns_InvalidKitID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/kits/not-a-uuid/audits", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleListAuditRuns(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleListAuditRuns_InvalidLimit tests list audit runs with invalid limit
func TestHandleListAuditRuns_InvalidLimit(t *testing.T) {
	s := newTestServer()

	kitID := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/kits/"+kitID+"/audits?limit=zero", nil)
	req.SetPathValue("id", kitID)
	w := httptest.NewRecorder()

	s.handleListAuditRuns(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestConvertAuditRunToResponse tests the db.AuditRun conversion
func TestConvertAuditRunToResponse(t *testing.T) {
	completedAt := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	run := &db.AuditRun{
		ID:          uuid.New(),
		KitID:       uuid.New(),
		AssetName:   "hero.png",
		Status:      db.RunStatusCompleted,
		Results:     []byte(`[{"type": "PALETTE", "status": "PASS", "metric": "All 1 detected colors within tolerance"}]`),
		CreatedAt:   completedAt.Add(-time.Minute),
		CompletedAt: &completedAt,
	}

	resp, err := convertAuditRunToResponse(run, true)
	require.NoError(t, err)
	assert.Equal(t, run.ID, resp.ID)
	assert.Equal(t, db.RunStatusCompleted, resp.Status)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "PALETTE", string(resp.Results[0].Type))
	require.NotNil(t, resp.CompletedAt)
	assert.Equal(t, "2025-06-01T12:30:00Z", *resp.CompletedAt)

	// Results omitted when not requested
	resp, err = convertAuditRunToResponse(run, false)
	require.NoError(t, err)
	assert.Nil(t, resp.Results)

	// Malformed stored results surface as an error
	run.Results = []byte(`{not json`)
	_, err = convertAuditRunToResponse(run, true)
	assert.Error(t, err)
}
