package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/brand-auditor/internal/audit"
	"github.com/jonathan/brand-auditor/internal/db"
	"github.com/jonathan/brand-auditor/internal/types"
)

// CreateAuditRequest is the payload for POST /kits/{id}/audits.
type CreateAuditRequest struct {
	Asset     *types.VisualAsset `json:"asset" validate:"required"`
	Tolerance float64            `json:"tolerance,omitempty" validate:"gte=0"`
}

// AuditRunResponse carries one audit run with its results, if completed.
type AuditRunResponse struct {
	ID          uuid.UUID           `json:"id"`
	KitID       uuid.UUID           `json:"kit_id"`
	AssetName   string              `json:"asset_name"`
	Status      string              `json:"status"`
	Results     []types.AuditResult `json:"results,omitempty"`
	CreatedAt   string              `json:"created_at"`             // ISO 8601 string
	CompletedAt *string             `json:"completed_at,omitempty"` // ISO 8601 string
}

// handleCreateAudit runs every compliance check for one asset against a stored kit
func (s *Server) handleCreateAudit(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	kitID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid kit ID")
		return
	}

	var req CreateAuditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	brandKit, err := s.db.GetBrandKit(r.Context(), kitID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if brandKit == nil {
		s.errorResponse(w, http.StatusNotFound, "Brand kit not found")
		return
	}

	runID, err := s.db.CreateAuditRun(r.Context(), kitID, req.Asset.Name)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	opts := audit.DefaultOptions()
	if req.Tolerance > 0 {
		opts.Tolerance = req.Tolerance
	}

	results, err := audit.Audit(req.Asset, brandKit, opts)
	if err != nil {
		if failErr := s.db.FailAuditRun(r.Context(), runID, err); failErr != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+failErr.Error())
			return
		}
		var inputErr *audit.AuditInputError
		if errors.As(err, &inputErr) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Audit failed: "+err.Error())
		return
	}

	if err := s.db.SaveAuditResults(r.Context(), runID, results); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	s.jsonResponse(w, http.StatusCreated, AuditRunResponse{
		ID:          runID,
		KitID:       kitID,
		AssetName:   req.Asset.Name,
		Status:      db.RunStatusCompleted,
		Results:     results,
		CreatedAt:   now,
		CompletedAt: &now,
	})
}

// handleGetAuditRun retrieves an audit run by its ID
func (s *Server) handleGetAuditRun(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	runID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid audit run ID")
		return
	}

	run, err := s.db.GetAuditRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if run == nil {
		s.errorResponse(w, http.StatusNotFound, "Audit run not found")
		return
	}

	response, err := convertAuditRunToResponse(run, true)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to decode stored results: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleListAuditRuns lists audit runs for a brand kit
func (s *Server) handleListAuditRuns(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	kitID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid kit ID")
		return
	}

	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	runs, err := s.db.ListAuditRuns(r.Context(), kitID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	// Results are omitted from list responses
	responses := make([]AuditRunResponse, len(runs))
	for i, run := range runs {
		resp, err := convertAuditRunToResponse(&run, false)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to decode stored results: "+err.Error())
			return
		}
		responses[i] = resp
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"runs":  responses,
		"count": len(responses),
	})
}

// convertAuditRunToResponse converts a db.AuditRun to AuditRunResponse
func convertAuditRunToResponse(run *db.AuditRun, includeResults bool) (AuditRunResponse, error) {
	response := AuditRunResponse{
		ID:        run.ID,
		KitID:     run.KitID,
		AssetName: run.AssetName,
		Status:    run.Status,
		CreatedAt: run.CreatedAt.Format(time.RFC3339),
	}

	if run.CompletedAt != nil {
		completedAt := run.CompletedAt.Format(time.RFC3339)
		response.CompletedAt = &completedAt
	}

	if includeResults && len(run.Results) > 0 {
		var results []types.AuditResult
		if err := json.Unmarshal(run.Results, &results); err != nil {
			return AuditRunResponse{}, err
		}
		response.Results = results
	}

	return response, nil
}
