package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/brand-auditor/internal/db"
	"github.com/jonathan/brand-auditor/internal/kit"
	"github.com/jonathan/brand-auditor/internal/types"
)

// CreateKitRequest is the payload for POST /kits. Guidelines carries the
// extracted rule record; Assets optionally supplies a corpus whose dominant
// colors and copy statistics feed synthesis.
type CreateKitRequest struct {
	BrandName   string                     `json:"brand_name" validate:"required"`
	Guidelines  *types.ExtractedGuidelines `json:"guidelines"`
	Assets      []types.Asset              `json:"assets,omitempty"`
	Tolerance   float64                    `json:"tolerance,omitempty" validate:"gte=0"`
	TopColors   int                        `json:"top_colors,omitempty" validate:"gte=0"`
	TopKeywords int                        `json:"top_keywords,omitempty" validate:"gte=0"`
}

// KitResponse wraps a stored brand kit with its identifier.
type KitResponse struct {
	ID  uuid.UUID       `json:"id"`
	Kit *types.BrandKit `json:"kit"`
}

// KitSummary is one entry of a kit listing (without the full kit document).
type KitSummary struct {
	ID        uuid.UUID `json:"id"`
	BrandName string    `json:"brand_name"`
	CreatedAt string    `json:"created_at"` // ISO 8601 string
	UpdatedAt string    `json:"updated_at"` // ISO 8601 string
}

// handleCreateKit synthesizes a brand kit and stores it
func (s *Server) handleCreateKit(w http.ResponseWriter, r *http.Request) {
	var req CreateKitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	opts := kit.DefaultOptions()
	if req.Tolerance > 0 {
		opts.Tolerance = req.Tolerance
	}
	if req.TopColors > 0 {
		opts.TopColors = req.TopColors
	}
	if req.TopKeywords > 0 {
		opts.TopKeywords = req.TopKeywords
	}

	brandKit, err := kit.Generate(req.BrandName, req.Assets, req.Guidelines, opts)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Kit synthesis failed: "+err.Error())
		return
	}

	kitID, err := s.db.SaveBrandKit(r.Context(), brandKit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, KitResponse{ID: kitID, Kit: brandKit})
}

// handleGetKit retrieves a brand kit by its ID
func (s *Server) handleGetKit(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	kitID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid kit ID")
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

	s.jsonResponse(w, http.StatusOK, KitResponse{ID: kitID, Kit: brandKit})
}

// handleGetKitByName retrieves a brand kit by brand name
func (s *Server) handleGetKitByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		s.errorResponse(w, http.StatusBadRequest, "name query parameter is required")
		return
	}

	brandKit, kitID, err := s.db.GetBrandKitByName(r.Context(), name)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if brandKit == nil {
		s.errorResponse(w, http.StatusNotFound, "Brand kit not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, KitResponse{ID: kitID, Kit: brandKit})
}

// handleListKits lists stored brand kits
func (s *Server) handleListKits(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	records, err := s.db.ListBrandKits(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	summaries := make([]KitSummary, len(records))
	for i, rec := range records {
		summaries[i] = convertKitRecordToSummary(&rec)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"kits":  summaries,
		"count": len(summaries),
	})
}

// handleDeleteKit deletes a brand kit and its audit runs
func (s *Server) handleDeleteKit(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	kitID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid kit ID")
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

	if err := s.db.DeleteBrandKit(r.Context(), kitID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// convertKitRecordToSummary converts a db.KitRecord to KitSummary
func convertKitRecordToSummary(rec *db.KitRecord) KitSummary {
	return KitSummary{
		ID:        rec.ID,
		BrandName: rec.BrandName,
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt: rec.UpdatedAt.Format(time.RFC3339),
	}
}
