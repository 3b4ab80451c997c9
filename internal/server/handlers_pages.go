package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/brand-auditor/internal/db"
)

// FetchedPageResponse represents a cached guideline page response (without raw_html by default)
type FetchedPageResponse struct {
	ID                 uuid.UUID `json:"id"`
	URL                string    `json:"url"`
	ParsedText         *string   `json:"parsed_text,omitempty"`
	ContentHash        *string   `json:"content_hash,omitempty"`
	HTTPStatus         *int      `json:"http_status,omitempty"`
	FetchStatus        string    `json:"fetch_status"`
	ErrorMessage       *string   `json:"error_message,omitempty"`
	IsPermanentFailure bool      `json:"is_permanent_failure"`
	RetryCount         int       `json:"retry_count"`
	RetryAfter         *string   `json:"retry_after,omitempty"` // ISO 8601 string
	FetchedAt          string    `json:"fetched_at"`            // ISO 8601 string
	ExpiresAt          *string   `json:"expires_at,omitempty"`  // ISO 8601 string
	CreatedAt          string    `json:"created_at"`            // ISO 8601 string
	UpdatedAt          string    `json:"updated_at"`            // ISO 8601 string
	RawHTML            *string   `json:"raw_html,omitempty"`    // Only included if include_html=true
}

// handleGetFetchedPageByURL retrieves a cached guideline page by its URL
func (s *Server) handleGetFetchedPageByURL(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		s.errorResponse(w, http.StatusBadRequest, "url query parameter is required")
		return
	}

	// Check if HTML should be included
	includeHTML := r.URL.Query().Get("include_html") == "true"

	page, err := s.db.GetFetchedPageByURL(r.Context(), url)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if page == nil {
		s.errorResponse(w, http.StatusNotFound, "Fetched page not found")
		return
	}

	// Convert to response model
	response := convertFetchedPageToResponse(page, includeHTML)
	s.jsonResponse(w, http.StatusOK, response)
}

// convertFetchedPageToResponse converts a db.FetchedPage to FetchedPageResponse
func convertFetchedPageToResponse(page *db.FetchedPage, includeHTML bool) FetchedPageResponse {
	response := FetchedPageResponse{
		ID:                 page.ID,
		URL:                page.URL,
		ParsedText:         page.ParsedText,
		ContentHash:        page.ContentHash,
		HTTPStatus:         page.HTTPStatus,
		FetchStatus:        page.FetchStatus,
		ErrorMessage:       page.ErrorMessage,
		IsPermanentFailure: page.IsPermanentFailure,
		RetryCount:         page.RetryCount,
		FetchedAt:          page.FetchedAt.Format(time.RFC3339),
		CreatedAt:          page.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          page.UpdatedAt.Format(time.RFC3339),
	}

	if page.ExpiresAt != nil {
		expiresAt := page.ExpiresAt.Format(time.RFC3339)
		response.ExpiresAt = &expiresAt
	}

	if page.RetryAfter != nil {
		retryAfter := page.RetryAfter.Format(time.RFC3339)
		response.RetryAfter = &retryAfter
	}

	// Only include raw_html if explicitly requested
	if includeHTML {
		response.RawHTML = page.RawHTML
	}

	return response
}
