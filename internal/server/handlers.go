package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/ats-scanner/internal/ats"
	"github.com/jonathan/ats-scanner/internal/db"
	"github.com/jonathan/ats-scanner/internal/types"
)

// ListScansResponse represents the response for listing scans
type ListScansResponse struct {
	Scans []db.ScanSummary `json:"scans"`
	Count int              `json:"count"`
	Limit int              `json:"limit"`
}

// handleScan runs a rule-based scan and stores the result.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeScanRequest(w, r)
	if err != nil {
		return
	}

	result := ats.Scan(*req.Resume, req.JobDescription, s.opts)
	s.respondWithResult(w, r, req, result, false)
}

// handleScanAI runs an AI-assisted scan. Requires an API key at startup.
func (s *Server) handleScanAI(w http.ResponseWriter, r *http.Request) {
	if s.analyzer == nil {
		err := &ErrAINotConfigured{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	req, err := s.decodeScanRequest(w, r)
	if err != nil {
		return
	}

	result := s.analyzer.Analyze(r.Context(), *req.Resume, req.JobDescription)
	s.respondWithResult(w, r, req, result, true)
}

// decodeScanRequest parses and validates the request body. On failure the
// error response has already been written.
func (s *Server) decodeScanRequest(w http.ResponseWriter, r *http.Request) (*types.ScanRequest, error) {
	var req types.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		verr := &ErrValidation{Message: "invalid JSON body"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return nil, verr
	}

	if err := req.Validate(); err != nil {
		verr := &ErrValidation{Message: err.Error()}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return nil, verr
	}

	req.Resume.Normalize()
	return &req, nil
}

// respondWithResult persists the scan and writes the response. Persistence
// failures are logged but do not fail the request; the caller still gets
// their result.
func (s *Server) respondWithResult(w http.ResponseWriter, r *http.Request, req *types.ScanRequest, result types.ScanResult, aiAssisted bool) {
	resp := types.ScanResponse{Result: &result}

	if s.db != nil {
		id, err := s.db.SaveScan(r.Context(), *req.Resume, req.JobDescription, result, aiAssisted)
		if err != nil {
			log.Printf("Failed to persist scan: %v", err)
		} else {
			resp.ScanID = id.String()
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGetScan retrieves a stored scan by its ID
func (s *Server) handleGetScan(w http.ResponseWriter, r *http.Request) {
	scanID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid scan ID")
		return
	}

	scan, err := s.db.GetScan(r.Context(), scanID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if scan == nil {
		nfe := &ErrScanNotFound{ScanID: scanID}
		s.errorResponse(w, HTTPStatus(nfe), nfe.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, scan)
}

// handleListScans lists recent scans, newest first
func (s *Server) handleListScans(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", db.DefaultListLimit, db.MaxListLimit)

	scans, err := s.db.ListScans(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListScansResponse{
		Scans: scans,
		Count: len(scans),
		Limit: limit,
	})
}

// handleDeleteScan removes a stored scan
func (s *Server) handleDeleteScan(w http.ResponseWriter, r *http.Request) {
	scanID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid scan ID")
		return
	}

	deleted, err := s.db.DeleteScan(r.Context(), scanID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		nfe := &ErrScanNotFound{ScanID: scanID}
		s.errorResponse(w, HTTPStatus(nfe), nfe.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseQueryInt reads an integer query parameter with a default and an
// optional maximum (0 means unbounded).
func parseQueryInt(r *http.Request, name string, def, max int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return def
	}
	if max > 0 && val > max {
		return max
	}
	return val
}
