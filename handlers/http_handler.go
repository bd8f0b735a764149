// Package handlers provides HTTP request handlers for the medication API endpoints.
// This file implements the HTTPHandler interface with dependency injection.
package handlers

import (
	"net/http"
	"runtime"
	"strings"

	"github.com/almroth/fasskollen/interfaces"
	"github.com/almroth/fasskollen/logging"
	"github.com/almroth/fasskollen/medications"
	"github.com/almroth/fasskollen/metrics"
	"github.com/almroth/fasskollen/report"
	"github.com/go-chi/chi/v5"
)

const apiVersion = "1.0"

// Compile-time check that HTTPHandlerImpl implements interfaces.HTTPHandler
var _ interfaces.HTTPHandler = (*HTTPHandlerImpl)(nil)

// HTTPHandlerImpl implements the interfaces.HTTPHandler interface
type HTTPHandlerImpl struct {
	catalog   interfaces.Catalog
	validator interfaces.QueryValidator
	health    interfaces.HealthChecker
}

// NewHTTPHandler creates a new HTTP handler with injected dependencies
func NewHTTPHandler(catalog interfaces.Catalog, validator interfaces.QueryValidator, health interfaces.HealthChecker) interfaces.HTTPHandler {
	return &HTTPHandlerImpl{
		catalog:   catalog,
		validator: validator,
		health:    health,
	}
}

// ServeHTTP implements the http.Handler interface
func (h *HTTPHandlerImpl) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// This is a placeholder - the actual routing is handled by chi
	http.Error(w, "Not implemented", http.StatusNotImplemented)
}

// ResolveResponse is the envelope returned by the resolve endpoint. A miss is
// a normal outcome: matched stays false and a fallback search URL is included
// so clients can hand the query over to FASS.
type ResolveResponse struct {
	Query       string                `json:"query"`
	Normalized  string                `json:"normalized"`
	Matched     bool                  `json:"matched"`
	Tier        medications.MatchTier `json:"tier"`
	Record      *medications.Record   `json:"record,omitempty"`
	FallbackURL string                `json:"fallback_url,omitempty"`
}

// HealthResponse defines the structure for consistent JSON ordering
type HealthResponse struct {
	Status string         `json:"status"`
	Data   map[string]any `json:"data"`
	System map[string]any `json:"system"`
}

// ServeIndex returns a JSON description of the service and its endpoints
func (h *HTTPHandlerImpl) ServeIndex(w http.ResponseWriter, r *http.Request) {
	index := map[string]any{
		"service":     "fasskollen",
		"version":     apiVersion,
		"description": "Static lookup service for common Swedish medications",
		"records":     h.catalog.Table().Len(),
		"fingerprint": h.catalog.Fingerprint(),
		"endpoints": map[string]string{
			"GET /medications":       "All medication records",
			"GET /medications/{key}": "Single record by canonical key",
			"GET /resolve/{query}":   "Resolve a name to a record, with FASS fallback",
			"GET /atc/{code}":        "Records matching an ATC code",
			"GET /report/{query}":    "Markdown report for a query",
			"GET /health":            "Service health",
			"GET /metrics":           "Prometheus metrics",
		},
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	RespondWithJSON(w, r, http.StatusOK, index)
}

// ServeMedications returns all medication records. The table is compiled in,
// so the response carries a strong ETag derived from the table fingerprint
// and clients holding a current copy get 304 back.
func (h *HTTPHandlerImpl) ServeMedications(w http.ResponseWriter, r *http.Request) {
	etag := `"` + h.catalog.Fingerprint() + `"`

	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, max-age=86400")

	if match := r.Header.Get("If-None-Match"); match != "" && strings.Contains(match, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, h.catalog.Records())
}

// ServeMedicationByKey returns a single record by its canonical key
func (h *HTTPHandlerImpl) ServeMedicationByKey(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	if err := h.validator.ValidateQuery(key); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	// Keys are canonical lowercase, so case differences in the URL are forgiven
	rec, exists := h.catalog.Table().Lookup(medications.Normalize(key))
	if !exists {
		RespondWithError(w, r, http.StatusNotFound, "Medication not found")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, rec)
}

// ResolveMedication resolves a free-form name to a record. Misses are data,
// not errors: the response always comes back 200 with matched=false and a
// FASS search URL when nothing in the table fits.
func (h *HTTPHandlerImpl) ResolveMedication(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")

	if err := h.validator.ValidateQuery(query); err != nil {
		logging.Warn("Unusual user input", "query", query)
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	rec, tier, matched := h.catalog.Resolve(query)
	metrics.LookupTotals.WithLabelValues(tier.String()).Inc()

	response := ResolveResponse{
		Query:      query,
		Normalized: medications.Normalize(query),
		Matched:    matched,
		Tier:       tier,
		Record:     rec,
	}
	if !matched {
		response.FallbackURL = medications.SearchURL(query)
	}

	RespondWithJSON(w, r, http.StatusOK, response)
}

// ServeMedicationsByATC returns all records carrying the given ATC code
func (h *HTTPHandlerImpl) ServeMedicationsByATC(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	canonical, err := h.validator.ValidateATC(code)
	if err != nil {
		logging.Warn("Unusual user input", "atc", code)
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	results := h.catalog.Table().ByATC(canonical)
	if len(results) == 0 {
		RespondWithError(w, r, http.StatusNotFound, "No medications found for ATC code")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, results)
}

// ServeReport renders the Markdown report for a query, using the same
// renderer as the command line output
func (h *HTTPHandlerImpl) ServeReport(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")

	if err := h.validator.ValidateQuery(query); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	rec, tier, matched := h.catalog.Resolve(query)
	metrics.LookupTotals.WithLabelValues(tier.String()).Inc()

	var markdown string
	if matched {
		markdown = report.RenderRecord(rec, medications.SearchURL(query))
	} else {
		markdown = report.RenderNotFound(query, medications.SearchURL(query))
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(markdown)); err != nil {
		logging.Error("Failed to write report response", "error", err)
	}
}

// HealthCheck returns server health information
func (h *HTTPHandlerImpl) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status, data, httpStatus := h.health.HealthCheck()

	// Get memory statistics
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status: status,
		Data:   data,
		System: map[string]any{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       int(m.Alloc / 1024 / 1024),
				"total_alloc_mb": int(m.TotalAlloc / 1024 / 1024),
				"sys_mb":         int(m.Sys / 1024 / 1024),
				"num_gc":         m.NumGC,
			},
		},
	}

	RespondWithJSON(w, r, httpStatus, response)
}
