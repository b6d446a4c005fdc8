package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHealth(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestRoutes_HealthThroughRouter(t *testing.T) {
	s := newTestServer()
	handler := s.withCORS(s.routes())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRoutes_CORSPreflight(t *testing.T) {
	s := newTestServer()
	handler := s.withCORS(s.routes())

	req := httptest.NewRequest(http.MethodOptions, "/scan", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestRoutes_UnknownPath(t *testing.T) {
	s := newTestServer()
	handler := s.routes()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	s := newTestServer()
	handler := s.routes()

	req := httptest.NewRequest(http.MethodGet, "/scan", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrScanNotFound{}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Message: "bad"}))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(&ErrAINotConfigured{}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
