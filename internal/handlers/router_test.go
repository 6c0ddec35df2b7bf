package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/white/lead-management/internal/middleware"
)

func TestRouterFallbacks(t *testing.T) {
	h := newTestStores().router()

	t.Run("unknown path is a json 404", func(t *testing.T) {
		w := doRequest(h, http.MethodGet, "/nope", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.Equal(t, "Endpoint not found", errorBody(t, w).Error)
	})

	t.Run("wrong method is a json 405", func(t *testing.T) {
		w := doRequest(h, http.MethodPatch, "/agents", "")

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, "Method not allowed", errorBody(t, w).Error)
	})

}

func TestRouterRequestID(t *testing.T) {
	s := newTestStores()
	s.reports.On("PipelineCount", mock.Anything).Return(int64(1), nil)
	h := s.router()

	w := doRequest(h, http.MethodGet, "/report/pipeline", "")
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/report/pipeline", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get(middleware.RequestIDHeader))
}

func TestRouterCORS(t *testing.T) {
	h := NewRouter(RouterConfig{
		Agents:         NewAgentHandler(new(MockAgentStore)),
		Leads:          NewLeadHandler(new(MockLeadStore), nil),
		Tags:           NewTagHandler(new(MockTagStore)),
		Comments:       NewCommentHandler(new(MockCommentStore)),
		Reports:        NewReportHandler(new(MockReportStore)),
		AllowedOrigins: []string{"http://localhost:5173"},
	})

	req := httptest.NewRequest(http.MethodOptions, "/leads", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSOptions(t *testing.T) {
	assert.False(t, corsOptions(nil).AllowCredentials)
	assert.Equal(t, []string{"*"}, corsOptions(nil).AllowedOrigins)
	assert.True(t, corsOptions([]string{"https://crm.example.com"}).AllowCredentials)
}

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	NewHealthHandler(stubPinger{}, "1.0.0").GetOverallHealth(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	NewHealthHandler(stubPinger{err: errors.New("no primary")}, "1.0.0").GetOverallHealth(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp HealthResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "no primary", resp.Checks["mongodb"].Error)
}
