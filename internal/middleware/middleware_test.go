package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/white/lead-management/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	var ctxLogger *zap.Logger
	router := mux.NewRouter()
	router.Use(RequestLogger(zap.New(core)))
	router.HandleFunc("/leads/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = logger.FromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/leads/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	requestID := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, requestID)
	require.NotNil(t, ctxLogger)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, requestID, fields["request_id"])
	assert.Equal(t, "/leads/{id}", fields["route"])
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
}

func TestRequestLoggerKeepsIncomingID(t *testing.T) {
	router := mux.NewRouter()
	router.Use(RequestLogger(zap.NewNop()))
	router.HandleFunc("/tags", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc-123", r.Header.Get(RequestIDHeader))
	})

	req := httptest.NewRequest(http.MethodGet, "/tags", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestMetrics(t *testing.T) {
	router := mux.NewRouter()
	router.Use(Metrics)
	router.HandleFunc("/agents/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/agents/{id}", "404")
	before := testutil.ToFloat64(counter)

	for i := 0; i < 2; i++ {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/agents/a1", nil))
	}

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestLeadCounters(t *testing.T) {
	created := leadsCreated.WithLabelValues("Closed")
	before := testutil.ToFloat64(created)
	closedBefore := testutil.ToFloat64(leadsClosed)

	RecordLeadCreated("Closed")
	RecordLeadClosed()

	assert.Equal(t, before+1, testutil.ToFloat64(created))
	assert.Equal(t, closedBefore+1, testutil.ToFloat64(leadsClosed))
}

func TestWrapResponseWriterKeepsFirstStatus(t *testing.T) {
	rw := wrapResponseWriter(httptest.NewRecorder())
	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, rw.statusCode)
	assert.Same(t, rw, wrapResponseWriter(rw))
}
