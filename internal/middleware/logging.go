package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/white/lead-management/pkg/logger"
	"github.com/white/lead-management/pkg/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// RequestLogger assigns a request id, stores a request-scoped logger in the
// context and writes one access-log line per request.
func RequestLogger(base *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.MustNewUUID()
				r.Header.Set(RequestIDHeader, requestID)
			}
			w.Header().Set(RequestIDHeader, requestID)

			reqLogger := base.With(zap.String("request_id", requestID))
			r = r.WithContext(logger.WithContext(r.Context(), reqLogger))

			rw := wrapResponseWriter(w)
			next.ServeHTTP(rw, r)

			reqLogger.Info("request",
				zap.String("method", r.Method),
				zap.String("route", routeTemplate(r)),
				zap.String("path", r.URL.Path),
				zap.Int("status", rw.statusCode),
				zap.Duration("duration", time.Since(start)))
		})
	}
}

// routeTemplate returns the matched mux path template so labels stay
// bounded, or the raw path when nothing matched
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return r.URL.Path
}
