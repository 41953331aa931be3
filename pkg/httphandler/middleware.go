package httphandler

import (
	"net/http"
	"time"

	// Packages
	uuid "github.com/google/uuid"
	consulta "github.com/mutablelogic/go-consulta"
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	HeaderRequestID = "X-Request-Id"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// statusWriter records the status code written by a handler
type statusWriter struct {
	http.ResponseWriter
	status int
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// LogMiddleware assigns a request identifier, echoes it in the response
// headers and logs each request when it completes. An identifier sent by
// the caller is kept.
func LogMiddleware(logger *zap.Logger) httprouter.HTTPMiddlewareFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Request identifier
			id := r.Header.Get(HeaderRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(HeaderRequestID, id)
			r = r.WithContext(consulta.WithRequestID(r.Context(), id))

			// Serve the request
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next(sw, r)

			// Log the outcome
			logger.Info("request",
				zap.String("request_id", id),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", sw.status),
				zap.Duration("duration", time.Since(start)),
			)
		}
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
