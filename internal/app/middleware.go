package app

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/klokku/productivity/internal/metrics"
	log "github.com/sirupsen/logrus"
)

const RequestIdHeader = "X-Request-Id"

type requestIdKey struct{}

// RequestId returns the ID assigned to the request by the middleware, or an
// empty string.
func RequestId(ctx context.Context) string {
	id, _ := ctx.Value(requestIdKey{}).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router) {

	// Assign a request ID, propagate it in the context and the response
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			requestId := req.Header.Get(RequestIdHeader)
			if _, err := uuid.Parse(requestId); err != nil {
				requestId = uuid.NewString()
			}
			w.Header().Set(RequestIdHeader, requestId)
			ctx := context.WithValue(req.Context(), requestIdKey{}, requestId)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})

	// Access log and request metrics
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			started := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, req)

			route := req.URL.Path
			if current := mux.CurrentRoute(req); current != nil {
				if template, err := current.GetPathTemplate(); err == nil {
					route = template
				}
			}
			elapsed := time.Since(started)
			metrics.RequestsTotal.WithLabelValues(req.Method, route, strconv.Itoa(recorder.status)).Inc()
			metrics.RequestDuration.WithLabelValues(req.Method, route).Observe(elapsed.Seconds())

			log.WithFields(log.Fields{
				"requestId": RequestId(req.Context()),
				"method":    req.Method,
				"path":      req.URL.Path,
				"status":    recorder.status,
				"duration":  elapsed,
			}).Debug("Handled request")
		})
	})
}
