package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/klokku/productivity/internal/metrics"
)

// RegisterRoutes registers the upload page, API endpoints and metrics.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Upload page
	r.HandleFunc("/", deps.ReportHandler.Index).Methods("GET")
	r.HandleFunc("/", deps.ReportHandler.Upload).Methods("POST")

	// Report
	r.HandleFunc("/api/report", deps.ReportHandler.DownloadReport).Methods("POST")
	r.HandleFunc("/api/chart", deps.ReportHandler.GetChart).Methods("POST")

	// Stats
	r.HandleFunc("/api/stats", deps.StatsHandler.GetStats).Methods("POST")

	// Operations
	r.Handle("/metrics", metrics.Handler()).Methods("GET")
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")
}
