package stats

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/klokku/productivity/internal/rest"
	"github.com/klokku/productivity/pkg/task"
	log "github.com/sirupsen/logrus"
)

const UploadField = "file"

type CategoryStatsDTO struct {
	Category string  `json:"category"`
	Hours    float64 `json:"hours"`
}

type HourlyStatsDTO struct {
	Hour  int     `json:"hour"`
	Hours float64 `json:"hours"`
}

type StatsSummaryDTO struct {
	ProductiveHours    float64 `json:"productiveHours"`
	NonProductiveHours float64 `json:"nonProductiveHours"`
	PeakHour           int     `json:"peakHour"`
	PeakHours          float64 `json:"peakHours"`
	TroughHour         int     `json:"troughHour"`
	TroughHours        float64 `json:"troughHours"`
}

type AnalysisDTO struct {
	TaskCount  int                `json:"taskCount"`
	TotalHours float64            `json:"totalHours"`
	ByCategory []CategoryStatsDTO `json:"byCategory"`
	ByHour     []HourlyStatsDTO   `json:"byHour"`
	Summary    StatsSummaryDTO    `json:"summary"`
}

type StatsHandler struct {
	statsService     StatsService
	csvStatsRenderer StatsRenderer
	maxUploadBytes   int64
}

func NewStatsHandler(statsService StatsService, csvStatsRenderer StatsRenderer, maxUploadBytes int64) *StatsHandler {
	return &StatsHandler{statsService, csvStatsRenderer, maxUploadBytes}
}

// GetStats godoc
// @Summary Analyse a task log
// @Description Upload a CSV task log and get the category/hour aggregates and the summary
// @Tags Stats
// @Accept multipart/form-data
// @Produce json
// @Produce text/csv
// @Param file formData file true "Task log CSV"
// @Success 200 {object} AnalysisDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid task log"
// @Failure 422 {object} rest.ErrorResponse "Task log has no rows"
// @Router /api/stats [post]
func (handler *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	log.Trace("Analysing uploaded task log")

	file, _, err := rest.OpenUpload(w, r, UploadField, handler.maxUploadBytes)
	if err != nil {
		rest.WriteUploadError(w, err)
		return
	}
	defer file.Close()

	analysis, err := handler.statsService.Analyze(r.Context(), file)
	if err != nil {
		WriteAnalysisError(w, err)
		return
	}

	if r.Header.Get("Accept") == "text/csv" {
		csv, err := handler.csvStatsRenderer.RenderStats(analysis)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(csv)); err != nil {
			log.Errorf("Failed to write stats csv: %v", err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(convertToJsonResponse(&analysis)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ErrorResponseFor maps pipeline errors to a status code and a user-facing
// message.
func ErrorResponseFor(err error) (int, rest.ErrorResponse) {
	var parseErr *task.ParseError
	switch {
	case errors.As(err, &parseErr):
		return http.StatusBadRequest, rest.ErrorResponse{
			Error:   "Invalid task log",
			Details: parseErr.Error(),
		}
	case errors.Is(err, ErrEmptyDataset):
		return http.StatusUnprocessableEntity, rest.ErrorResponse{
			Error:   "Task log is empty",
			Details: "The uploaded file has a header but no tasks",
		}
	default:
		return http.StatusInternalServerError, rest.ErrorResponse{
			Error: "Unable to analyse task log",
		}
	}
}

func WriteAnalysisError(w http.ResponseWriter, err error) {
	status, response := ErrorResponseFor(err)
	if status == http.StatusInternalServerError {
		log.Errorf("Failed to analyse task log: %v", err)
	} else {
		log.Debugf("Rejected task log: %v", err)
	}
	rest.WriteError(w, status, response)
}

func convertToJsonResponse(analysis *Analysis) *AnalysisDTO {
	byCategory := make([]CategoryStatsDTO, 0, len(analysis.ByCategory))
	for _, categoryStats := range analysis.ByCategory {
		byCategory = append(byCategory, CategoryStatsDTO{
			Category: string(categoryStats.Category),
			Hours:    categoryStats.Hours,
		})
	}

	byHour := make([]HourlyStatsDTO, 0, len(analysis.ByHour))
	for _, hourStats := range analysis.ByHour {
		byHour = append(byHour, HourlyStatsDTO{
			Hour:  hourStats.Hour,
			Hours: hourStats.Hours,
		})
	}

	return &AnalysisDTO{
		TaskCount:  len(analysis.Records),
		TotalHours: analysis.TotalHours,
		ByCategory: byCategory,
		ByHour:     byHour,
		Summary: StatsSummaryDTO{
			ProductiveHours:    analysis.Summary.ProductiveHours,
			NonProductiveHours: analysis.Summary.NonProductiveHours,
			PeakHour:           analysis.Summary.PeakHour,
			PeakHours:          analysis.Summary.PeakHours,
			TroughHour:         analysis.Summary.TroughHour,
			TroughHours:        analysis.Summary.TroughHours,
		},
	}
}
