package report

import (
	"bytes"
	"embed"
	"encoding/base64"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/klokku/productivity/internal/metrics"
	"github.com/klokku/productivity/internal/rest"
	"github.com/klokku/productivity/pkg/stats"
	log "github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFiles embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFiles, "templates/index.html"))

const timestampDisplayLayout = "2006-01-02 15:04:05"

type taskRow struct {
	Name      string
	StartTime string
	EndTime   string
	Category  string
	Duration  string
}

type pageData struct {
	FileName       string
	Error          *rest.ErrorResponse
	Tasks          []taskRow
	SummaryLines   []string
	Chart          template.HTML
	ReportHref     template.URL
	ReportFileName string
}

type Handler struct {
	statsService   stats.StatsService
	reportRenderer ReportRenderer
	chartRenderer  ChartRenderer
	maxUploadBytes int64
}

func NewHandler(
	statsService stats.StatsService,
	reportRenderer ReportRenderer,
	chartRenderer ChartRenderer,
	maxUploadBytes int64,
) *Handler {
	return &Handler{
		statsService:   statsService,
		reportRenderer: reportRenderer,
		chartRenderer:  chartRenderer,
		maxUploadBytes: maxUploadBytes,
	}
}

// Index shows the upload form and a prompt. Nothing is computed until a file
// is posted.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, http.StatusOK, pageData{})
}

// Upload analyses the posted task log and shows the tasks, the summary, the
// chart and a link to download the report. Errors are shown on the page.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	log.Trace("Analysing task log from upload page")

	file, header, err := rest.OpenUpload(w, r, stats.UploadField, h.maxUploadBytes)
	if err != nil {
		message := "Please choose a CSV file to upload"
		if errors.Is(err, rest.ErrUploadTooLarge) {
			message = "The file is too large"
		}
		h.renderPage(w, http.StatusBadRequest, pageData{
			Error: &rest.ErrorResponse{Error: message, Details: err.Error()},
		})
		return
	}
	defer file.Close()

	analysis, err := h.statsService.Analyze(r.Context(), file)
	if err != nil {
		status, response := stats.ErrorResponseFor(err)
		if status == http.StatusInternalServerError {
			log.Errorf("Failed to analyse task log: %v", err)
		}
		h.renderPage(w, status, pageData{FileName: header.Filename, Error: &response})
		return
	}

	chart, err := h.chartRenderer.RenderChart(analysis.ByCategory, ChartSVG)
	if err != nil {
		h.renderPage(w, http.StatusInternalServerError, pageData{
			FileName: header.Filename,
			Error:    &rest.ErrorResponse{Error: "Unable to draw the chart"},
		})
		return
	}

	report := h.reportRenderer.RenderReport(analysis.Summary)
	metrics.ReportsRendered.WithLabelValues("html").Inc()

	h.renderPage(w, http.StatusOK, pageData{
		FileName:       header.Filename,
		Tasks:          toTaskRows(analysis),
		SummaryLines:   SummaryLines(analysis.Summary),
		Chart:          template.HTML(chart),
		ReportHref:     template.URL("data:text/html;charset=utf-8;base64," + base64.StdEncoding.EncodeToString([]byte(report))),
		ReportFileName: FileName,
	})
}

// DownloadReport godoc
// @Summary Download the productivity report
// @Description Upload a CSV task log and receive productivity_report.html as an attachment
// @Tags Report
// @Accept multipart/form-data
// @Produce html
// @Param file formData file true "Task log CSV"
// @Success 200 {file} text/html
// @Failure 400 {object} rest.ErrorResponse "Invalid task log"
// @Failure 422 {object} rest.ErrorResponse "Task log has no rows"
// @Router /api/report [post]
func (h *Handler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	file, _, err := rest.OpenUpload(w, r, stats.UploadField, h.maxUploadBytes)
	if err != nil {
		rest.WriteUploadError(w, err)
		return
	}
	defer file.Close()

	analysis, err := h.statsService.Analyze(r.Context(), file)
	if err != nil {
		stats.WriteAnalysisError(w, err)
		return
	}

	report := h.reportRenderer.RenderReport(analysis.Summary)
	metrics.ReportsRendered.WithLabelValues("html").Inc()

	w.Header().Set("Content-Type", ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+FileName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(report)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(report)); err != nil {
		log.Errorf("Failed to write report: %v", err)
	}
}

// GetChart godoc
// @Summary Render the category chart
// @Description Upload a CSV task log and receive the time-per-category bar chart
// @Tags Report
// @Accept multipart/form-data
// @Produce png
// @Produce image/svg+xml
// @Param file formData file true "Task log CSV"
// @Param format query string false "png (default) or svg"
// @Success 200 {file} image/png
// @Failure 400 {object} rest.ErrorResponse "Invalid task log or format"
// @Router /api/chart [post]
func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	format, err := ParseChartFormat(r.URL.Query().Get("format"))
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{
			Error:   "Invalid chart format",
			Details: "format must be png or svg",
		})
		return
	}

	file, _, err := rest.OpenUpload(w, r, stats.UploadField, h.maxUploadBytes)
	if err != nil {
		rest.WriteUploadError(w, err)
		return
	}
	defer file.Close()

	analysis, err := h.statsService.Analyze(r.Context(), file)
	if err != nil {
		stats.WriteAnalysisError(w, err)
		return
	}

	chart, err := h.chartRenderer.RenderChart(analysis.ByCategory, format)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(chart); err != nil {
		log.Errorf("Failed to write chart: %v", err)
	}
}

func (h *Handler) renderPage(w http.ResponseWriter, status int, data pageData) {
	var b bytes.Buffer
	if err := pageTemplate.Execute(&b, data); err != nil {
		log.Errorf("Failed to render page: %v", err)
		http.Error(w, "unable to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := b.WriteTo(w); err != nil {
		log.Errorf("Failed to write page: %v", err)
	}
}

func toTaskRows(analysis stats.Analysis) []taskRow {
	rows := make([]taskRow, 0, len(analysis.Records))
	for _, record := range analysis.Records {
		rows = append(rows, taskRow{
			Name:      record.Name,
			StartTime: formatTimestamp(record.StartTime),
			EndTime:   formatTimestamp(record.EndTime),
			Category:  string(record.Category),
			Duration:  strconv.FormatFloat(record.DurationHours, 'f', 2, 64),
		})
	}
	return rows
}

func formatTimestamp(t time.Time) string {
	return t.Format(timestampDisplayLayout)
}
