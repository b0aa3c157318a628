package report

import (
	"fmt"
	"strings"

	"github.com/klokku/productivity/pkg/stats"
)

const (
	FileName    = "productivity_report.html"
	ContentType = "text/html; charset=utf-8"
)

type ReportRenderer interface {
	RenderReport(summary stats.StatsSummary) string
}

type HtmlReportRendererImpl struct {
}

func NewHtmlReportRenderer() *HtmlReportRendererImpl {
	return &HtmlReportRendererImpl{}
}

// RenderReport produces the HTML fragment saved as productivity_report.html.
// Durations are printed with two decimals.
func (r *HtmlReportRendererImpl) RenderReport(summary stats.StatsSummary) string {
	var b strings.Builder
	b.WriteString("\n<h1>Productivity Report</h1>\n")
	for _, line := range SummaryLines(summary) {
		fmt.Fprintf(&b, "<p>%s</p>\n", line)
	}
	return b.String()
}

// SummaryLines returns the four summary sentences shared by the report, the
// upload page and the command line output.
func SummaryLines(summary stats.StatsSummary) []string {
	return []string{
		fmt.Sprintf("Total Productive Time: %.2f hours", summary.ProductiveHours),
		fmt.Sprintf("Total Non-Productive Time: %.2f hours", summary.NonProductiveHours),
		fmt.Sprintf("Most Productive Hour: %d with %.2f hours", summary.PeakHour, summary.PeakHours),
		fmt.Sprintf("Least Productive Hour: %d with %.2f hours", summary.TroughHour, summary.TroughHours),
	}
}
