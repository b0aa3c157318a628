package report

import (
	"strings"
	"testing"

	"github.com/klokku/productivity/pkg/stats"
	"github.com/stretchr/testify/assert"
)

func TestHtmlReportRendererImpl_RenderReport(t *testing.T) {
	tests := []struct {
		name    string
		summary stats.StatsSummary
		want    string
	}{
		{
			name: "three task example",
			summary: stats.StatsSummary{
				ProductiveHours:    1.5,
				NonProductiveHours: 0.5,
				PeakHour:           9,
				PeakHours:          1.5,
				TroughHour:         12,
				TroughHours:        0.5,
			},
			want: "\n<h1>Productivity Report</h1>\n" +
				"<p>Total Productive Time: 1.50 hours</p>\n" +
				"<p>Total Non-Productive Time: 0.50 hours</p>\n" +
				"<p>Most Productive Hour: 9 with 1.50 hours</p>\n" +
				"<p>Least Productive Hour: 12 with 0.50 hours</p>\n",
		},
		{
			name: "rounding and negative durations",
			summary: stats.StatsSummary{
				ProductiveHours:    2.0 / 3,
				NonProductiveHours: -0.25,
				PeakHour:           0,
				PeakHours:          10.006,
				TroughHour:         23,
				TroughHours:        -0.25,
			},
			want: "\n<h1>Productivity Report</h1>\n" +
				"<p>Total Productive Time: 0.67 hours</p>\n" +
				"<p>Total Non-Productive Time: -0.25 hours</p>\n" +
				"<p>Most Productive Hour: 0 with 10.01 hours</p>\n" +
				"<p>Least Productive Hour: 23 with -0.25 hours</p>\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewHtmlReportRenderer().RenderReport(tt.summary)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHtmlReportRendererImpl_RenderReport_Structure(t *testing.T) {
	got := NewHtmlReportRenderer().RenderReport(stats.StatsSummary{ProductiveHours: 1.5, NonProductiveHours: 0.5})

	assert.Equal(t, 1, strings.Count(got, "<h1>"))
	assert.Equal(t, 4, strings.Count(got, "<p>"))
	assert.Contains(t, got, "Total Productive Time: 1.50 hours")
	assert.Contains(t, got, "Total Non-Productive Time: 0.50 hours")
}
