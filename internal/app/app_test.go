package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/klokku/productivity/internal/config"
	"github.com/klokku/productivity/internal/test_utils"
	"github.com/klokku/productivity/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	application := NewApplicationWithConfig(config.Defaults())
	server := httptest.NewServer(application.Handler())
	t.Cleanup(server.Close)
	return server
}

func TestRoutes_IndexPage(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/")

	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_, err = uuid.Parse(resp.Header.Get(RequestIdHeader))
	assert.NoError(t, err)
}

func TestRoutes_KeepsValidRequestId(t *testing.T) {
	server := newTestServer(t)
	requestId := uuid.NewString()
	req, err := http.NewRequest(http.MethodGet, server.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIdHeader, requestId)

	resp, err := http.DefaultClient.Do(req)

	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, requestId, resp.Header.Get(RequestIdHeader))
}

func TestRoutes_ReportDownload(t *testing.T) {
	server := newTestServer(t)
	upload := test_utils.NewUploadRequest(t, server.URL+"/api/report", "file", "tasks.csv", test_utils.SampleTaskLog)
	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/report", upload.Body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", upload.Header.Get("Content-Type"))

	resp, err := http.DefaultClient.Do(req)

	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, report.ContentType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), report.FileName)
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/report")

	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRoutes_Metrics(t *testing.T) {
	server := newTestServer(t)
	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(server.URL + "/metrics")

	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
