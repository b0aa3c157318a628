package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	content := "server:\n" +
		"  port: 9090\n" +
		"  readtimeout: 5s\n" +
		"report:\n" +
		"  output: out/report.html\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("PRODUCTIVITY_UPLOAD_MAXBYTES", "2048")
	t.Setenv("PRODUCTIVITY_REPORT_INPUT", "log.csv")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, int64(2048), cfg.Upload.MaxBytes)
	assert.Equal(t, "log.csv", cfg.Report.Input)
	assert.Equal(t, "out/report.html", cfg.Report.Output)
	assert.Equal(t, 800, cfg.Chart.Width)
}

func TestLoad_InvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))

	_, err := Load(path)

	assert.Error(t, err)
}
