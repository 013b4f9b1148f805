package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/precastlab/qcradial/pkg/chart"
	"github.com/precastlab/qcradial/pkg/errors"
)

const sampleConfig = `
[chart]
width = 600
height = 600
theme = "dark"
series_order = ["approved", "reworked", "rejected"]

[backend]
endpoint = "https://admin.example.com/api/qc/observations"
auth_token = "secret"

[cache]
backend = "redis"
redis_addr = "localhost:6379"

[server]
addr = ":9090"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Chart.Width != 600 || cfg.Chart.Theme != "dark" {
		t.Errorf("chart section = %+v", cfg.Chart)
	}
	if cfg.Backend.Endpoint != "https://admin.example.com/api/qc/observations" {
		t.Errorf("endpoint = %q", cfg.Backend.Endpoint)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.RedisAddr != "localhost:6379" {
		t.Errorf("cache section = %+v", cfg.Cache)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("server addr = %q", cfg.Server.Addr)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeConfig(t, "[chart\nwidth ="))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func TestChartOptions(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatal(err)
	}

	opts := cfg.ChartOptions()
	if opts.Width != 600 || opts.Theme != chart.ThemeDark {
		t.Errorf("ChartOptions() = %+v", opts)
	}
	if len(opts.SeriesOrder) != 3 || opts.SeriesOrder[0] != "approved" {
		t.Errorf("SeriesOrder = %v", opts.SeriesOrder)
	}
}
