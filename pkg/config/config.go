// Package config loads qcradial settings from a TOML file. The CLI reads
// the file once at startup; flags override anything set here, so the file
// only carries deployment defaults (backend endpoint, cache backend, chart
// geometry).
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/precastlab/qcradial/pkg/chart"
	"github.com/precastlab/qcradial/pkg/errors"
)

// Config is the top-level configuration file layout.
type Config struct {
	Chart   ChartConfig   `toml:"chart"`
	Backend BackendConfig `toml:"backend"`
	Cache   CacheConfig   `toml:"cache"`
	Server  ServerConfig  `toml:"server"`
}

// ChartConfig carries default chart options.
type ChartConfig struct {
	Width               float64  `toml:"width"`
	Height              float64  `toml:"height"`
	InnerRadiusFraction float64  `toml:"inner_radius_fraction"`
	CategoryPadding     float64  `toml:"category_padding"`
	PadAngle            float64  `toml:"pad_angle"`
	TickCount           int      `toml:"tick_count"`
	Theme               string   `toml:"theme"`
	Palette             []string `toml:"palette"`
	SeriesOrder         []string `toml:"series_order"`
}

// BackendConfig points at the admin backend's observation feed.
type BackendConfig struct {
	Endpoint  string `toml:"endpoint"`
	AuthToken string `toml:"auth_token"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	// Backend is "file", "redis" or "none". Empty means "file".
	Backend string `toml:"backend"`

	// Dir is the file cache directory. Empty means the default under the
	// user cache dir.
	Dir string `toml:"dir"`

	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// ServerConfig carries HTTP server settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// DefaultPath returns the default config file location,
// $XDG_CONFIG_HOME/qcradial/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "qcradial", "config.toml"), nil
}

// Load reads the config file at path. If path is empty the default
// location is used; a missing file at the default location yields a zero
// Config without error, while a missing explicit path is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Config{}, nil
		}
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config file %s", path)
	}
	return cfg, nil
}

// ChartOptions converts the chart section into chart.Options.
func (c Config) ChartOptions() chart.Options {
	return chart.Options{
		Width:               c.Chart.Width,
		Height:              c.Chart.Height,
		InnerRadiusFraction: c.Chart.InnerRadiusFraction,
		CategoryPadding:     c.Chart.CategoryPadding,
		PadAngle:            c.Chart.PadAngle,
		TickCount:           c.Chart.TickCount,
		Theme:               c.Chart.Theme,
		Palette:             c.Chart.Palette,
		SeriesOrder:         c.Chart.SeriesOrder,
	}
}
