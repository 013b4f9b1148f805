// Package pipeline provides the core chart pipeline for qcradial.
//
// This package implements the complete fetch → figure → render pipeline
// that can be used by CLI and API components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Fetch: Retrieve QC observations from the backend or a local file
//  2. Figure: Normalize, stack and lay out the observations into a scene graph
//  3. Render: Encode the figure in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline,
// and each stage's result is cached under a key derived from all of its
// inputs.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Endpoint: "https://admin.example.com/api/qc/observations",
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/precastlab/qcradial/pkg/cache"
	"github.com/precastlab/qcradial/pkg/chart"
	"github.com/precastlab/qcradial/pkg/chart/layout"
	"github.com/precastlab/qcradial/pkg/errors"
	"github.com/precastlab/qcradial/pkg/source"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// DefaultStyle is the default visual style.
const DefaultStyle = "simple"

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	DefaultStyle: true,
}

// DefaultPNGScale is the raster scale factor for PNG output.
const DefaultPNGScale = 2.0

// Options contains all configuration for the chart pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Fetch options
	Endpoint  string `json:"endpoint,omitempty"` // observation feed URL
	Input     string `json:"input,omitempty"`    // local JSON file, overrides Endpoint
	Window    string `json:"window,omitempty"`   // reporting window passed to the backend
	Refresh   bool   `json:"refresh,omitempty"`  // bypass the observation cache
	AuthToken string `json:"-"`                  // bearer token for the backend, never serialized

	// Chart options (geometry, theme, stacking order)
	Chart chart.Options `json:"chart"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Style      string   `json:"style,omitempty"`
	NoTooltips bool     `json:"no_tooltips,omitempty"`
	PNGScale   float64  `json:"png_scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger   `json:"-"`
	Source source.Source `json:"-"` // overrides Endpoint/Input when set

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Observations is the fetched raw data.
	Observations []chart.Observation

	// DataHash is the content hash of the fetched observations.
	DataHash string

	// Figure is the computed scene graph.
	Figure layout.Figure

	// FigureHash is the content hash of the figure.
	FigureHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ObservationCount int
	DroppedCount     int
	SectorCount      int
	FetchTime        time.Duration
	FigureTime       time.Duration
	RenderTime       time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	FetchHit  bool // Whether observations came from cache
	FigureHit bool // Whether the figure came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidOption, "invalid style: %q (must be: simple)", style)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for
// the full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForFetch(); err != nil {
		return err
	}
	if err := o.Chart.ValidateAndSetDefaults(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForFetch checks required fields for fetching observations.
func (o *Options) ValidateForFetch() error {
	if o.Source == nil && o.Endpoint == "" && o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "endpoint or input is required")
	}
	if err := errors.ValidateWindow(o.Window); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if err := o.Chart.ValidateAndSetDefaults(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// newSource resolves the observation source from the options.
func (o *Options) newSource() source.Source {
	if o.Source != nil {
		return o.Source
	}
	if o.Input != "" {
		return source.NewFileSource(o.Input)
	}
	httpOpts := []source.HTTPOption{source.WithWindow(o.Window)}
	if o.AuthToken != "" {
		httpOpts = append(httpOpts, source.WithHeaders(map[string]string{
			"Authorization": "Bearer " + o.AuthToken,
		}))
	}
	return source.NewHTTPSource(o.Endpoint, httpOpts...)
}

// ObservationKeyOpts returns cache key options for observation fetching.
func (o *Options) ObservationKeyOpts() cache.ObservationKeyOpts {
	return cache.ObservationKeyOpts{
		Window: o.Window,
	}
}

// FigureKeyOpts returns cache key options for figure computation.
func (o *Options) FigureKeyOpts() cache.FigureKeyOpts {
	return cache.FigureKeyOpts{
		Width:               o.Chart.Width,
		Height:              o.Chart.Height,
		InnerRadiusFraction: o.Chart.InnerRadiusFraction,
		CategoryPadding:     o.Chart.CategoryPadding,
		PadAngle:            o.Chart.PadAngle,
		TickCount:           o.Chart.TickCount,
		SeriesOrder:         o.Chart.SeriesOrder,
		Theme:               o.Chart.Theme,
		Palette:             o.Chart.Palette,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:  format,
		Theme:   o.Chart.Theme,
		Style:   o.Style,
		Palette: o.Chart.Palette,
	}
}
