package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/precastlab/qcradial/pkg/errors"
	"github.com/precastlab/qcradial/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
// These options control the data source, chart geometry, and output formats.
type renderOpts struct {
	endpoint    string  // backend observations endpoint URL
	input       string  // local JSON observations file (overrides endpoint)
	output      string  // output file path (or base path for multiple formats)
	window      string  // reporting window passed to the backend (e.g. "7d")
	theme       string  // chart theme: "light" or "dark"
	width       float64 // viewport width in pixels
	height      float64 // viewport height in pixels
	inner       float64 // inner radius as a fraction of the outer radius
	padding     float64 // angular padding between category bands
	padAngle    float64 // corner padding between stacked segments
	ticks       int     // suggested tick ring count
	seriesOrder string  // comma-separated series order for stacking
	palette     string  // comma-separated hex colors overriding the theme palette
	noTooltips  bool    // disable hover tooltips in SVG output
	noCache     bool    // bypass the pipeline cache entirely
	refresh     bool    // force a fresh fetch, ignoring cached observations
}

// newRenderCmd creates the render command for generating charts.
// It fetches observations from the configured endpoint (or a local file)
// and renders them in one or more output formats (SVG, PDF, PNG, JSON).
//
// Default settings come from the config file; flags override individual
// fields. With no config and no flags the chart uses the built-in
// defaults (800x800 light theme, svg output to stdout).
func newRenderCmd() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render QC observations as a radial stacked bar chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			for _, f := range formats {
				if err := pipeline.ValidateFormat(f); err != nil {
					return err
				}
			}
			return runRender(cmd.Context(), formats, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.endpoint, "endpoint", "", "observations endpoint URL (default from config)")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "local observations JSON file instead of the endpoint")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&opts.window, "window", "", "reporting window, e.g. 7d or 30d")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "chart theme: light (default), dark")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "frame width")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "frame height")
	cmd.Flags().Float64Var(&opts.inner, "inner", 0, "inner radius fraction of the outer radius")
	cmd.Flags().Float64Var(&opts.padding, "padding", 0, "angular padding between category bands")
	cmd.Flags().Float64Var(&opts.padAngle, "pad-angle", 0, "corner padding between stacked segments")
	cmd.Flags().IntVar(&opts.ticks, "ticks", 0, "suggested number of tick rings")
	cmd.Flags().StringVar(&opts.seriesOrder, "series-order", "", "comma-separated stacking order, e.g. approved,reworked,rejected")
	cmd.Flags().StringVar(&opts.palette, "palette", "", "comma-separated hex colors overriding the theme palette")
	cmd.Flags().BoolVar(&opts.noTooltips, "no-tooltips", false, "disable hover tooltips in SVG output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the pipeline cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "force a fresh fetch, ignoring cached observations")

	return cmd
}

// buildPipelineOptions merges config file defaults with flag overrides
// into a validated pipeline.Options.
func buildPipelineOptions(formats []string, opts *renderOpts) pipeline.Options {
	p := pipeline.Options{
		Endpoint:   cfg.Backend.Endpoint,
		AuthToken:  cfg.Backend.AuthToken,
		Chart:      cfg.ChartOptions(),
		Formats:    formats,
		NoTooltips: opts.noTooltips,
		Refresh:    opts.refresh,
	}

	if opts.endpoint != "" {
		p.Endpoint = opts.endpoint
	}
	if opts.input != "" {
		p.Input = opts.input
	}
	if opts.window != "" {
		p.Window = opts.window
	}
	if opts.theme != "" {
		p.Chart.Theme = opts.theme
	}
	if opts.width > 0 {
		p.Chart.Width = opts.width
	}
	if opts.height > 0 {
		p.Chart.Height = opts.height
	}
	if opts.inner > 0 {
		p.Chart.InnerRadiusFraction = opts.inner
	}
	if opts.padding > 0 {
		p.Chart.CategoryPadding = opts.padding
	}
	if opts.padAngle > 0 {
		p.Chart.PadAngle = opts.padAngle
	}
	if opts.ticks > 0 {
		p.Chart.TickCount = opts.ticks
	}
	if opts.seriesOrder != "" {
		p.Chart.SeriesOrder = parseList(opts.seriesOrder)
	}
	if opts.palette != "" {
		p.Chart.Palette = parseList(opts.palette)
	}
	return p
}

// runRender executes the full pipeline and writes the resulting artifacts.
func runRender(ctx context.Context, formats []string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	runner, err := newRunner(ctx, cfg, opts.noCache, logger)
	if err != nil {
		return err
	}
	defer runner.Close()

	pipeOpts := buildPipelineOptions(formats, opts)

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, pipeOpts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d observations into %d sectors",
		result.Stats.ObservationCount, result.Stats.SectorCount))
	if result.Stats.DroppedCount > 0 {
		printWarning("Dropped %d invalid observations", result.Stats.DroppedCount)
	}

	if len(formats) == 1 {
		return writeSingle(ctx, result, formats[0], opts.output)
	}
	return writeMultiple(ctx, result, formats, opts.output)
}

// writeSingle writes one artifact. An empty output path means stdout.
func writeSingle(ctx context.Context, result *pipeline.Result, format, output string) error {
	logger := loggerFromContext(ctx)

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(result.Artifacts[format]); err != nil {
		return err
	}
	if output != "" {
		logger.Infof("Generated %s", output)
		printFile(output)
		printStats(result.Stats.ObservationCount, result.Stats.SectorCount, result.CacheInfo.RenderHit)
	}
	return nil
}

// writeMultiple writes each artifact to base.format next to each other.
func writeMultiple(ctx context.Context, result *pipeline.Result, formats []string, output string) error {
	logger := loggerFromContext(ctx)
	base := basePath(output)

	for _, format := range formats {
		path := fmt.Sprintf("%s.%s", base, format)
		out, err := openOutput(path)
		if err != nil {
			return err
		}
		if _, err := out.Write(result.Artifacts[format]); err != nil {
			out.Close()
			return err
		}
		out.Close()
		logger.Infof("Generated %s", path)
		printFile(path)
	}
	printStats(result.Stats.ObservationCount, result.Stats.SectorCount, result.CacheInfo.RenderHit)
	return nil
}

// basePath derives the base output path for multi-format output.
// If output carries a known format extension (.svg, .png, etc.) the
// extension is stripped; an empty output falls back to "chart".
func basePath(output string) string {
	if output == "" {
		return "chart"
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	return os.Create(path)
}
