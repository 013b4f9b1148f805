package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/precastlab/qcradial/pkg/cache"
	"github.com/precastlab/qcradial/pkg/chart"
	"github.com/precastlab/qcradial/pkg/chart/layout"
	"github.com/precastlab/qcradial/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete fetch → figure → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Fetch
	fetchStart := time.Now()
	obs, fetchHit, err := r.FetchWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	result.Observations = obs
	result.Stats.FetchTime = time.Since(fetchStart)
	result.Stats.ObservationCount = len(obs)
	result.CacheInfo.FetchHit = fetchHit

	// Compute data hash for cache keys and API responses
	if data, err := json.Marshal(obs); err == nil {
		result.DataHash = cache.Hash(data)
	}

	r.Logger.Info("fetched observations",
		"count", len(obs),
		"duration", result.Stats.FetchTime)

	// Stage 2: Figure
	figureStart := time.Now()
	fig, figureHit, err := r.BuildFigureWithCacheInfo(ctx, obs, opts)
	if err != nil {
		return nil, fmt.Errorf("figure: %w", err)
	}
	result.Figure = fig
	result.Stats.FigureTime = time.Since(figureStart)
	result.Stats.SectorCount = len(fig.Sectors)
	result.Stats.DroppedCount = fig.Dropped
	result.CacheInfo.FigureHit = figureHit

	if data, err := json.Marshal(fig); err == nil {
		result.FigureHash = cache.Hash(data)
	}

	r.Logger.Info("computed figure",
		"sectors", len(fig.Sectors),
		"categories", len(fig.Categories),
		"duration", result.Stats.FigureTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, fig, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// FetchWithCacheInfo retrieves observations with caching and returns cache hit info.
func (r *Runner) FetchWithCacheInfo(ctx context.Context, opts Options) ([]chart.Observation, bool, error) {
	if err := opts.ValidateForFetch(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	src := opts.newSource()
	cacheKey := r.Keyer.ObservationKey(src.Name(), opts.ObservationKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var obs []chart.Observation
			if err := json.Unmarshal(data, &obs); err == nil {
				observability.Cache().OnCacheHit(ctx, "observations")
				return obs, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, "observations")
	}

	// Fetch
	observability.Pipeline().OnFetchStart(ctx, src.Name())
	start := time.Now()
	obs, err := src.Fetch(ctx)
	observability.Pipeline().OnFetchComplete(ctx, src.Name(), len(obs), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if data, err := json.Marshal(obs); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLObservations)
		observability.Cache().OnCacheSet(ctx, "observations", len(data))
	}

	return obs, false, nil // Cache miss
}

// Fetch is a convenience wrapper that calls FetchWithCacheInfo and discards the cache hit info.
func (r *Runner) Fetch(ctx context.Context, opts Options) ([]chart.Observation, error) {
	obs, _, err := r.FetchWithCacheInfo(ctx, opts)
	return obs, err
}

// BuildFigureWithCacheInfo computes the scene graph with caching and returns cache hit info.
func (r *Runner) BuildFigureWithCacheInfo(ctx context.Context, obs []chart.Observation, opts Options) (layout.Figure, bool, error) {
	if err := opts.Chart.ValidateAndSetDefaults(); err != nil {
		return layout.Figure{}, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from observation content
	data, _ := json.Marshal(obs)
	dataHash := cache.Hash(data)
	cacheKey := r.Keyer.FigureKey(dataHash, opts.FigureKeyOpts())

	// Try cache first
	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		var cached layout.Figure
		if err := json.Unmarshal(data, &cached); err == nil {
			observability.Cache().OnCacheHit(ctx, "figure")
			return cached, true, nil // Cache hit
		}
		// If deserialization fails, fall through to recompute
	}
	observability.Cache().OnCacheMiss(ctx, "figure")

	// Build figure
	observability.Pipeline().OnFigureStart(ctx, len(obs))
	start := time.Now()
	fig, err := layout.Build(obs, opts.Chart)
	observability.Pipeline().OnFigureComplete(ctx, len(fig.Sectors), time.Since(start), err)
	if err != nil {
		return layout.Figure{}, false, err
	}

	// Cache the result
	if data, err := json.Marshal(fig); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLFigure)
		observability.Cache().OnCacheSet(ctx, "figure", len(data))
	}

	return fig, false, nil // Cache miss
}

// BuildFigure is a convenience wrapper that calls BuildFigureWithCacheInfo and discards the cache hit info.
func (r *Runner) BuildFigure(ctx context.Context, obs []chart.Observation, opts Options) (layout.Figure, error) {
	fig, _, err := r.BuildFigureWithCacheInfo(ctx, obs, opts)
	return fig, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, fig layout.Figure, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from figure data
	figData, err := json.Marshal(fig)
	if err != nil {
		return nil, false, fmt.Errorf("serialize figure for cache key: %w", err)
	}
	figureHash := cache.Hash(figData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(figureHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifacts")
		return artifacts, true, nil // All artifacts from cache
	}
	observability.Cache().OnCacheMiss(ctx, "artifacts")

	// Render all formats
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := RenderFigure(fig, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(figureHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact:"+format, len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, fig layout.Figure, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, fig, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
