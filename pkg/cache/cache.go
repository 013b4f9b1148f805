// Package cache provides pluggable caching for pipeline stages.
//
// Three backends are included: a file-based cache for CLI usage, a Redis
// cache for server deployments, and a null cache that disables caching.
// Keys are generated by a Keyer so every stage's inputs are hashed into
// the key and stale entries can never be served for changed inputs.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends. Implementations
// must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a time-to-live. A TTL of 0 means the entry
	// never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// Default TTLs per pipeline stage. Observations come from a live QC
// backend and go stale quickly; figures and artifacts are pure functions
// of their inputs and can live much longer.
const (
	TTLObservations = 15 * time.Minute
	TTLFigure       = 24 * time.Hour
	TTLArtifact     = 24 * time.Hour
)

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// ObservationKey generates a key for fetched observation data.
	ObservationKey(endpoint string, opts ObservationKeyOpts) string

	// FigureKey generates a key for a computed figure, keyed by the hash
	// of the normalized observations it was built from.
	FigureKey(dataHash string, opts FigureKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact, keyed by the
	// hash of the figure it was rendered from.
	ArtifactKey(figureHash string, opts ArtifactKeyOpts) string
}

// ObservationKeyOpts are the fetch parameters that affect cached data.
type ObservationKeyOpts struct {
	Window string // reporting window, e.g. "7d" or "4w"
}

// FigureKeyOpts are the layout options that affect the computed figure.
type FigureKeyOpts struct {
	Width               float64
	Height              float64
	InnerRadiusFraction float64
	CategoryPadding     float64
	PadAngle            float64
	TickCount           int
	SeriesOrder         []string
	Theme               string
	Palette             []string
}

// ArtifactKeyOpts are the render options that affect output bytes.
type ArtifactKeyOpts struct {
	Format  string
	Theme   string
	Style   string
	Palette []string
}

// DefaultKeyer generates hierarchical, collision-resistant keys. Keys look
// like "obs:<hash>", "fig:<hash>", "art:<hash>" where the hash covers all
// inputs that influence the cached value.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ObservationKey generates a key for fetched observation data.
func (k *DefaultKeyer) ObservationKey(endpoint string, opts ObservationKeyOpts) string {
	return hashKey("obs", endpoint, opts)
}

// FigureKey generates a key for a computed figure.
func (k *DefaultKeyer) FigureKey(dataHash string, opts FigureKeyOpts) string {
	return hashKey("fig", dataHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(figureHash string, opts ArtifactKeyOpts) string {
	return hashKey("art", figureHash, opts)
}
