// Package source fetches QC observations from their storage backends. The
// admin backend exposes observation feeds over HTTP; local JSON files cover
// offline rendering and tests. All sources return the same normalized
// payload shape so the pipeline never cares where data came from.
package source

import (
	"context"

	"github.com/precastlab/qcradial/pkg/chart"
)

// Source produces the raw observations a chart is built from.
type Source interface {
	// Fetch returns the observation list. The slice is never nil: a
	// backend with no data for the window yields an empty slice.
	Fetch(ctx context.Context) ([]chart.Observation, error)

	// Name identifies the source for logging and cache keys.
	Name() string
}

// payload is the wire format shared by the HTTP backend and local files.
type payload struct {
	Data []chart.Observation `json:"data"`
}
