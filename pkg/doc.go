// Package pkg provides the core libraries for qcradial chart generation.
//
// # Overview
//
// qcradial turns quality-control observations from a precast-concrete
// plant into radial stacked bar charts. Each inspection stage (mold check,
// reinforcement, curing, surface finish) becomes an angular band, and the
// inspection outcomes (approved, reworked, rejected) stack outward within
// it. The pkg directory is organized into five main areas:
//
//  1. [chart] - Domain logic (normalization, stacking, scales, layout, rendering)
//  2. [source] - Observation feeds (admin backend HTTP endpoint, local files)
//  3. [cache] - Stage caching (file, Redis, null backends)
//  4. [pipeline] - Orchestration (fetch → figure → render)
//  5. [config] - TOML configuration shared by the CLI and the API server
//
// # Architecture
//
// The typical data flow through qcradial:
//
//	Admin Backend / JSON file
//	         ↓
//	    [source] package (fetch observations)
//	         ↓
//	    [chart] package (normalize + stack)
//	         ↓
//	    [chart/layout] package (figure scene graph)
//	         ↓
//	    [chart/sink] package (SVG/PNG/PDF/JSON output)
//
// # Quick Start
//
// Render a chart from the backend feed:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Endpoint: "https://admin.example.com/api/qc/observations",
//	    Formats:  []string{"svg"},
//	})
//
// Supporting packages [errors], [observability], and [buildinfo] carry the
// shared error codes, metric hooks, and version information.
package pkg
