package pipeline

import (
	"fmt"

	"github.com/precastlab/qcradial/pkg/chart/layout"
	"github.com/precastlab/qcradial/pkg/chart/sink"
)

// RenderFigure encodes a figure in every requested format. The returned
// map is keyed by format name.
func RenderFigure(fig layout.Figure, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	var svgOpts []sink.SVGOption
	if opts.NoTooltips {
		svgOpts = append(svgOpts, sink.WithoutTooltips())
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			artifacts[format] = sink.RenderSVG(fig, svgOpts...)
		case FormatPNG:
			data, err := sink.RenderPNG(fig,
				sink.WithPNGSVGOptions(svgOpts...),
				sink.WithScale(opts.PNGScale))
			if err != nil {
				return nil, fmt.Errorf("render png: %w", err)
			}
			artifacts[format] = data
		case FormatPDF:
			data, err := sink.RenderPDF(fig, sink.WithPDFSVGOptions(svgOpts...))
			if err != nil {
				return nil, fmt.Errorf("render pdf: %w", err)
			}
			artifacts[format] = data
		case FormatJSON:
			data, err := sink.RenderJSON(fig, sink.WithJSONStyle(opts.Style))
			if err != nil {
				return nil, fmt.Errorf("render json: %w", err)
			}
			artifacts[format] = data
		default:
			return nil, fmt.Errorf("invalid format: %q", format)
		}
	}
	return artifacts, nil
}
