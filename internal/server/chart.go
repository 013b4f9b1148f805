package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/precastlab/qcradial/pkg/errors"
	"github.com/precastlab/qcradial/pkg/pipeline"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

// handleChart returns a handler that runs the pipeline and responds with
// the artifact in the given format.
func (s *Server) handleChart(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := s.optionsFromQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		opts.Formats = []string{format}

		result, err := s.runner.Execute(r.Context(), opts)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}

		data, ok := result.Artifacts[format]
		if !ok {
			writeError(w, http.StatusInternalServerError,
				errors.New(errors.ErrCodeInternal, "artifact missing for format %q", format))
			return
		}

		w.Header().Set("Content-Type", contentTypes[format])
		w.Header().Set("X-Cache-Render", hitLabel(result.CacheInfo.RenderHit))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

// optionsFromQuery builds pipeline options from the base options plus
// query parameter overrides.
func (s *Server) optionsFromQuery(r *http.Request) (pipeline.Options, error) {
	opts := s.base
	opts.Logger = s.logger
	if opts.Endpoint == "" {
		opts.Endpoint = s.endpoint
	}

	q := r.URL.Query()
	if v := q.Get("window"); v != "" {
		opts.Window = v
	}
	if v := q.Get("theme"); v != "" {
		opts.Chart.Theme = v
	}
	if v := q.Get("series-order"); v != "" {
		opts.Chart.SeriesOrder = strings.Split(v, ",")
	}
	if v := q.Get("palette"); v != "" {
		opts.Chart.Palette = strings.Split(v, ",")
	}
	if q.Get("no-tooltips") == "true" {
		opts.NoTooltips = true
	}
	if q.Get("refresh") == "true" {
		opts.Refresh = true
	}

	floats := map[string]*float64{
		"width":   &opts.Chart.Width,
		"height":  &opts.Chart.Height,
		"inner":   &opts.Chart.InnerRadiusFraction,
		"padding": &opts.Chart.CategoryPadding,
		"pad":     &opts.Chart.PadAngle,
	}
	for name, dst := range floats {
		v := q.Get(name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidOption, "invalid %s: %q", name, v)
		}
		*dst = f
	}

	if v := q.Get("ticks"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidOption, "invalid ticks: %q", v)
		}
		opts.Chart.TickCount = n
	}

	return opts, nil
}

// statusFor maps pipeline error codes onto HTTP statuses.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidTheme, errors.ErrCodeInvalidOption:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func hitLabel(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

// errorEnvelope is the JSON error response shape.
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, errorEnvelope{Error: errorBody{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}
