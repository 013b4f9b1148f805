package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/precastlab/qcradial/pkg/cache"
	"github.com/precastlab/qcradial/pkg/chart"
	"github.com/precastlab/qcradial/pkg/errors"
	"github.com/precastlab/qcradial/pkg/observability"
)

const httpTimeout = 10 * time.Second

// HTTPSource fetches observations from the admin backend's observation
// feed. The endpoint returns {"data": [{"category", "series", "value"}]}.
// Transient failures (network errors, 5xx) are retried with exponential
// backoff.
type HTTPSource struct {
	endpoint string
	window   string
	client   *http.Client
	headers  map[string]string
}

// HTTPOption configures an HTTPSource.
type HTTPOption func(*HTTPSource)

// WithWindow scopes the fetch to a reporting window, passed to the backend
// as the "window" query parameter (e.g. "7d" or "4w").
func WithWindow(window string) HTTPOption {
	return func(s *HTTPSource) { s.window = window }
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTPSource) { s.client = c }
}

// WithHeaders sets headers applied to every request, e.g. an auth token.
func WithHeaders(headers map[string]string) HTTPOption {
	return func(s *HTTPSource) { s.headers = headers }
}

// NewHTTPSource creates a source fetching from the given endpoint URL.
func NewHTTPSource(endpoint string, opts ...HTTPOption) *HTTPSource {
	s := &HTTPSource{
		endpoint: endpoint,
		client:   &http.Client{Timeout: httpTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name identifies the source for logging and cache keys.
func (s *HTTPSource) Name() string { return "http:" + s.endpoint }

// Window returns the configured reporting window, if any.
func (s *HTTPSource) Window() string { return s.window }

// Fetch retrieves the observation feed. A 404 or a payload with no data
// yields an empty, non-nil slice so an empty chart still renders; network
// failures and 5xx responses are retried and reported as errors when
// retries are exhausted.
func (s *HTTPSource) Fetch(ctx context.Context) ([]chart.Observation, error) {
	if err := errors.ValidateEndpointURL(s.endpoint); err != nil {
		return nil, err
	}
	u, err := url.Parse(s.endpoint)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid endpoint %q", s.endpoint)
	}
	if s.window != "" {
		q := u.Query()
		q.Set("window", s.window)
		u.RawQuery = q.Encode()
	}

	var p payload
	fetch := func() error {
		return s.doRequest(ctx, u, &p)
	}
	if err := cache.RetryWithBackoff(ctx, fetch); err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "fetch observations from %s", s.endpoint)
	}

	if p.Data == nil {
		return []chart.Observation{}, nil
	}
	return p.Data, nil
}

func (s *HTTPSource) doRequest(ctx context.Context, u *url.URL, p *payload) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range s.headers {
		req.Header.Set(k, v)
	}

	observability.HTTP().OnRequest(ctx, req.Method, u.Host, u.Path)
	start := time.Now()

	resp, err := s.client.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, req.Method, u.Host, u.Path, err)
		return cache.Retryable(fmt.Errorf("network error: %w", err))
	}
	defer resp.Body.Close()

	observability.HTTP().OnResponse(ctx, req.Method, u.Host, u.Path, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusOK:
		// Fall through to decode.
	case resp.StatusCode == http.StatusNotFound:
		// No data for this window; render an empty chart.
		*p = payload{Data: []chart.Observation{}}
		return nil
	case resp.StatusCode >= 500:
		return cache.Retryable(fmt.Errorf("backend returned status %d", resp.StatusCode))
	default:
		return errors.New(errors.ErrCodeNetwork, "backend returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(p); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode observation payload")
	}
	return nil
}

var _ Source = (*HTTPSource)(nil)
