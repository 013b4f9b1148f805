package source

import (
	"context"
	"encoding/json"
	"os"

	"github.com/precastlab/qcradial/pkg/chart"
	"github.com/precastlab/qcradial/pkg/errors"
)

// FileSource reads observations from a local JSON file. The file holds
// either the backend payload shape {"data": [...]} or a bare observation
// array.
type FileSource struct {
	path string
}

// NewFileSource creates a source reading from the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name identifies the source for logging and cache keys.
func (s *FileSource) Name() string { return "file:" + s.path }

// Fetch reads and decodes the file.
func (s *FileSource) Fetch(ctx context.Context) ([]chart.Observation, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "observation file %s", s.path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read observation file %s", s.path)
	}

	var p payload
	if err := json.Unmarshal(data, &p); err == nil && p.Data != nil {
		return p.Data, nil
	}

	var obs []chart.Observation
	if err := json.Unmarshal(data, &obs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode observation file %s", s.path)
	}
	if obs == nil {
		obs = []chart.Observation{}
	}
	return obs, nil
}

var _ Source = (*FileSource)(nil)
