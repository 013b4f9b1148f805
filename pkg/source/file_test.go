package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/precastlab/qcradial/pkg/errors"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "observations.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFileSourceFetch(t *testing.T) {
	t.Run("payload shape", func(t *testing.T) {
		path := writeTemp(t, `{"data":[{"category":"curing","series":"approved","value":800}]}`)
		obs, err := NewFileSource(path).Fetch(context.Background())
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if len(obs) != 1 || obs[0].Category != "curing" {
			t.Errorf("obs = %+v", obs)
		}
	})

	t.Run("bare array shape", func(t *testing.T) {
		path := writeTemp(t, `[{"category":"curing","series":"approved","value":800}]`)
		obs, err := NewFileSource(path).Fetch(context.Background())
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if len(obs) != 1 {
			t.Errorf("len(obs) = %d, want 1", len(obs))
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		path := writeTemp(t, `{"data":[]}`)
		obs, err := NewFileSource(path).Fetch(context.Background())
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if obs == nil || len(obs) != 0 {
			t.Errorf("obs = %v, want empty non-nil slice", obs)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewFileSource("/nonexistent/observations.json").Fetch(context.Background())
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeTemp(t, `{not json`)
		_, err := NewFileSource(path).Fetch(context.Background())
		if !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
		}
	})
}

func TestFileSourceName(t *testing.T) {
	s := NewFileSource("qc.json")
	if got := s.Name(); got != "file:qc.json" {
		t.Errorf("Name() = %q", got)
	}
}
