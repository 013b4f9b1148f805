package observability

import (
	"context"
	"testing"
	"time"
)

// recordingPipelineHooks counts pipeline events for assertions.
type recordingPipelineHooks struct {
	NoopPipelineHooks
	fetchStarts  int
	fetchDones   int
	figureStarts int
	renderDones  int
}

func (h *recordingPipelineHooks) OnFetchStart(context.Context, string) { h.fetchStarts++ }
func (h *recordingPipelineHooks) OnFetchComplete(context.Context, string, int, time.Duration, error) {
	h.fetchDones++
}
func (h *recordingPipelineHooks) OnFigureStart(context.Context, int) { h.figureStarts++ }
func (h *recordingPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.renderDones++
}

type recordingCacheHooks struct {
	NoopCacheHooks
	hits   int
	misses int
	sets   int
}

func (h *recordingCacheHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *recordingCacheHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *recordingCacheHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()

	// None of these should panic.
	Pipeline().OnFetchStart(ctx, "https://x")
	Pipeline().OnFetchComplete(ctx, "https://x", 0, 0, nil)
	Pipeline().OnFigureStart(ctx, 0)
	Pipeline().OnFigureComplete(ctx, 0, 0, nil)
	Pipeline().OnRenderStart(ctx, nil)
	Pipeline().OnRenderComplete(ctx, nil, 0, nil)
	Cache().OnCacheHit(ctx, "observations")
	Cache().OnCacheMiss(ctx, "figure")
	Cache().OnCacheSet(ctx, "artifact:svg", 128)
	HTTP().OnRequest(ctx, "GET", "admin.local", "/api")
	HTTP().OnResponse(ctx, "GET", "admin.local", "/api", 200, 0)
	HTTP().OnError(ctx, "GET", "admin.local", "/api", nil)
}

func TestSetPipelineHooks(t *testing.T) {
	t.Cleanup(Reset)
	ctx := context.Background()

	h := &recordingPipelineHooks{}
	SetPipelineHooks(h)

	Pipeline().OnFetchStart(ctx, "https://x")
	Pipeline().OnFetchComplete(ctx, "https://x", 3, time.Millisecond, nil)
	Pipeline().OnFigureStart(ctx, 3)
	Pipeline().OnRenderComplete(ctx, []string{"svg"}, time.Millisecond, nil)

	if h.fetchStarts != 1 || h.fetchDones != 1 || h.figureStarts != 1 || h.renderDones != 1 {
		t.Errorf("hook counts = %+v", *h)
	}
}

func TestSetCacheHooks(t *testing.T) {
	t.Cleanup(Reset)
	ctx := context.Background()

	h := &recordingCacheHooks{}
	SetCacheHooks(h)

	Cache().OnCacheHit(ctx, "observations")
	Cache().OnCacheMiss(ctx, "figure")
	Cache().OnCacheMiss(ctx, "artifacts")
	Cache().OnCacheSet(ctx, "figure", 42)

	if h.hits != 1 || h.misses != 2 || h.sets != 1 {
		t.Errorf("hook counts = %+v", *h)
	}
}

func TestSetNilHooksIgnored(t *testing.T) {
	t.Cleanup(Reset)

	SetPipelineHooks(nil)
	SetCacheHooks(nil)
	SetHTTPHooks(nil)

	if Pipeline() == nil || Cache() == nil || HTTP() == nil {
		t.Error("nil registration replaced the defaults")
	}
}

func TestReset(t *testing.T) {
	SetCacheHooks(&recordingCacheHooks{})
	Reset()

	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() after Reset = %T, want NoopCacheHooks", Cache())
	}
}
