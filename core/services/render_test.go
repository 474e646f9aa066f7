package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"headmeta-api/core/config"
	"headmeta-api/core/domain"
	"headmeta-api/core/interfaces"
	"headmeta-api/infrastructure/headstore/document"
)

const testPage = `<!DOCTYPE html><html><head><title>Old</title></head><body><p>hi</p></body></html>`

// recordingCache counts cache traffic for assertions.
type recordingCache struct {
	store map[string][]byte
	gets  int
	sets  int
	hits  int
}

func newRecordingCache() *recordingCache {
	return &recordingCache{store: map[string][]byte{}}
}

func (c *recordingCache) Get(_ context.Context, key string) ([]byte, error) {
	c.gets++
	if v, ok := c.store[key]; ok {
		c.hits++
		return v, nil
	}
	return nil, errMiss
}

var errMiss = errors.New("cache miss")

func (c *recordingCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.sets++
	c.store[key] = value
	return nil
}

func (c *recordingCache) Delete(_ context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func newTestService(cache interfaces.Cache, opts ...config.RenderOption) *RenderService {
	deps := interfaces.Dependencies{Cache: cache}
	return NewRenderService(deps, document.NewParser(), opts...)
}

func TestRenderService_RenderPage_AppliesRecords(t *testing.T) {
	svc := newTestService(nil, config.WithoutRenderCache())

	out, err := svc.RenderPage(context.Background(), []byte(testPage), []domain.Metadata{
		{Title: "New", Description: "A page"},
	})
	if err != nil {
		t.Fatalf("RenderPage returned error: %v", err)
	}

	html := string(out)
	if !strings.Contains(html, "<title>New</title>") {
		t.Errorf("title not applied:\n%s", html)
	}
	if !strings.Contains(html, `content="A page"`) {
		t.Errorf("description not applied:\n%s", html)
	}
	if !strings.Contains(html, "<p>hi</p>") {
		t.Errorf("body lost:\n%s", html)
	}
}

func TestRenderService_RenderPage_LastWriteWinsAcrossRecords(t *testing.T) {
	svc := newTestService(nil, config.WithoutRenderCache())

	out, err := svc.RenderPage(context.Background(), []byte(testPage), []domain.Metadata{
		{Title: "First", Description: "kept"},
		{Title: "Second"},
	})
	if err != nil {
		t.Fatalf("RenderPage returned error: %v", err)
	}

	html := string(out)
	if !strings.Contains(html, "<title>Second</title>") {
		t.Errorf("later record should win the title:\n%s", html)
	}
	if !strings.Contains(html, `content="kept"`) {
		t.Errorf("field defined by only one record should be preserved:\n%s", html)
	}
}

func TestRenderService_RenderHead_ReturnsFragment(t *testing.T) {
	svc := newTestService(nil, config.WithoutRenderCache())

	out, err := svc.RenderHead(context.Background(), []byte(testPage), []domain.Metadata{
		{Title: "New"},
	})
	if err != nil {
		t.Fatalf("RenderHead returned error: %v", err)
	}

	html := string(out)
	if !strings.HasPrefix(html, "<head>") {
		t.Errorf("fragment should start with head:\n%s", html)
	}
	if strings.Contains(html, "<body") {
		t.Errorf("fragment should not include the body:\n%s", html)
	}
}

func TestRenderService_RenderPage_CachesByInput(t *testing.T) {
	cache := newRecordingCache()
	svc := newTestService(cache, config.WithCacheTTL(time.Minute))
	records := []domain.Metadata{{Title: "Cached"}}

	first, err := svc.RenderPage(context.Background(), []byte(testPage), records)
	if err != nil {
		t.Fatalf("RenderPage returned error: %v", err)
	}
	second, err := svc.RenderPage(context.Background(), []byte(testPage), records)
	if err != nil {
		t.Fatalf("RenderPage returned error: %v", err)
	}

	if string(first) != string(second) {
		t.Error("cached render should match the original")
	}
	if cache.sets != 1 {
		t.Errorf("expected 1 cache store, got %d", cache.sets)
	}
	if cache.hits != 1 {
		t.Errorf("expected 1 cache hit, got %d", cache.hits)
	}
}

func TestRenderService_RenderPage_DistinctRecordsDistinctKeys(t *testing.T) {
	cache := newRecordingCache()
	svc := newTestService(cache)

	_, _ = svc.RenderPage(context.Background(), []byte(testPage), []domain.Metadata{{Title: "A"}})
	out, err := svc.RenderPage(context.Background(), []byte(testPage), []domain.Metadata{{Title: "B"}})
	if err != nil {
		t.Fatalf("RenderPage returned error: %v", err)
	}

	if !strings.Contains(string(out), "<title>B</title>") {
		t.Error("different records must not share a cache entry")
	}
}

func TestRenderService_RenderPage_CacheDisabled(t *testing.T) {
	cache := newRecordingCache()
	svc := newTestService(cache, config.WithoutRenderCache())

	_, err := svc.RenderPage(context.Background(), []byte(testPage), []domain.Metadata{{Title: "A"}})
	if err != nil {
		t.Fatalf("RenderPage returned error: %v", err)
	}

	if cache.gets != 0 || cache.sets != 0 {
		t.Error("disabled cache should see no traffic")
	}
}

func TestRenderService_RenderPage_EmptyRecordsStillRenders(t *testing.T) {
	svc := newTestService(nil, config.WithoutRenderCache())

	out, err := svc.RenderPage(context.Background(), []byte(testPage), nil)
	if err != nil {
		t.Fatalf("RenderPage returned error: %v", err)
	}
	if !strings.Contains(string(out), "<title>Old</title>") {
		t.Error("page without records should pass through unchanged")
	}
}
