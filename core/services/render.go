// ABOUTME: Render service applies metadata records to whole HTML pages
// ABOUTME: Parses the page, reconciles records in order, and memoizes results

package services

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"headmeta-api/core/config"
	"headmeta-api/core/domain"
	coreerrors "headmeta-api/core/errors"
	"headmeta-api/core/head"
	"headmeta-api/core/interfaces"
)

// RenderService reconciles metadata records against HTML pages supplied by
// out-of-process callers. Records apply in order with last-write-wins
// semantics; a field only one record defines is preserved.
type RenderService struct {
	deps   interfaces.Dependencies
	parser interfaces.DocumentParser
	config config.RenderConfig
}

// NewRenderService creates a render service with the given options
func NewRenderService(deps interfaces.Dependencies, parser interfaces.DocumentParser, opts ...config.RenderOption) *RenderService {
	return &RenderService{
		deps:   deps,
		parser: parser,
		config: config.NewRenderConfig(opts...),
	}
}

// RenderPage parses the page, reconciles the records in order, and returns
// the serialized document.
func (s *RenderService) RenderPage(ctx context.Context, page []byte, records []domain.Metadata) ([]byte, error) {
	return s.render(ctx, "render:page:", page, records, func(store interfaces.DocumentStore) ([]byte, error) {
		var buf bytes.Buffer
		if err := store.Render(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
}

// RenderHead is like RenderPage but returns only the head fragment.
func (s *RenderService) RenderHead(ctx context.Context, page []byte, records []domain.Metadata) ([]byte, error) {
	return s.render(ctx, "render:head:", page, records, func(store interfaces.DocumentStore) ([]byte, error) {
		var buf bytes.Buffer
		if err := store.RenderHead(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
}

// render runs the shared parse-reconcile-serialize pipeline with optional
// memoization.
func (s *RenderService) render(ctx context.Context, keyPrefix string, page []byte, records []domain.Metadata, serialize func(interfaces.DocumentStore) ([]byte, error)) ([]byte, error) {
	key := ""
	if s.cacheEnabled() {
		if hash := renderCacheKey(page, records); hash != "" {
			key = keyPrefix + hash
			if cached, err := s.deps.Cache.Get(ctx, key); err == nil {
				s.logDebug("Render cache hit", map[string]interface{}{"key": key})
				return cached, nil
			}
		}
	}

	store, err := s.parser.Parse(page)
	if err != nil {
		return nil, coreerrors.WrapError(err, "render failed")
	}

	reconciler := head.NewReconciler(store, s.deps.Logger)
	for _, record := range records {
		reconciler.Reconcile(record)
	}

	out, err := serialize(store)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to serialize document")
	}

	if key != "" {
		if err := s.deps.Cache.Set(ctx, key, out, s.config.CacheTTL); err != nil {
			s.logDebug("Render cache store failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
	}

	return out, nil
}

// cacheEnabled reports whether memoization is configured and wired.
func (s *RenderService) cacheEnabled() bool {
	return s.config.CacheRenders && s.deps.Cache != nil
}

// logDebug logs when a logger is wired.
func (s *RenderService) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}

// renderCacheKey hashes the page and records so identical inputs share one
// cache entry. Records that cannot be serialized yield no key, which skips
// memoization for that call.
func renderCacheKey(page []byte, records []domain.Metadata) string {
	encoded, err := json.Marshal(records)
	if err != nil {
		return ""
	}
	h := sha256.New()
	h.Write(page)
	h.Write(encoded)
	return hex.EncodeToString(h.Sum(nil))
}
