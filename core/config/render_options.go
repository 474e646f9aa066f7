// ABOUTME: Render configuration for service-level control of optional features
// ABOUTME: Provides configuration options independent of HTTP request structures

package config

import "time"

// RenderConfig controls optional behavior of the render service
type RenderConfig struct {
	// CacheRenders controls whether rendered documents are memoized
	CacheRenders bool

	// CacheTTL is the lifetime of memoized renders
	CacheTTL time.Duration
}

// DefaultRenderConfig returns the default configuration with caching enabled
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		CacheRenders: true,
		CacheTTL:     5 * time.Minute,
	}
}

// RenderOption is a functional option for configuring rendering
type RenderOption func(*RenderConfig)

// WithRenderCache enables or disables render memoization
func WithRenderCache(enabled bool) RenderOption {
	return func(c *RenderConfig) {
		c.CacheRenders = enabled
	}
}

// WithoutRenderCache disables render memoization
func WithoutRenderCache() RenderOption {
	return WithRenderCache(false)
}

// WithCacheTTL sets the lifetime of memoized renders
func WithCacheTTL(ttl time.Duration) RenderOption {
	return func(c *RenderConfig) {
		c.CacheTTL = ttl
	}
}

// NewRenderConfig creates a new render configuration with the given options
func NewRenderConfig(opts ...RenderOption) RenderConfig {
	config := DefaultRenderConfig()

	for _, opt := range opts {
		opt(&config)
	}

	return config
}
