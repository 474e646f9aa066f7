// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as document storage, caching, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - headstore/document: goquery-backed head store over a parsed HTML page
// - headstore/memory: In-memory head store for tests and headless callers
// - cache/memory: In-memory render cache built on go-cache
// - cache/redis: Redis-based render cache
// - logger/logrus: Structured logger implementation built on logrus
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include timeouts and error handling
//
// # Head Store Implementations
//
// Document-backed store example:
//
//	store, err := document.NewHeadStore(strings.NewReader(page))
//	if err != nil {
//	    // no head element or unparseable input
//	}
//	store.UpsertMeta(interfaces.AttrProperty, "og:title", "Landing page")
//
// # Cache Implementations
//
// Memory cache example:
//
//	cache := memory.NewMemoryCache(1*time.Hour, 10*time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis cache example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	})
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLoggerWithLevel("debug")
//	logger.Info("Processing request", map[string]interface{}{
//	    "request_id": "123",
//	    "action":     "render_page",
//	})
package infrastructure
