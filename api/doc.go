// Package api provides the HTTP API layer for the Headmeta application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type RenderRequest struct {
//	    HTML     string            `json:"html" required:"true" minLength:"1"`
//	    Metadata []MetadataRequest `json:"metadata" minItems:"1" maxItems:"50"`
//	}
//
// The metadata DTOs additionally accept flexible JSON shapes: keywords as a
// string or an array, and jsonLd as an object or an array of objects.
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS handling
//
// # Usage Example
//
//	cfg := api.APIConfig{
//	    Logger:    logger,
//	    RateLimit: 100,
//	    RateBurst: 20,
//	}
//	humaAPI, router := api.NewAPIWithMiddleware(cfg)
//
//	renderHandler := handlers.NewRenderHandler(renderService)
//	renderHandler.RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8080", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 422,
//	    "title": "Unprocessable Entity",
//	    "detail": "invalid document: document has no head element",
//	    "instance": "/render"
//	}
//
// Domain errors are automatically mapped to appropriate HTTP status codes.
package api
