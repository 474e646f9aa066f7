// Package core contains the business logic for the Headmeta API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Metadata, OpenGraph, Twitter, CustomTag, JSONLD)
// - head: Reconciles metadata records into a document head
// - binding: Declarative wrapper that tracks one live metadata record
// - services: Render service that applies records to whole pages
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (head store, cache, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "headmeta-api/core/domain"
//	    "headmeta-api/core/head"
//	)
//
//	// Create a reconciler over any head store implementation
//	reconciler := head.NewReconciler(store, logger)
//
//	// Apply a metadata record
//	dispose := reconciler.Reconcile(domain.Metadata{
//	    Title:     "Landing page",
//	    Canonical: "https://example.com/",
//	})
//
//	// Later, drop the JSON-LD written by that call
//	dispose()
package core
