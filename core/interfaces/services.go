// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"headmeta-api/core/domain"
)

// Disposer undoes the owned side effects of one reconciliation. It removes
// the JSON-LD script that reconciliation created, if any, and is safe to
// call more than once.
type Disposer func()

// HeadService reconciles metadata records against a document head
type HeadService interface {
	// Reconcile applies one metadata record to the head and returns a
	// disposer for the JSON-LD script it created. All fields are optional;
	// empty fields are skipped.
	Reconcile(record domain.Metadata) Disposer

	// Clear removes the owned canonical link and JSON-LD script. Tags that
	// may belong to other writers are left in place.
	Clear()
}

// RenderService applies metadata records to an HTML page out of process
type RenderService interface {
	// RenderPage parses an HTML page, reconciles the records in order, and
	// returns the serialized result.
	RenderPage(ctx context.Context, page []byte, records []domain.Metadata) ([]byte, error)

	// RenderHead is like RenderPage but returns only the head fragment.
	RenderHead(ctx context.Context, page []byte, records []domain.Metadata) ([]byte, error)
}
