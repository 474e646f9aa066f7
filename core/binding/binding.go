// ABOUTME: Declarative binding ties head reconciliation to a caller lifecycle
// ABOUTME: Runs the pending disposer before each update and exactly once on close

package binding

import (
	"headmeta-api/core/domain"
	"headmeta-api/core/interfaces"
)

// Binding funnels lifecycle-driven metadata updates into a head service.
// Callers invoke Update on every relevant change to their record and Close
// on teardown; the binding takes care of running disposers so the JSON-LD
// script created by a superseded update never outlives it.
type Binding struct {
	service interfaces.HeadService
	dispose interfaces.Disposer
	closed  bool
}

// NewBinding creates a binding over the given head service.
func NewBinding(service interfaces.HeadService) *Binding {
	return &Binding{service: service}
}

// Update reconciles the record, running the previous update's disposer
// first. Calls after Close are ignored.
func (b *Binding) Update(record domain.Metadata) {
	if b.closed {
		return
	}
	if b.dispose != nil {
		b.dispose()
	}
	b.dispose = b.service.Reconcile(record)
}

// Close runs the pending disposer exactly once. Further updates become
// no-ops.
func (b *Binding) Close() {
	if b.closed {
		return
	}
	b.closed = true
	if b.dispose != nil {
		b.dispose()
		b.dispose = nil
	}
}
