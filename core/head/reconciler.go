// ABOUTME: Head reconciler translates one metadata record into document-head upserts
// ABOUTME: Idempotent and additive-only, with disposer-based cleanup of owned elements

package head

import (
	"headmeta-api/core/domain"
	"headmeta-api/core/interfaces"
)

const (
	// JSONLDScriptID is the marker id of the owned structured-data script.
	JSONLDScriptID = "headmeta-jsonld"

	// JSONLDScriptType is the script type of the structured-data element.
	JSONLDScriptType = "application/ld+json"

	// CanonicalRel is the rel of the owned canonical link element.
	CanonicalRel = "canonical"
)

// Reconciler applies metadata records to a head store. Calls are expected to
// run sequentially; there is no internal locking.
type Reconciler struct {
	store  interfaces.HeadStore
	logger interfaces.Logger

	// jsonldGen counts script creations so a stale disposer never removes a
	// script written by a later reconciliation.
	jsonldGen uint64
}

// NewReconciler creates a reconciler over the given head store.
func NewReconciler(store interfaces.HeadStore, logger interfaces.Logger) *Reconciler {
	return &Reconciler{
		store:  store,
		logger: logger,
	}
}

// noopDisposer is returned when a reconciliation created no owned script.
func noopDisposer() {}

// Reconcile applies one metadata record to the head. Every field is
// optional: empty fields are skipped, and a field omitted on a later call
// never clears an element written by an earlier one. Reconciling the same
// record twice leaves the head identical to reconciling it once.
//
// The returned disposer removes the JSON-LD script this call created, if
// any. It is a no-op once the script has been replaced or removed.
func (r *Reconciler) Reconcile(record domain.Metadata) interfaces.Disposer {
	if record.Title != "" {
		r.store.SetTitle(record.Title)
	}

	r.upsertNamed("description", record.Description)
	r.upsertNamed("keywords", record.Keywords.Format())
	r.upsertNamed("robots", record.Robots)
	r.upsertNamed("author", record.Author)
	r.upsertNamed("viewport", record.Viewport)
	r.upsertNamed("theme-color", record.ThemeColor)
	r.upsertNamed("generator", record.Generator)

	if record.Language != "" {
		r.store.UpsertMeta(interfaces.AttrName, "language", record.Language)
		r.store.UpsertMeta(interfaces.AttrHTTPEquiv, "content-language", record.Language)
	}

	if record.Canonical != "" {
		r.store.UpsertLink(CanonicalRel, record.Canonical)
	}

	for _, p := range deriveOpenGraph(record) {
		r.store.UpsertMeta(interfaces.AttrProperty, p.key, p.value)
	}
	for _, p := range deriveTwitter(record) {
		r.store.UpsertMeta(interfaces.AttrName, p.key, p.value)
	}

	for _, tag := range record.CustomTags {
		r.applyCustomTag(tag)
	}

	return r.applyJSONLD(record.JSONLD)
}

// Clear removes the owned canonical link and JSON-LD script. The title,
// flat meta tags, namespace tags, and custom tags stay in place because
// other writers may own them.
func (r *Reconciler) Clear() {
	r.store.RemoveLink(CanonicalRel)
	r.store.RemoveScript(JSONLDScriptID)
	r.jsonldGen++
}

// upsertNamed upserts a name-addressed meta tag, skipping empty values.
func (r *Reconciler) upsertNamed(name, content string) {
	if content == "" {
		return
	}
	r.store.UpsertMeta(interfaces.AttrName, name, content)
}

// applyCustomTag resolves the addressing mode in fixed priority order:
// name, then property, then http-equiv, then charset. The first three
// require a content value; charset is created once as the first head child
// and never overwritten.
func (r *Reconciler) applyCustomTag(tag domain.CustomTag) {
	switch {
	case tag.Name != "":
		if tag.Content != "" {
			r.store.UpsertMeta(interfaces.AttrName, tag.Name, tag.Content)
		}
	case tag.Property != "":
		if tag.Content != "" {
			r.store.UpsertMeta(interfaces.AttrProperty, tag.Property, tag.Content)
		}
	case tag.HTTPEquiv != "":
		if tag.Content != "" {
			r.store.UpsertMeta(interfaces.AttrHTTPEquiv, tag.HTTPEquiv, tag.Content)
		}
	case tag.Charset != "":
		r.store.EnsureCharset(tag.Charset)
	}
}

// applyJSONLD replaces the owned structured-data script with the new
// payload and returns a disposer scoped to that script. An absent payload
// touches nothing; a payload that fails to serialize is logged and skipped.
func (r *Reconciler) applyJSONLD(payload domain.JSONLD) interfaces.Disposer {
	if payload.IsZero() {
		return noopDisposer
	}

	body, err := payload.Marshal()
	if err != nil {
		if r.logger != nil {
			r.logger.Warn("Skipping JSON-LD payload", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return noopDisposer
	}

	r.store.ReplaceScript(JSONLDScriptID, JSONLDScriptType, string(body))
	r.jsonldGen++
	gen := r.jsonldGen

	return func() {
		if r.jsonldGen != gen {
			return
		}
		r.store.RemoveScript(JSONLDScriptID)
	}
}
