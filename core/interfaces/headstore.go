// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import "io"

// AttrKind selects the attribute a meta element is addressed by.
type AttrKind string

const (
	// AttrName addresses meta elements by their name attribute.
	AttrName AttrKind = "name"

	// AttrProperty addresses meta elements by their property attribute.
	AttrProperty AttrKind = "property"

	// AttrHTTPEquiv addresses meta elements by their http-equiv attribute.
	AttrHTTPEquiv AttrKind = "http-equiv"
)

// HeadStore is the upsert-primitive layer over one document head. Every
// method is a find-or-create keyed by an attribute selector: at most one
// element exists per (attribute kind, value) pair, and updates mutate the
// existing element in place rather than creating duplicates.
//
// Implementations operate on a live parsed document or on an in-memory
// fake; both assume the head exists and never fail, so the methods carry
// no error returns.
type HeadStore interface {
	// SetTitle replaces the document title text. Last write wins.
	SetTitle(title string)

	// UpsertMeta finds the meta element with attribute kind equal to key and
	// sets its content attribute, creating the element when absent.
	UpsertMeta(kind AttrKind, key, content string)

	// MetaContent returns the content of the meta element addressed by
	// (kind, key), and whether such an element exists.
	MetaContent(kind AttrKind, key string) (string, bool)

	// UpsertLink finds the link element with the given rel and sets its href,
	// creating the element when absent.
	UpsertLink(rel, href string)

	// RemoveLink removes the link element with the given rel, if any.
	RemoveLink(rel string)

	// EnsureCharset creates a charset meta element as the first head child
	// when none exists yet. An existing charset element is left untouched.
	EnsureCharset(value string)

	// ReplaceScript removes any script element carrying the given id, then
	// appends a new script element with that id, type, and body.
	ReplaceScript(id, scriptType, body string)

	// RemoveScript removes the script element carrying the given id, if any.
	RemoveScript(id string)
}

// DocumentStore is a head store backed by a full parsed document that can be
// serialized back to HTML.
type DocumentStore interface {
	HeadStore

	// Render writes the whole document, including the doctype.
	Render(w io.Writer) error

	// RenderHead writes only the head element.
	RenderHead(w io.Writer) error
}

// DocumentParser builds a document store from an HTML page. Parsing fails
// when the page cannot be parsed or carries no head element.
type DocumentParser interface {
	Parse(page []byte) (DocumentStore, error)
}
