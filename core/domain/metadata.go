// ABOUTME: Metadata domain model represents one page state's head metadata
// ABOUTME: Covers flat fields, Open Graph and Twitter overrides, custom tags, and JSON-LD

package domain

import (
	"encoding/json"
	"strings"
)

// Metadata is the full set of optional head fields for one logical page state.
// Every field is optional; empty fields are skipped during reconciliation and
// never clear a previously written tag.
type Metadata struct {
	// Title sets the document title and is the fallback for og:title and
	// twitter:title.
	Title string

	// Description is the meta description and the fallback for og:description
	// and twitter:description.
	Description string

	// Keywords holds either a single pre-formatted string or an ordered list.
	Keywords Keywords

	// Canonical is the canonical URL. It is also the fallback for og:url.
	Canonical string

	// Flat single-value meta fields, upserted by name.
	Robots     string
	Author     string
	Viewport   string
	ThemeColor string
	Generator  string

	// Language is written as both a language meta tag and its content-language
	// http-equiv counterpart.
	Language string

	// Flat Open Graph fields. An explicit OpenGraph override record wins over
	// these; these win over the top-level fallbacks.
	OGTitle       string
	OGDescription string
	OGType        string
	OGURL         string
	OGImage       string
	OGSiteName    string
	OGLocale      string

	// Flat Twitter Card fields, same precedence as the OG fields.
	TwitterCard        string
	TwitterSite        string
	TwitterCreator     string
	TwitterTitle       string
	TwitterDescription string
	TwitterImage       string
	TwitterImageAlt    string

	// OpenGraph holds explicit og: overrides. Set keys always win.
	OpenGraph *OpenGraph

	// Twitter holds explicit twitter: overrides. Set keys always win.
	Twitter *Twitter

	// CustomTags are applied in order after the namespace tags.
	CustomTags []CustomTag

	// JSONLD is the structured-data payload for the owned script element.
	JSONLD JSONLD
}

// Keywords is a scalar-or-sequence value. At most one of the two variants is
// expected to be set; List wins when both are.
type Keywords struct {
	Scalar string
	List   []string
}

// Format returns the value stored into the keywords meta tag: a list is
// joined with ", ", a scalar is used verbatim, and an absent value yields "".
func (k Keywords) Format() string {
	if len(k.List) > 0 {
		return strings.Join(k.List, ", ")
	}
	return k.Scalar
}

// IsZero reports whether no keywords were supplied.
func (k Keywords) IsZero() bool {
	return k.Scalar == "" && len(k.List) == 0
}

// OpenGraph maps well-known og: properties to values, plus arbitrary
// og:-prefixed keys through Extra.
type OpenGraph struct {
	Title       string
	Description string
	Type        string
	URL         string
	Image       string
	ImageWidth  string
	ImageHeight string
	ImageAlt    string
	SiteName    string
	Locale      string

	// Extra holds additional properties keyed by their full tag name.
	// Only keys beginning with "og:" are written.
	Extra map[string]string
}

// Twitter maps well-known twitter: properties to values, plus arbitrary
// twitter:-prefixed keys through Extra.
type Twitter struct {
	Card        string
	Site        string
	Creator     string
	Title       string
	Description string
	Image       string
	ImageAlt    string

	// Extra holds additional properties keyed by their full tag name.
	// Only keys beginning with "twitter:" are written.
	Extra map[string]string
}

// CustomTag is an arbitrary head meta tag with one of four mutually exclusive
// addressing modes. Resolution priority is Name, then Property, then
// HTTPEquiv, then Charset. Content is required for the first three modes.
type CustomTag struct {
	Name      string
	Property  string
	HTTPEquiv string
	Charset   string
	Content   string
}

// JSONLD is an object-or-sequence structured-data payload. At most one of
// the two variants is expected to be set; Docs wins when both are.
type JSONLD struct {
	Doc  any
	Docs []any
}

// IsZero reports whether no payload was supplied.
func (j JSONLD) IsZero() bool {
	return j.Doc == nil && len(j.Docs) == 0
}

// Marshal serializes the payload with the ordinary JSON encoding, compact,
// without key reordering beyond what the encoder itself does.
func (j JSONLD) Marshal() ([]byte, error) {
	if len(j.Docs) > 0 {
		return json.Marshal(j.Docs)
	}
	return json.Marshal(j.Doc)
}
