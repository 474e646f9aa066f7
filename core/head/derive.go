// ABOUTME: Namespace derivation for Open Graph and Twitter Card metadata
// ABOUTME: Applies override-beats-flat-beats-toplevel precedence and fallback defaults

package head

import (
	"sort"
	"strings"

	"headmeta-api/core/domain"
)

// tagPair is one derived tag name and its content, in upsert order.
type tagPair struct {
	key   string
	value string
}

// ogWellKnown maps well-known Open Graph tag names; extras with these names
// are skipped because the typed fields already cover them.
var ogWellKnown = map[string]bool{
	"og:title":        true,
	"og:description":  true,
	"og:type":         true,
	"og:url":          true,
	"og:image":        true,
	"og:image:width":  true,
	"og:image:height": true,
	"og:image:alt":    true,
	"og:site_name":    true,
	"og:locale":       true,
}

var twitterWellKnown = map[string]bool{
	"twitter:card":        true,
	"twitter:site":        true,
	"twitter:creator":     true,
	"twitter:title":       true,
	"twitter:description": true,
	"twitter:image":       true,
	"twitter:image:alt":   true,
}

// deriveOpenGraph builds the working Open Graph record for one metadata
// record. Keys already set in the override record always win; flat og fields
// fill unset keys, and the top-level title, description, and canonical URL
// are the final fallbacks for og:title, og:description, and og:url.
func deriveOpenGraph(m domain.Metadata) []tagPair {
	var og domain.OpenGraph
	if m.OpenGraph != nil {
		og = *m.OpenGraph
	}

	if og.Title == "" {
		og.Title = firstNonEmpty(m.OGTitle, m.Title)
	}
	if og.Description == "" {
		og.Description = firstNonEmpty(m.OGDescription, m.Description)
	}
	if og.Type == "" {
		og.Type = m.OGType
	}
	if og.URL == "" {
		og.URL = firstNonEmpty(m.OGURL, m.Canonical)
	}
	if og.Image == "" {
		og.Image = m.OGImage
	}
	if og.SiteName == "" {
		og.SiteName = m.OGSiteName
	}
	if og.Locale == "" {
		og.Locale = m.OGLocale
	}

	pairs := appendTag(nil, "og:title", og.Title)
	pairs = appendTag(pairs, "og:description", og.Description)
	pairs = appendTag(pairs, "og:type", og.Type)
	pairs = appendTag(pairs, "og:url", og.URL)
	pairs = appendTag(pairs, "og:image", og.Image)
	pairs = appendTag(pairs, "og:image:width", og.ImageWidth)
	pairs = appendTag(pairs, "og:image:height", og.ImageHeight)
	pairs = appendTag(pairs, "og:image:alt", og.ImageAlt)
	pairs = appendTag(pairs, "og:site_name", og.SiteName)
	pairs = appendTag(pairs, "og:locale", og.Locale)

	return appendExtras(pairs, og.Extra, "og:", ogWellKnown)
}

// derivedOGImage returns the Open Graph image after precedence resolution.
// It feeds the twitter:image fallback.
func derivedOGImage(m domain.Metadata) string {
	if m.OpenGraph != nil && m.OpenGraph.Image != "" {
		return m.OpenGraph.Image
	}
	return m.OGImage
}

// deriveTwitter builds the working Twitter Card record, symmetric to
// deriveOpenGraph. The image falls back to the derived Open Graph image.
func deriveTwitter(m domain.Metadata) []tagPair {
	var tw domain.Twitter
	if m.Twitter != nil {
		tw = *m.Twitter
	}

	if tw.Card == "" {
		tw.Card = m.TwitterCard
	}
	if tw.Site == "" {
		tw.Site = m.TwitterSite
	}
	if tw.Creator == "" {
		tw.Creator = m.TwitterCreator
	}
	if tw.Title == "" {
		tw.Title = firstNonEmpty(m.TwitterTitle, m.Title)
	}
	if tw.Description == "" {
		tw.Description = firstNonEmpty(m.TwitterDescription, m.Description)
	}
	if tw.Image == "" {
		tw.Image = firstNonEmpty(m.TwitterImage, derivedOGImage(m))
	}
	if tw.ImageAlt == "" {
		tw.ImageAlt = m.TwitterImageAlt
	}

	pairs := appendTag(nil, "twitter:card", tw.Card)
	pairs = appendTag(pairs, "twitter:site", tw.Site)
	pairs = appendTag(pairs, "twitter:creator", tw.Creator)
	pairs = appendTag(pairs, "twitter:title", tw.Title)
	pairs = appendTag(pairs, "twitter:description", tw.Description)
	pairs = appendTag(pairs, "twitter:image", tw.Image)
	pairs = appendTag(pairs, "twitter:image:alt", tw.ImageAlt)

	return appendExtras(pairs, tw.Extra, "twitter:", twitterWellKnown)
}

// appendTag appends a pair unless the value is empty.
func appendTag(pairs []tagPair, key, value string) []tagPair {
	if value == "" {
		return pairs
	}
	return append(pairs, tagPair{key: key, value: value})
}

// appendExtras appends arbitrary prefixed keys from an override record,
// sorted for deterministic output. Keys without the namespace prefix and
// keys the typed fields already cover are skipped.
func appendExtras(pairs []tagPair, extra map[string]string, prefix string, wellKnown map[string]bool) []tagPair {
	if len(extra) == 0 {
		return pairs
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		if !strings.HasPrefix(k, prefix) || wellKnown[k] {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		pairs = appendTag(pairs, k, extra[k])
	}
	return pairs
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
