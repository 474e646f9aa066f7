// ABOUTME: In-memory head store used by tests and in-process bindings
// ABOUTME: Models the head as an ordered node list keyed by attribute selectors

package memory

import (
	"headmeta-api/core/interfaces"
)

// charsetKind marks the synthetic charset node; it is not a selector kind.
const charsetKind = interfaces.AttrKind("charset")

// Node is one head element: a meta, link, or script entry addressed by its
// selector (attribute kind plus value).
type Node struct {
	// Tag is the element name: "meta", "link", or "script".
	Tag string

	// Kind is the addressing attribute for meta nodes.
	Kind interfaces.AttrKind

	// Key is the selector value: the meta key, link rel, or script id.
	Key string

	// Content is the meta content, link href, or script body.
	Content string

	// Type is the script type attribute.
	Type string
}

// HeadStore is an in-memory implementation of interfaces.HeadStore. Like the
// document-backed store it assumes strictly sequential callers.
type HeadStore struct {
	title string
	nodes []*Node
}

// NewHeadStore creates an empty in-memory head.
func NewHeadStore() *HeadStore {
	return &HeadStore{}
}

// SetTitle replaces the title text
func (s *HeadStore) SetTitle(title string) {
	s.title = title
}

// Title returns the current title text
func (s *HeadStore) Title() string {
	return s.title
}

// UpsertMeta updates the meta node addressed by (kind, key) or appends one
func (s *HeadStore) UpsertMeta(kind interfaces.AttrKind, key, content string) {
	if n := s.find("meta", kind, key); n != nil {
		n.Content = content
		return
	}
	s.nodes = append(s.nodes, &Node{Tag: "meta", Kind: kind, Key: key, Content: content})
}

// MetaContent returns the content of the meta node addressed by (kind, key)
func (s *HeadStore) MetaContent(kind interfaces.AttrKind, key string) (string, bool) {
	if n := s.find("meta", kind, key); n != nil {
		return n.Content, true
	}
	return "", false
}

// UpsertLink updates the link node with the given rel or appends one
func (s *HeadStore) UpsertLink(rel, href string) {
	if n := s.find("link", "", rel); n != nil {
		n.Content = href
		return
	}
	s.nodes = append(s.nodes, &Node{Tag: "link", Key: rel, Content: href})
}

// LinkHref returns the href of the link node with the given rel
func (s *HeadStore) LinkHref(rel string) (string, bool) {
	if n := s.find("link", "", rel); n != nil {
		return n.Content, true
	}
	return "", false
}

// RemoveLink removes the link node with the given rel, if any
func (s *HeadStore) RemoveLink(rel string) {
	s.remove("link", "", rel)
}

// EnsureCharset prepends a charset node unless one already exists
func (s *HeadStore) EnsureCharset(value string) {
	for _, n := range s.nodes {
		if n.Kind == charsetKind {
			return
		}
	}
	node := &Node{Tag: "meta", Kind: charsetKind, Key: value}
	s.nodes = append([]*Node{node}, s.nodes...)
}

// Charset returns the charset value and whether a charset node exists
func (s *HeadStore) Charset() (string, bool) {
	for _, n := range s.nodes {
		if n.Kind == charsetKind {
			return n.Key, true
		}
	}
	return "", false
}

// ReplaceScript removes any script with the given id and appends a new one
func (s *HeadStore) ReplaceScript(id, scriptType, body string) {
	s.remove("script", "", id)
	s.nodes = append(s.nodes, &Node{Tag: "script", Key: id, Type: scriptType, Content: body})
}

// Script returns the script node with the given id
func (s *HeadStore) Script(id string) (*Node, bool) {
	if n := s.find("script", "", id); n != nil {
		return n, true
	}
	return nil, false
}

// RemoveScript removes the script node with the given id, if any
func (s *HeadStore) RemoveScript(id string) {
	s.remove("script", "", id)
}

// Nodes returns the head nodes in document order
func (s *HeadStore) Nodes() []*Node {
	return s.nodes
}

// find returns the node matching tag, kind, and key, or nil
func (s *HeadStore) find(tag string, kind interfaces.AttrKind, key string) *Node {
	for _, n := range s.nodes {
		if n.Tag == tag && n.Kind == kind && n.Key == key {
			return n
		}
	}
	return nil
}

// remove deletes the first node matching tag, kind, and key
func (s *HeadStore) remove(tag string, kind interfaces.AttrKind, key string) {
	for i, n := range s.nodes {
		if n.Tag == tag && n.Kind == kind && n.Key == key {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			return
		}
	}
}
