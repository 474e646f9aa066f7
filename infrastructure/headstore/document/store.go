// ABOUTME: Document-backed head store over a parsed goquery document
// ABOUTME: Implements selector-keyed upserts against a live HTML head

package document

import (
	"bytes"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	coreerrors "headmeta-api/core/errors"
	"headmeta-api/core/interfaces"
)

// HeadStore mutates the head of a parsed HTML document. It assumes strictly
// sequential callers, matching the run-to-completion reconciliation model.
type HeadStore struct {
	doc  *goquery.Document
	head *goquery.Selection
}

// NewHeadStore parses an HTML page and binds a store to its head element.
// A page without a head is a precondition violation and fails fast.
func NewHeadStore(page io.Reader) (*HeadStore, error) {
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to parse document")
	}

	head := doc.Find("head").First()
	if head.Length() == 0 {
		return nil, &coreerrors.InvalidDocumentError{Reason: "no head element"}
	}

	return &HeadStore{doc: doc, head: head}, nil
}

// SetTitle replaces the title text, creating the title element when absent
func (s *HeadStore) SetTitle(title string) {
	existing := s.head.Find("title").First()
	if existing.Length() > 0 {
		existing.SetText(title)
		return
	}

	node := newElement(atom.Title, "title", nil)
	node.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	s.head.AppendNodes(node)
}

// UpsertMeta updates the meta element addressed by (kind, key) or creates it
func (s *HeadStore) UpsertMeta(kind interfaces.AttrKind, key, content string) {
	existing := s.head.Find(attrSelector("meta", string(kind), key)).First()
	if existing.Length() > 0 {
		existing.SetAttr("content", content)
		return
	}

	node := newElement(atom.Meta, "meta", []html.Attribute{
		{Key: string(kind), Val: key},
		{Key: "content", Val: content},
	})
	s.head.AppendNodes(node)
}

// MetaContent returns the content of the meta element addressed by (kind, key)
func (s *HeadStore) MetaContent(kind interfaces.AttrKind, key string) (string, bool) {
	existing := s.head.Find(attrSelector("meta", string(kind), key)).First()
	if existing.Length() == 0 {
		return "", false
	}
	return existing.Attr("content")
}

// UpsertLink updates the link element with the given rel or creates it
func (s *HeadStore) UpsertLink(rel, href string) {
	existing := s.head.Find(attrSelector("link", "rel", rel)).First()
	if existing.Length() > 0 {
		existing.SetAttr("href", href)
		return
	}

	node := newElement(atom.Link, "link", []html.Attribute{
		{Key: "rel", Val: rel},
		{Key: "href", Val: href},
	})
	s.head.AppendNodes(node)
}

// RemoveLink removes the link element with the given rel, if any
func (s *HeadStore) RemoveLink(rel string) {
	s.head.Find(attrSelector("link", "rel", rel)).Remove()
}

// EnsureCharset creates a charset meta as the first head child unless one
// already exists. Charset declarations must precede other head content.
func (s *HeadStore) EnsureCharset(value string) {
	if s.head.Find("meta[charset]").Length() > 0 {
		return
	}

	node := newElement(atom.Meta, "meta", []html.Attribute{
		{Key: "charset", Val: value},
	})
	s.head.PrependNodes(node)
}

// ReplaceScript removes any script with the given id and appends a new one
func (s *HeadStore) ReplaceScript(id, scriptType, body string) {
	s.RemoveScript(id)

	node := newElement(atom.Script, "script", []html.Attribute{
		{Key: "type", Val: scriptType},
		{Key: "id", Val: id},
	})
	node.AppendChild(&html.Node{Type: html.TextNode, Data: body})
	s.head.AppendNodes(node)
}

// RemoveScript removes the script with the given id, if any
func (s *HeadStore) RemoveScript(id string) {
	s.head.Find(attrSelector("script", "id", id)).Remove()
}

// Render writes the whole document, including the doctype
func (s *HeadStore) Render(w io.Writer) error {
	return html.Render(w, s.doc.Nodes[0])
}

// RenderHead writes only the head element
func (s *HeadStore) RenderHead(w io.Writer) error {
	return html.Render(w, s.head.Nodes[0])
}

// HTML returns the serialized document as a byte slice
func (s *HeadStore) HTML() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Parser builds document stores from raw pages. It satisfies
// interfaces.DocumentParser for the render service.
type Parser struct{}

// NewParser creates a document parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse implements interfaces.DocumentParser
func (p *Parser) Parse(page []byte) (interfaces.DocumentStore, error) {
	return NewHeadStore(bytes.NewReader(page))
}

// attrSelector builds an attribute-equality selector like meta[name="x"].
func attrSelector(tag, attr, value string) string {
	return fmt.Sprintf(`%s[%s=%q]`, tag, attr, value)
}

// newElement builds an element node with the given attributes.
func newElement(a atom.Atom, data string, attrs []html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     data,
		Attr:     attrs,
	}
}
