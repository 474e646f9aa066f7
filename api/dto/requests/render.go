// ABOUTME: Request DTOs for the render endpoints
// ABOUTME: Accepts string-or-array keywords and object-or-array JSON-LD at the JSON boundary

package requests

import (
	"encoding/json"

	"github.com/danielgtaylor/huma/v2"
)

// RenderRequest represents the request body for the render endpoints
type RenderRequest struct {
	// HTML is the page whose head gets reconciled
	HTML string `json:"html" required:"true" minLength:"1" doc:"HTML page to reconcile"`

	// Metadata is the ordered list of records to apply; later records win
	Metadata []MetadataRequest `json:"metadata" minItems:"1" maxItems:"50" doc:"Metadata records applied in order"`
}

// MetadataRequest mirrors the metadata record at the JSON boundary. URL and
// locale fields are passed through verbatim; the service performs no format
// validation.
type MetadataRequest struct {
	Title       string       `json:"title,omitempty" doc:"Document title, also the og:title and twitter:title fallback"`
	Description string       `json:"description,omitempty" doc:"Meta description, also the og/twitter description fallback"`
	Keywords    StringOrList `json:"keywords,omitempty" doc:"Keywords as a single string or an ordered list"`
	Canonical   string       `json:"canonical,omitempty" doc:"Canonical URL, also the og:url fallback"`
	Robots      string       `json:"robots,omitempty" doc:"Robots directive"`
	Author      string       `json:"author,omitempty" doc:"Author meta tag"`
	Viewport    string       `json:"viewport,omitempty" doc:"Viewport meta tag"`
	ThemeColor  string       `json:"themeColor,omitempty" doc:"Theme color meta tag"`
	Generator   string       `json:"generator,omitempty" doc:"Generator meta tag"`
	Language    string       `json:"language,omitempty" doc:"Language and content-language tags"`

	OGTitle       string `json:"ogTitle,omitempty" doc:"og:title when no override record sets it"`
	OGDescription string `json:"ogDescription,omitempty" doc:"og:description when no override record sets it"`
	OGType        string `json:"ogType,omitempty" doc:"og:type when no override record sets it"`
	OGURL         string `json:"ogUrl,omitempty" doc:"og:url when no override record sets it"`
	OGImage       string `json:"ogImage,omitempty" doc:"og:image when no override record sets it"`
	OGSiteName    string `json:"ogSiteName,omitempty" doc:"og:site_name when no override record sets it"`
	OGLocale      string `json:"ogLocale,omitempty" doc:"og:locale when no override record sets it"`

	TwitterCard        string `json:"twitterCard,omitempty" doc:"twitter:card when no override record sets it"`
	TwitterSite        string `json:"twitterSite,omitempty" doc:"twitter:site when no override record sets it"`
	TwitterCreator     string `json:"twitterCreator,omitempty" doc:"twitter:creator when no override record sets it"`
	TwitterTitle       string `json:"twitterTitle,omitempty" doc:"twitter:title when no override record sets it"`
	TwitterDescription string `json:"twitterDescription,omitempty" doc:"twitter:description when no override record sets it"`
	TwitterImage       string `json:"twitterImage,omitempty" doc:"twitter:image when no override record sets it"`
	TwitterImageAlt    string `json:"twitterImageAlt,omitempty" doc:"twitter:image:alt when no override record sets it"`

	OpenGraph  *OpenGraphRequest  `json:"openGraph,omitempty" doc:"Explicit Open Graph overrides; set keys always win"`
	Twitter    *TwitterRequest    `json:"twitter,omitempty" doc:"Explicit Twitter Card overrides; set keys always win"`
	CustomTags []CustomTagRequest `json:"customTags,omitempty" doc:"Arbitrary meta tags applied in order"`
	JSONLD     JSONLDValue        `json:"jsonLd,omitempty" doc:"JSON-LD payload as one object or an ordered array"`
}

// OpenGraphRequest carries explicit og: overrides
type OpenGraphRequest struct {
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	Type        string            `json:"type,omitempty"`
	URL         string            `json:"url,omitempty"`
	Image       string            `json:"image,omitempty"`
	ImageWidth  string            `json:"imageWidth,omitempty"`
	ImageHeight string            `json:"imageHeight,omitempty"`
	ImageAlt    string            `json:"imageAlt,omitempty"`
	SiteName    string            `json:"siteName,omitempty"`
	Locale      string            `json:"locale,omitempty"`
	Extra       map[string]string `json:"extra,omitempty" doc:"Arbitrary og:-prefixed properties, keyed by full tag name"`
}

// TwitterRequest carries explicit twitter: overrides
type TwitterRequest struct {
	Card        string            `json:"card,omitempty"`
	Site        string            `json:"site,omitempty"`
	Creator     string            `json:"creator,omitempty"`
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	Image       string            `json:"image,omitempty"`
	ImageAlt    string            `json:"imageAlt,omitempty"`
	Extra       map[string]string `json:"extra,omitempty" doc:"Arbitrary twitter:-prefixed properties, keyed by full tag name"`
}

// CustomTagRequest is one arbitrary head tag. Addressing resolves in fixed
// priority order: name, property, httpEquiv, charset.
type CustomTagRequest struct {
	Name      string `json:"name,omitempty"`
	Property  string `json:"property,omitempty"`
	HTTPEquiv string `json:"httpEquiv,omitempty"`
	Charset   string `json:"charset,omitempty"`
	Content   string `json:"content,omitempty"`
}

// StringOrList accepts a JSON string or an array of strings
type StringOrList struct {
	Scalar string
	List   []string
}

// UnmarshalJSON decodes either variant
func (s *StringOrList) UnmarshalJSON(data []byte) error {
	var scalar string
	if err := json.Unmarshal(data, &scalar); err == nil {
		*s = StringOrList{Scalar: scalar}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = StringOrList{List: list}
	return nil
}

// MarshalJSON encodes the variant that is set
func (s StringOrList) MarshalJSON() ([]byte, error) {
	if s.List != nil {
		return json.Marshal(s.List)
	}
	return json.Marshal(s.Scalar)
}

// Schema documents the string-or-array shape for the OpenAPI spec
func (s StringOrList) Schema(r huma.Registry) *huma.Schema {
	return &huma.Schema{
		OneOf: []*huma.Schema{
			{Type: huma.TypeString},
			{Type: huma.TypeArray, Items: &huma.Schema{Type: huma.TypeString}},
		},
	}
}

// JSONLDValue accepts a JSON object or an array of objects
type JSONLDValue struct {
	Doc  any
	Docs []any
}

// IsZero reports whether no payload was supplied
func (j JSONLDValue) IsZero() bool {
	return j.Doc == nil && len(j.Docs) == 0
}

// UnmarshalJSON decodes either variant
func (j *JSONLDValue) UnmarshalJSON(data []byte) error {
	var docs []any
	if err := json.Unmarshal(data, &docs); err == nil {
		*j = JSONLDValue{Docs: docs}
		return nil
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*j = JSONLDValue{Doc: doc}
	return nil
}

// MarshalJSON encodes the variant that is set
func (j JSONLDValue) MarshalJSON() ([]byte, error) {
	if len(j.Docs) > 0 {
		return json.Marshal(j.Docs)
	}
	return json.Marshal(j.Doc)
}

// Schema documents the object-or-array shape for the OpenAPI spec
func (j JSONLDValue) Schema(r huma.Registry) *huma.Schema {
	return &huma.Schema{
		OneOf: []*huma.Schema{
			{Type: huma.TypeObject},
			{Type: huma.TypeArray, Items: &huma.Schema{Type: huma.TypeObject}},
		},
	}
}
