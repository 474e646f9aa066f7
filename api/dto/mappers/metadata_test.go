package mappers

import (
	"testing"

	"headmeta-api/api/dto/requests"
)

func TestToMetadata_FlatFields(t *testing.T) {
	req := &requests.MetadataRequest{
		Title:       "Page",
		Description: "About the page",
		Keywords:    requests.StringOrList{List: []string{"go", "http"}},
		Canonical:   "https://example.com/page",
		Robots:      "noindex",
		Author:      "Jane",
		Viewport:    "width=device-width",
		ThemeColor:  "#112233",
		Generator:   "headmeta",
		Language:    "en",
	}

	record := ToMetadata(req)

	if record.Title != "Page" {
		t.Errorf("Title = %q, want Page", record.Title)
	}

	if record.Description != "About the page" {
		t.Errorf("Description = %q, want About the page", record.Description)
	}

	if record.Keywords.Format() != "go, http" {
		t.Errorf("Keywords.Format() = %q, want %q", record.Keywords.Format(), "go, http")
	}

	if record.Canonical != "https://example.com/page" {
		t.Errorf("Canonical = %q, want the request URL", record.Canonical)
	}

	if record.Robots != "noindex" || record.Author != "Jane" || record.Language != "en" {
		t.Errorf("flat fields not mapped: %+v", record)
	}
}

func TestToMetadata_NamespaceFields(t *testing.T) {
	req := &requests.MetadataRequest{
		OGTitle:      "OG Flat",
		TwitterCard:  "summary",
		TwitterImage: "https://example.com/t.png",
		OpenGraph: &requests.OpenGraphRequest{
			Title: "OG Override",
			Extra: map[string]string{"og:video": "v.mp4"},
		},
		Twitter: &requests.TwitterRequest{
			Creator: "@jane",
		},
	}

	record := ToMetadata(req)

	if record.OGTitle != "OG Flat" {
		t.Errorf("OGTitle = %q, want OG Flat", record.OGTitle)
	}

	if record.OpenGraph == nil || record.OpenGraph.Title != "OG Override" {
		t.Errorf("OpenGraph override not mapped: %+v", record.OpenGraph)
	}

	if record.OpenGraph.Extra["og:video"] != "v.mp4" {
		t.Errorf("OpenGraph.Extra not mapped: %+v", record.OpenGraph.Extra)
	}

	if record.Twitter == nil || record.Twitter.Creator != "@jane" {
		t.Errorf("Twitter override not mapped: %+v", record.Twitter)
	}

	if record.TwitterCard != "summary" || record.TwitterImage != "https://example.com/t.png" {
		t.Errorf("flat twitter fields not mapped: %+v", record)
	}
}

func TestToMetadata_CustomTagsAndJSONLD(t *testing.T) {
	req := &requests.MetadataRequest{
		CustomTags: []requests.CustomTagRequest{
			{Name: "robots", Content: "noindex"},
			{Charset: "utf-8"},
		},
		JSONLD: requests.JSONLDValue{Docs: []any{map[string]any{"@type": "Article"}}},
	}

	record := ToMetadata(req)

	if len(record.CustomTags) != 2 {
		t.Fatalf("CustomTags length = %d, want 2", len(record.CustomTags))
	}

	if record.CustomTags[0].Name != "robots" || record.CustomTags[0].Content != "noindex" {
		t.Errorf("CustomTags[0] = %+v, want robots/noindex", record.CustomTags[0])
	}

	if record.CustomTags[1].Charset != "utf-8" {
		t.Errorf("CustomTags[1].Charset = %q, want utf-8", record.CustomTags[1].Charset)
	}

	if record.JSONLD.IsZero() {
		t.Error("JSONLD should not be zero")
	}

	if len(record.JSONLD.Docs) != 1 {
		t.Errorf("JSONLD.Docs length = %d, want 1", len(record.JSONLD.Docs))
	}
}

func TestToMetadata_NilInput(t *testing.T) {
	record := ToMetadata(nil)

	if record.Title != "" || record.OpenGraph != nil || record.Twitter != nil {
		t.Errorf("nil request should map to a zero record: %+v", record)
	}
}

func TestToMetadataList_PreservesOrder(t *testing.T) {
	reqs := []requests.MetadataRequest{
		{Title: "First"},
		{Title: "Second"},
	}

	records := ToMetadataList(reqs)

	if len(records) != 2 {
		t.Fatalf("records length = %d, want 2", len(records))
	}

	if records[0].Title != "First" || records[1].Title != "Second" {
		t.Errorf("order not preserved: %+v", records)
	}
}
