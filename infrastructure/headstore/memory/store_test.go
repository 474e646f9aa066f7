package memory

import (
	"testing"

	"headmeta-api/core/interfaces"
)

func TestHeadStore_UpsertMeta_CreatesElement(t *testing.T) {
	store := NewHeadStore()

	store.UpsertMeta(interfaces.AttrName, "description", "hello")

	got, ok := store.MetaContent(interfaces.AttrName, "description")
	if !ok {
		t.Fatal("meta element was not created")
	}
	if got != "hello" {
		t.Errorf("MetaContent returned %q, want %q", got, "hello")
	}
}

func TestHeadStore_UpsertMeta_UpdatesInPlace(t *testing.T) {
	store := NewHeadStore()

	store.UpsertMeta(interfaces.AttrName, "description", "first")
	store.UpsertMeta(interfaces.AttrName, "description", "second")

	if len(store.Nodes()) != 1 {
		t.Fatalf("expected 1 node, got %d", len(store.Nodes()))
	}
	got, _ := store.MetaContent(interfaces.AttrName, "description")
	if got != "second" {
		t.Errorf("MetaContent returned %q, want %q", got, "second")
	}
}

func TestHeadStore_UpsertMeta_KindsDoNotCollide(t *testing.T) {
	store := NewHeadStore()

	store.UpsertMeta(interfaces.AttrName, "og:title", "by name")
	store.UpsertMeta(interfaces.AttrProperty, "og:title", "by property")

	if len(store.Nodes()) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(store.Nodes()))
	}
	got, _ := store.MetaContent(interfaces.AttrProperty, "og:title")
	if got != "by property" {
		t.Errorf("property-addressed content is %q", got)
	}
}

func TestHeadStore_UpsertLink_CreatesAndUpdates(t *testing.T) {
	store := NewHeadStore()

	store.UpsertLink("canonical", "https://a/")
	store.UpsertLink("canonical", "https://b/")

	if len(store.Nodes()) != 1 {
		t.Fatalf("expected 1 node, got %d", len(store.Nodes()))
	}
	href, ok := store.LinkHref("canonical")
	if !ok || href != "https://b/" {
		t.Errorf("LinkHref returned %q, %v", href, ok)
	}
}

func TestHeadStore_RemoveLink_MissingIsNoop(t *testing.T) {
	store := NewHeadStore()

	store.RemoveLink("canonical")

	if len(store.Nodes()) != 0 {
		t.Error("RemoveLink on empty store should not add nodes")
	}
}

func TestHeadStore_EnsureCharset_FirstChildCreateOnce(t *testing.T) {
	store := NewHeadStore()
	store.UpsertMeta(interfaces.AttrName, "description", "hello")

	store.EnsureCharset("utf-8")
	store.EnsureCharset("latin1")

	value, ok := store.Charset()
	if !ok {
		t.Fatal("charset node was not created")
	}
	if value != "utf-8" {
		t.Errorf("charset is %q, want %q (first write wins)", value, "utf-8")
	}
	if store.Nodes()[0].Kind != "charset" {
		t.Error("charset node should be the first head child")
	}
}

func TestHeadStore_ReplaceScript_SingleInstance(t *testing.T) {
	store := NewHeadStore()

	store.ReplaceScript("jsonld", "application/ld+json", `{"@type":"A"}`)
	store.ReplaceScript("jsonld", "application/ld+json", `{"@type":"B"}`)

	count := 0
	for _, n := range store.Nodes() {
		if n.Tag == "script" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected 1 script node, got %d", count)
	}
	script, _ := store.Script("jsonld")
	if script.Content != `{"@type":"B"}` {
		t.Errorf("script body is %s", script.Content)
	}
}

func TestHeadStore_RemoveScript(t *testing.T) {
	store := NewHeadStore()
	store.ReplaceScript("jsonld", "application/ld+json", "{}")

	store.RemoveScript("jsonld")

	if _, ok := store.Script("jsonld"); ok {
		t.Error("script should be removed")
	}
	store.RemoveScript("jsonld")
}
