package registry

import "testing"

func TestPatchAndQueryCatalogJSON(t *testing.T) {
	doc := []byte(`{"tiles":[{"id":"mag","persist":false}]}`)
	patched, err := PatchCatalogJSON(doc, "tiles.0.persist", true)
	if err != nil {
		t.Fatalf("patch failed: %v", err)
	}
	got := QueryCatalogJSON(patched, "tiles.0.persist")
	if !got.Bool() {
		t.Fatal("expected persist to be true after patch")
	}
	id := QueryCatalogJSON(patched, "tiles.0.id")
	if id.String() != "mag" {
		t.Fatalf("patch should not disturb unrelated fields, got id=%q", id.String())
	}
}
