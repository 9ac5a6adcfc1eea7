package registry

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// QueryCatalogJSON reads one field out of a JSON-serialized catalog
// fragment by gjson path, e.g. "tiles.3.persist". It is the read half of the
// CLI's catalog editing commands; the core registries never touch JSON
// themselves.
func QueryCatalogJSON(doc []byte, path string) gjson.Result {
	return gjson.GetBytes(doc, path)
}

// PatchCatalogJSON sets one field of a JSON-serialized catalog fragment by
// gjson/sjson path and returns the rewritten document, without round
// tripping the whole document through encoding/json.
func PatchCatalogJSON(doc []byte, path string, value any) ([]byte, error) {
	return sjson.SetBytes(doc, path, value)
}
