package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/humanapp/mindcraft-lang-sub000/internal/mctile"
	"github.com/humanapp/mindcraft-lang-sub000/internal/registry"
)

// ruleFile is the on-disk shape of a rule: two tile-id sequences resolved
// against a loaded catalog, standing in for the source text a text-based
// compiler CLI would read from a file.
type ruleFile struct {
	When []string `json:"when"`
	Do   []string `json:"do"`
}

func loadCatalog(path string) (*registry.Bundle, error) {
	if path == "" {
		return nil, fmt.Errorf("a --catalog manifest path is required")
	}
	return registry.LoadManifest(path)
}

func loadRule(path string) (*ruleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule file: %w", err)
	}
	var rf ruleFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing rule file: %w", err)
	}
	return &rf, nil
}

func resolveTiles(ids []string, reg *registry.Bundle) ([]*mctile.TileDef, error) {
	tiles := make([]*mctile.TileDef, 0, len(ids))
	for _, id := range ids {
		def, ok := reg.Tiles.Get(mctile.TileID(id))
		if !ok {
			return nil, fmt.Errorf("unknown tile id %q", id)
		}
		tiles = append(tiles, def)
	}
	return tiles, nil
}
