// Package registry implements the C1 registries: the tile catalog, type
// registry, operator table, conversion graph and function (call-spec)
// registry consumed as read-only stores by the parser, type engine and
// suggestion engine.
package registry

import "github.com/humanapp/mindcraft-lang-sub000/internal/mctile"

// TileCatalog is an insertion-ordered store of tile definitions: lookup by
// id, stable iteration order for deterministic output.
type TileCatalog struct {
	defs  map[mctile.TileID]*mctile.TileDef
	order []mctile.TileID
}

func NewTileCatalog() *TileCatalog {
	return &TileCatalog{defs: make(map[mctile.TileID]*mctile.TileDef)}
}

// Register adds or replaces a tile definition. Replacing preserves the
// original position in iteration order.
func (c *TileCatalog) Register(def *mctile.TileDef) {
	if _, exists := c.defs[def.TileID]; !exists {
		c.order = append(c.order, def.TileID)
	}
	c.defs[def.TileID] = def
}

// Get looks up a tile definition by id.
func (c *TileCatalog) Get(id mctile.TileID) (*mctile.TileDef, bool) {
	d, ok := c.defs[id]
	return d, ok
}

// All returns every registered tile definition in registration order.
func (c *TileCatalog) All() []*mctile.TileDef {
	out := make([]*mctile.TileDef, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.defs[id])
	}
	return out
}

// Len reports the number of registered tiles.
func (c *TileCatalog) Len() int { return len(c.order) }
