package suggest

import (
	"sort"

	"github.com/humanapp/mindcraft-lang-sub000/internal/mctile"
	"github.com/maruel/natural"
)

// dedupAndSort removes duplicate tile ids (first occurrence wins) from both
// buckets and stable-sorts WithConversion by ascending conversion cost.
func dedupAndSort(r *Result) {
	r.Exact = dedupByTileID(r.Exact)
	r.WithConversion = dedupByTileID(r.WithConversion)
	sort.SliceStable(r.WithConversion, func(i, j int) bool {
		return r.WithConversion[i].ConversionCost < r.WithConversion[j].ConversionCost
	})
}

func dedupByTileID(suggestions []Suggestion) []Suggestion {
	seen := make(map[mctile.TileID]bool, len(suggestions))
	out := make([]Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if s.TileDef == nil || seen[s.TileDef.TileID] {
			continue
		}
		seen[s.TileDef.TileID] = true
		out = append(out, s)
	}
	return out
}

// SortTileDefsNatural orders tile definitions by their tile id using natural
// (human) sort order, so "tile2" precedes "tile10". It is display-only,
// used only by the CLI's `catalog list` printer; the suggestion
// algorithm's own ordering rule stays insertion-order + cost-stable-sort.
func SortTileDefsNatural(defs []*mctile.TileDef) {
	sort.SliceStable(defs, func(i, j int) bool {
		return natural.Less(string(defs[i].TileID), string(defs[j].TileID))
	})
}
