package registry

import "github.com/humanapp/mindcraft-lang-sub000/internal/mctile"

// Conversion is one directed, weighted edge of the conversion graph.
type Conversion struct {
	From mctile.TypeID
	To   mctile.TypeID
	Cost int
	Name string
}

// ConversionRegistry is a directed weighted multigraph of registered
// conversions between types. FindBestPath is a FIFO breadth-first walk with
// per-node best-cost memoization; max_depth prunes by path length, and a
// cost tie is broken by the shorter path, then by first-found.
type ConversionRegistry struct {
	edges map[mctile.TypeID][]Conversion
}

func NewConversionRegistry() *ConversionRegistry {
	return &ConversionRegistry{edges: make(map[mctile.TypeID][]Conversion)}
}

// Register adds a directed conversion edge. A conversion with Cost <= 0 is
// normalized to cost 1.
func (r *ConversionRegistry) Register(c Conversion) {
	if c.Cost <= 0 {
		c.Cost = 1
	}
	r.edges[c.From] = append(r.edges[c.From], c)
}

type frontierEntry struct {
	ty   mctile.TypeID
	path []Conversion
	cost int
}

// FindBestPath finds the minimum-cost sequence of conversions from -> to.
// maxDepth <= 0 means unbounded path length. Returns (nil, true) when
// from == to (the empty path always succeeds), and (nil, false) when
// unreachable within maxDepth.
func (r *ConversionRegistry) FindBestPath(from, to mctile.TypeID, maxDepth int) ([]Conversion, bool) {
	if from == to {
		return nil, true
	}

	bestCost := map[mctile.TypeID]int{from: 0}
	queue := []frontierEntry{{ty: from, path: nil, cost: 0}}

	var best *frontierEntry

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if maxDepth > 0 && len(cur.path) >= maxDepth {
			continue
		}

		for _, edge := range r.edges[cur.ty] {
			newCost := cur.cost + edge.Cost
			if prev, seen := bestCost[edge.To]; seen && newCost >= prev {
				continue
			}
			bestCost[edge.To] = newCost
			newPath := make([]Conversion, len(cur.path)+1)
			copy(newPath, cur.path)
			newPath[len(cur.path)] = edge
			entry := frontierEntry{ty: edge.To, path: newPath, cost: newCost}
			if edge.To == to {
				if best == nil || entry.cost < best.cost || (entry.cost == best.cost && len(entry.path) < len(best.path)) {
					b := entry
					best = &b
				}
				continue
			}
			queue = append(queue, entry)
		}
	}

	if best == nil {
		return nil, false
	}
	return best.path, true
}

// CanConvert implements mctile.ConversionLookup.
func (r *ConversionRegistry) CanConvert(from, to mctile.TypeID) bool {
	_, ok := r.FindBestPath(from, to, 0)
	return ok
}
