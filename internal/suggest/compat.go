package suggest

import (
	"github.com/humanapp/mindcraft-lang-sub000/internal/mctile"
	"github.com/humanapp/mindcraft-lang-sub000/internal/registry"
)

// classifyTypeCompatibility implements the five-tier rule: an unconstrained
// target or an Unknown output type are always Unchecked; an exact type match
// is free; otherwise the conversion graph (and, for struct outputs, each
// field's own convertibility) is consulted before giving up.
func classifyTypeCompatibility(output mctile.TypeID, expected *mctile.TypeID, reg *registry.Bundle) (Compatibility, int, bool) {
	if expected == nil || output == mctile.TypeUnknown {
		return CompatUnchecked, 0, true
	}
	e := *expected
	if output == e {
		return CompatExact, 0, true
	}
	if path, ok := reg.Conversions.FindBestPath(output, e, 0); ok {
		return CompatConversion, sumCost(path), true
	}
	if reg.Types.IsStruct(output) {
		if def, ok := reg.Types.Get(output); ok {
			bestCost := -1
			for _, f := range def.Fields {
				if f.TypeID == e {
					if bestCost == -1 || 0 < bestCost {
						bestCost = 0
					}
					continue
				}
				if path, ok := reg.Conversions.FindBestPath(f.TypeID, e, 0); ok {
					cost := sumCost(path)
					if bestCost == -1 || cost < bestCost {
						bestCost = cost
					}
				}
			}
			if bestCost != -1 {
				return CompatConversion, 1 + bestCost, true
			}
		}
	}
	return CompatUnchecked, 0, false
}

func sumCost(path []registry.Conversion) int {
	total := 0
	for _, c := range path {
		total += c.Cost
	}
	return total
}

func classifyAndBucket(def *mctile.TileDef, output mctile.TypeID, expected *mctile.TypeID, reg *registry.Bundle, result *Result) {
	compat, cost, ok := classifyTypeCompatibility(output, expected, reg)
	if !ok {
		return
	}
	s := Suggestion{TileDef: def, Compatibility: compat, ConversionCost: cost}
	if compat == CompatConversion {
		result.WithConversion = append(result.WithConversion, s)
	} else {
		result.Exact = append(result.Exact, s)
	}
}
