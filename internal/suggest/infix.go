package suggest

import (
	"github.com/humanapp/mindcraft-lang-sub000/internal/mctile"
	"github.com/humanapp/mindcraft-lang-sub000/internal/registry"
)

// suggestInfixOperators keeps an operator tile iff it is infix and, when the
// LHS type is known, some overload's first arg type equals it exactly — no
// conversion-based matching for operators. An unknown LHS type keeps every
// infix operator as Unchecked for backward compatibility.
func suggestInfixOperators(ctx InsertionContext, reg *registry.Bundle, lhs *mctile.Expr, result *Result) {
	lhsType, haveLHS := mctile.GetExprOutputType(lhs, reg.Ops, reg.Conversions)

	for _, def := range reg.Tiles.All() {
		if def.Hidden || def.Kind != mctile.KindOperator || !def.IsInfixOperator() {
			continue
		}
		if !def.Placement.Has(ctx.RuleSide) || !def.Requirements.Subset(ctx.AvailableCapabilities) {
			continue
		}
		if def.IsAssignOperator() && !isLValue(lhs) {
			continue
		}
		if !haveLHS {
			result.Exact = append(result.Exact, Suggestion{TileDef: def, Compatibility: CompatUnchecked})
			continue
		}
		op, ok := reg.Ops.Get(def.OpID)
		if !ok {
			continue
		}
		matched := false
		for _, ov := range op.Overloads() {
			if len(ov.ArgTypes) > 0 && ov.ArgTypes[0] == lhsType {
				matched = true
				break
			}
		}
		if matched {
			result.Exact = append(result.Exact, Suggestion{TileDef: def, Compatibility: CompatExact})
		}
	}
}

func isLValue(e *mctile.Expr) bool {
	if e == nil {
		return false
	}
	switch e.Kind {
	case mctile.ExprVariable:
		return true
	case mctile.ExprFieldAccess:
		return e.Accessor != nil && !e.Accessor.ReadOnly
	default:
		return false
	}
}

// suggestAccessorTiles offers accessor tiles keyed on the struct type of the
// trailing primary expression, filtered by a list of field types the
// enclosing context would accept.
func suggestAccessorTiles(ctx InsertionContext, reg *registry.Bundle, structType mctile.TypeID, acceptedFieldTypes []mctile.TypeID, result *Result) {
	for _, def := range reg.Tiles.All() {
		if def.Hidden || def.Kind != mctile.KindAccessor {
			continue
		}
		if def.StructTypeID != structType {
			continue
		}
		if !def.Placement.Has(ctx.RuleSide) || !def.Requirements.Subset(ctx.AvailableCapabilities) {
			continue
		}
		if len(acceptedFieldTypes) == 0 {
			classifyAndBucket(def, def.FieldTypeID, nil, reg, result)
			continue
		}
		best := Suggestion{}
		found := false
		for _, want := range acceptedFieldTypes {
			w := want
			compat, cost, ok := classifyTypeCompatibility(def.FieldTypeID, &w, reg)
			if !ok {
				continue
			}
			if !found || compat < best.Compatibility || (compat == best.Compatibility && cost < best.ConversionCost) {
				best = Suggestion{TileDef: def, Compatibility: compat, ConversionCost: cost}
				found = true
			}
		}
		if !found {
			continue
		}
		if best.Compatibility == CompatConversion {
			result.WithConversion = append(result.WithConversion, best)
		} else {
			result.Exact = append(result.Exact, best)
		}
	}
}

// suggestCloseParen adds the CloseParen control-flow tile, Unchecked and
// free, whenever the current expression is complete inside an open paren.
func suggestCloseParen(ctx InsertionContext, reg *registry.Bundle, result *Result) {
	if ctx.UnclosedParenDepth <= 0 {
		return
	}
	for _, def := range reg.Tiles.All() {
		if def.Kind == mctile.KindControlFlow && def.CFID == mctile.CFCloseParen {
			result.Exact = append(result.Exact, Suggestion{TileDef: def, Compatibility: CompatUnchecked})
			return
		}
	}
}

// CountUnclosedParens is a linear OpenParen/CloseParen stack scan, clamped
// at zero, optionally skipping one index (the tile currently being edited).
func CountUnclosedParens(tiles []*mctile.TileDef, exclude *int) int {
	depth := 0
	for i, t := range tiles {
		if exclude != nil && i == *exclude {
			continue
		}
		if t.Kind != mctile.KindControlFlow {
			continue
		}
		switch t.CFID {
		case mctile.CFOpenParen:
			depth++
		case mctile.CFCloseParen:
			if depth > 0 {
				depth--
			}
		}
	}
	return depth
}
