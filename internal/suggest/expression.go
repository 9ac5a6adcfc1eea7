package suggest

import (
	"github.com/humanapp/mindcraft-lang-sub000/internal/mctile"
	"github.com/humanapp/mindcraft-lang-sub000/internal/registry"
)

// suggestExpressionTiles appends every tile that can legally start a new
// expression (or value, when valueOnly) to result. Infix operators, modifier
// / parameter / accessor tiles and close-paren never start an expression and
// are always excluded here.
func suggestExpressionTiles(ctx InsertionContext, reg *registry.Bundle, result *Result, valueOnly, allowNonInlineSensors bool) {
	insideParens := ctx.UnclosedParenDepth > 0

	for _, def := range reg.Tiles.All() {
		if def.Hidden {
			continue
		}
		if !def.Placement.Has(ctx.RuleSide) {
			continue
		}
		if !def.Requirements.Subset(ctx.AvailableCapabilities) {
			continue
		}

		switch def.Kind {
		case mctile.KindModifier, mctile.KindParameter, mctile.KindAccessor:
			continue
		case mctile.KindControlFlow:
			if def.CFID == mctile.CFCloseParen {
				continue
			}
		case mctile.KindOperator:
			if def.IsInfixOperator() {
				continue
			}
			if ctx.ExpectedType != nil {
				if !prefixOverloadMatchesResult(def, reg, *ctx.ExpectedType) {
					continue
				}
			}
		case mctile.KindSensor:
			if def.IsNonInlineSensor() {
				if (valueOnly && !allowNonInlineSensors) || insideParens {
					continue
				}
			}
		case mctile.KindActuator:
			if valueOnly || insideParens {
				continue
			}
		}

		output, hasOutput := tileOutputType(def)
		if !hasOutput {
			classifyAndBucket(def, mctile.TypeUnknown, ctx.ExpectedType, reg, result)
			continue
		}
		classifyAndBucket(def, output, ctx.ExpectedType, reg, result)
	}
}

// prefixOverloadMatchesResult reports whether op has at least one overload
// whose result type exactly equals want — no conversion matching on an
// operator's own result.
func prefixOverloadMatchesResult(def *mctile.TileDef, reg *registry.Bundle, want mctile.TypeID) bool {
	op, ok := reg.Ops.Get(def.OpID)
	if !ok {
		return false
	}
	for _, ov := range op.Overloads() {
		if ov.ResultType == want {
			return true
		}
	}
	return false
}

// tileOutputType returns the type a tile contributes when placed, per kind.
func tileOutputType(def *mctile.TileDef) (mctile.TypeID, bool) {
	switch def.Kind {
	case mctile.KindLiteral:
		return def.ValueType, true
	case mctile.KindVariable:
		return def.VarType, true
	case mctile.KindSensor:
		return def.OutputType, true
	case mctile.KindFactory:
		return def.ProducedDataType, true
	case mctile.KindPage:
		return mctile.TypeUnknown, false
	case mctile.KindOperator:
		return mctile.TypeUnknown, false
	case mctile.KindActuator:
		return mctile.TypeVoid, true
	default:
		return mctile.TypeUnknown, false
	}
}
