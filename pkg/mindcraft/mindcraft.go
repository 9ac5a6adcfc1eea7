// Package mindcraft is the stable public façade over the tile parser, type
// engine and suggestion engine: the single entry point an editor host or CLI
// links against, composing internal/mcparser, internal/typecheck and
// internal/suggest the way a host program would.
package mindcraft

import (
	"fmt"

	"github.com/humanapp/mindcraft-lang-sub000/internal/mcerrors"
	"github.com/humanapp/mindcraft-lang-sub000/internal/mcparser"
	"github.com/humanapp/mindcraft-lang-sub000/internal/mctile"
	"github.com/humanapp/mindcraft-lang-sub000/internal/registry"
	"github.com/humanapp/mindcraft-lang-sub000/internal/suggest"
	"github.com/humanapp/mindcraft-lang-sub000/internal/typecheck"
)

// RuleResult bundles the independently-parsed when/do sides of one rule.
type RuleResult struct {
	When *mcparser.ParseResult
	Do   *mcparser.ParseResult
}

// CompileResult bundles a RuleResult with the type diagnostics computed for
// each side's root expressions, plus the TypeEnv that now decorates them.
type CompileResult struct {
	Rule      *RuleResult
	Env       *typecheck.TypeEnv
	TypeDiags []typecheck.Diag
}

// ParseBrainTiles parses a bounded window [from, to) of a single tile
// sequence with no registry context, for the common linear-brain case where
// no action-call metadata is required. It is the thinnest possible wrapper
// over mcparser.ParseBrainTiles; callers that need call-spec resolution
// should register the tiles' functions in a Bundle and call ParseRule.
func ParseBrainTiles(tiles []*mctile.TileDef, from, to int) (*mcparser.ParseResult, error) {
	if from < 0 || from > len(tiles) || (to >= 0 && (to < from || to > len(tiles))) {
		return nil, fmt.Errorf("%w: invalid bounds [%d,%d)", mcerrors.ErrInvalidArguments, from, to)
	}
	return mcparser.ParseBrainTiles(tiles, from, to, registry.NewBundle()), nil
}

// ParseRule parses a rule's when/do tile sequences independently against the
// given registry bundle.
func ParseRule(when, do []*mctile.TileDef, reg *registry.Bundle) (*RuleResult, error) {
	if reg == nil {
		return nil, fmt.Errorf("%w: nil registry bundle", mcerrors.ErrInvalidArguments)
	}
	whenResult, doResult := mcparser.ParseRule(when, do, reg)
	return &RuleResult{When: whenResult, Do: doResult}, nil
}

// ComputeInferredTypes runs the type engine over root, mutating env in place
// and returning every diagnostic emitted.
func ComputeInferredTypes(root *mctile.Expr, reg *registry.Bundle, env *typecheck.TypeEnv) []typecheck.Diag {
	if root == nil || reg == nil || env == nil {
		return nil
	}
	return typecheck.ComputeInferredTypes(root, reg, env)
}

// SuggestTiles is a direct pass-through to the suggestion engine, kept here
// so a host only ever imports pkg/mindcraft.
func SuggestTiles(ctx suggest.InsertionContext, reg *registry.Bundle) suggest.Result {
	return suggest.SuggestTiles(ctx, reg)
}

// ParseTilesForSuggestions parses a tile sequence with no registry context,
// for callers (typically the suggestion engine's own host) that only need
// the AST shape to derive an InsertionContext and don't yet have a Bundle at
// hand. Action calls with unresolvable call specs degrade to bare nodes with
// no slots, per mcparser's no-function-entry fallback.
func ParseTilesForSuggestions(tiles []*mctile.TileDef) *mctile.Expr {
	result := mcparser.ParseBrainTiles(tiles, 0, -1, registry.NewBundle())
	if len(result.Exprs) == 0 {
		return nil
	}
	return result.Exprs[0]
}

// CountUnclosedParens is a direct pass-through to the suggestion engine's
// paren-depth scan.
func CountUnclosedParens(tiles []*mctile.TileDef, exclude *int) int {
	return suggest.CountUnclosedParens(tiles, exclude)
}

// GetTileOutputType returns the type a tile contributes when placed in an
// expression, if it has one (operators and control-flow tiles do not).
func GetTileOutputType(def *mctile.TileDef) (mctile.TypeID, bool) {
	if def == nil {
		return mctile.TypeUnknown, false
	}
	switch def.Kind {
	case mctile.KindLiteral:
		return def.ValueType, true
	case mctile.KindVariable:
		return def.VarType, true
	case mctile.KindSensor:
		return def.OutputType, true
	case mctile.KindFactory:
		return def.ProducedDataType, true
	case mctile.KindActuator:
		return mctile.TypeVoid, true
	default:
		return mctile.TypeUnknown, false
	}
}

// Compile chains ParseRule and ComputeInferredTypes across both rule sides,
// the editor host's most common single call: parse, then type, then hand
// back one report covering both diagnostic spaces.
func Compile(when, do []*mctile.TileDef, reg *registry.Bundle) (*CompileResult, error) {
	rule, err := ParseRule(when, do, reg)
	if err != nil {
		return nil, err
	}

	env := typecheck.NewTypeEnv()
	var diags []typecheck.Diag
	for _, e := range rule.When.Exprs {
		diags = append(diags, typecheck.ComputeInferredTypes(e, reg, env)...)
	}
	for _, e := range rule.Do.Exprs {
		diags = append(diags, typecheck.ComputeInferredTypes(e, reg, env)...)
	}

	return &CompileResult{Rule: rule, Env: env, TypeDiags: diags}, nil
}
