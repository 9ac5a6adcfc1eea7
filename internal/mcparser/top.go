package mcparser

import (
	"github.com/humanapp/mindcraft-lang-sub000/internal/mctile"
	"github.com/humanapp/mindcraft-lang-sub000/internal/registry"
)

// ParseResult is the output of parsing one bounded tile window: the
// top-level expression list plus every diagnostic recorded along the way.
type ParseResult struct {
	Exprs []*mctile.Expr
	Diags []Diag
}

// ParseTop runs the greedy outer loop: the first expression or action call
// is always accepted, every subsequent one in the same window is wrapped in
// an error{partial} node with a diagnostic. Empty input yields a single
// empty node plus ExpectedExpressionFoundEOF.
func ParseTop(s *State, reg *registry.Bundle) []*mctile.Expr {
	var exprs []*mctile.Expr

	if s.AtEnd() {
		start := s.Index()
		s.AddDiag(Diag{Code: ExpectedExpressionFoundEOF, Message: "expected expression, found end of input", Span: mctile.Span{From: start, To: start}})
		return []*mctile.Expr{s.emptyNode(start)}
	}

	for !s.AtEnd() {
		cur, _ := s.Current()
		wasActionCall := cur.Kind == mctile.KindActuator

		var e *mctile.Expr
		if wasActionCall {
			e = parseActionCall(s, reg, Options{})
		} else {
			e = ParseExpression(s, reg, Options{})
		}

		if len(exprs) == 0 {
			exprs = append(exprs, e)
			continue
		}

		code := UnexpectedExpressionAfterExpression
		if wasActionCall {
			code = UnexpectedActionCallAfterExpression
		}
		s.AddDiag(Diag{Code: code, Message: "unexpected expression/action after expression", Span: e.Span})
		exprs = append(exprs, s.errorNode(e.Span.From, "unexpected expression/action after expression", e))
	}

	return exprs
}

// ParseBrainTiles is the single bounded entry point used by the
// suggestion engine and by tests: it parses tiles[from:to] and returns the
// complete result, guaranteed non-empty for non-empty input.
func ParseBrainTiles(tiles []*mctile.TileDef, from, to int, reg *registry.Bundle) *ParseResult {
	s := NewState(tiles, from, to)
	exprs := ParseTop(s, reg)
	return &ParseResult{Exprs: exprs, Diags: s.Diags()}
}

// ParseRule composes two bounded calls, one per rule side. It intentionally
// stops at the parser layer: attaching inferred types is the type engine's
// job (C4), composed one layer up by the public facade so that C3 never
// depends on C4.
func ParseRule(whenTiles, doTiles []*mctile.TileDef, reg *registry.Bundle) (when, do *ParseResult) {
	when = ParseBrainTiles(whenTiles, 0, len(whenTiles), reg)
	do = ParseBrainTiles(doTiles, 0, len(doTiles), reg)
	return when, do
}
