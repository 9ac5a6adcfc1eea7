package suggest

import (
	"github.com/humanapp/mindcraft-lang-sub000/internal/mctile"
	"github.com/humanapp/mindcraft-lang-sub000/internal/registry"
)

// SuggestTiles is the single entry point: replacement mode fires when
// ctx.ReplaceTileIndex points inside a non-empty ctx.Expr's span; otherwise
// this falls back to append mode. Never fails: an unresolvable context, an
// empty catalog, or unknown types simply yield an empty Result.
func SuggestTiles(ctx InsertionContext, reg *registry.Bundle) Result {
	if reg == nil {
		return Result{}
	}
	if isReplacementMode(ctx) {
		return suggestReplacement(ctx, reg)
	}
	return suggestAppend(ctx, reg)
}

func isReplacementMode(ctx InsertionContext) bool {
	if ctx.ReplaceTileIndex == nil || ctx.Expr == nil {
		return false
	}
	if ctx.Expr.Kind == mctile.ExprEmpty {
		return false
	}
	return ctx.Expr.Span.Contains(*ctx.ReplaceTileIndex)
}
