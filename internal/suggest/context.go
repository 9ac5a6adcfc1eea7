// Package suggest implements the C5 suggestion engine: a pure function from
// an insertion point in a partially-built rule to the set of tiles that can
// legally be placed there. It has no analogue anywhere in the reference
// corpus (no retrieved repo implements editor-style completion), so the
// algorithm here is built directly from first principles in the idiom the
// rest of this module already uses: pure functions over an explicit
// read-only *registry.Bundle, same error-never-fails discipline as the parser and
// type engine.
package suggest

import (
	"github.com/humanapp/mindcraft-lang-sub000/internal/mctile"
)

// InsertionContext describes one candidate insertion point: either an empty
// slot at the end of a rule side (append mode) or an existing tile index
// being edited in place (replacement mode).
type InsertionContext struct {
	RuleSide              mctile.Placement
	ExpectedType          *mctile.TypeID
	Expr                  *mctile.Expr
	ReplaceTileIndex      *int
	AvailableCapabilities mctile.CapabilitySet
	UnclosedParenDepth    int
}

// Compatibility classifies how well a candidate tile's output type matches
// the context's expected type.
type Compatibility int

const (
	CompatExact Compatibility = iota
	CompatConversion
	CompatUnchecked
)

func (c Compatibility) String() string {
	switch c {
	case CompatExact:
		return "exact"
	case CompatConversion:
		return "conversion"
	case CompatUnchecked:
		return "unchecked"
	default:
		return "compat(?)"
	}
}

// Suggestion is one candidate tile offered at an insertion point.
type Suggestion struct {
	TileDef        *mctile.TileDef
	Compatibility  Compatibility
	ConversionCost int
}

// Result is the bucketed suggestion set: exact matches (and anything with no
// type constraint to violate) separate from matches that require an implicit
// conversion.
type Result struct {
	Exact          []Suggestion
	WithConversion []Suggestion
}
