package mcparser

import "github.com/humanapp/mindcraft-lang-sub000/internal/mctile"

// StopFunc reports whether the expression parser should stop before
// consuming the given tile.
type StopFunc func(t *mctile.TileDef) bool

// Options carries the per-call configuration threaded through
// parseExpression: a stop predicate, a minimum operator precedence for the
// LED loop, and whether adjacency to a primary-starting tile terminates the
// expression (used inside action-call argument parsing, where a bare
// juxtaposed modifier/parameter tile ends the preceding value expression
// rather than being swallowed by it).
type Options struct {
	Stop                       StopFunc
	MinOperatorPrecedence      int
	PrimaryAdjacencyTerminates bool
}

func (o Options) shouldStop(t *mctile.TileDef) bool {
	if o.Stop != nil && o.Stop(t) {
		return true
	}
	if o.PrimaryAdjacencyTerminates && IsPrimaryStart(t) {
		return true
	}
	return false
}

// IsPrimaryStart reports whether a tile begins a "primary" in the sense
// used by action-call argument boundary detection: modifier, parameter,
// open-paren, actuator, or a non-inline sensor.
func IsPrimaryStart(t *mctile.TileDef) bool {
	if t == nil {
		return false
	}
	switch t.Kind {
	case mctile.KindModifier, mctile.KindParameter, mctile.KindActuator:
		return true
	case mctile.KindControlFlow:
		return t.CFID == mctile.CFOpenParen
	case mctile.KindSensor:
		return t.IsNonInlineSensor()
	default:
		return false
	}
}

// StopAtCloseParen is the stop predicate used for a parenthesized
// sub-expression.
func StopAtCloseParen(t *mctile.TileDef) bool {
	return t.Kind == mctile.KindControlFlow && t.CFID == mctile.CFCloseParen
}
