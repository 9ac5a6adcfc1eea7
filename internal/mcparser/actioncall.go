package mcparser

import (
	"math"

	"github.com/humanapp/mindcraft-lang-sub000/internal/mctile"
	"github.com/humanapp/mindcraft-lang-sub000/internal/registry"
)

// callCtx accumulates the slot-expr lists and matched condition names for
// one action-call parse. A single shared ctx is mutated directly on
// definite matches (seq children) and speculatively cloned/merged for
// backtracking attempts (choice/optional/repeat/bag), simplifying the
// source's separate ctx/outer_ctx pair into one hierarchical context: a
// clone seeded with the parent's matchedNames sees everything matched so
// far, and on success its matches (slot-exprs and names) merge back up.
type callCtx struct {
	anons        []mctile.SlotExpr
	parameters   []mctile.SlotExpr
	modifiers    []mctile.SlotExpr
	matchedNames map[string]bool
}

func newCallCtx() *callCtx {
	return &callCtx{matchedNames: map[string]bool{}}
}

func (c *callCtx) clone() *callCtx {
	names := make(map[string]bool, len(c.matchedNames))
	for k, v := range c.matchedNames {
		names[k] = v
	}
	return &callCtx{matchedNames: names}
}

func (c *callCtx) mergeFrom(tmp *callCtx) {
	c.anons = append(c.anons, tmp.anons...)
	c.parameters = append(c.parameters, tmp.parameters...)
	c.modifiers = append(c.modifiers, tmp.modifiers...)
	for k := range tmp.matchedNames {
		c.matchedNames[k] = true
	}
}

func (c *callCtx) markName(name string) {
	if name != "" {
		c.matchedNames[name] = true
	}
}

// parseActionCall consumes exactly one sensor or actuator tile and drives
// its call spec.
func parseActionCall(s *State, reg *registry.Bundle, opts Options) *mctile.Expr {
	start := s.Index()
	cur, ok := s.Current()
	if !ok || (cur.Kind != mctile.KindSensor && cur.Kind != mctile.KindActuator) {
		s.AddDiag(Diag{Code: ExpectedSensorOrActuator, Message: "expected a sensor or actuator tile", Span: mctile.Span{From: start, To: start}})
		if ok {
			s.Advance()
		}
		return s.errorNode(start, "expected a sensor or actuator tile", nil)
	}
	s.Advance()

	entry, hasEntry := reg.Functions.Get(cur.FnID)
	exprKind := mctile.ExprSensor
	if cur.Kind == mctile.KindActuator {
		exprKind = mctile.ExprActuator
	}

	if !hasEntry || entry.Call.Root == nil {
		return s.node(start, &mctile.Expr{Kind: exprKind, ActionTile: cur})
	}

	ctx := newCallCtx()
	if !parseCallSpec(s, reg, opts, entry.Call.Root, entry.Call.ArgSlots, ctx) {
		s.AddDiag(Diag{Code: ActionCallParseFailure, Message: "failed to match the action call's argument grammar", Span: mctile.Span{From: start, To: s.Index()}})
		return s.errorNode(start, "failed to match the action call's argument grammar", nil)
	}

	return s.node(start, &mctile.Expr{
		Kind:       exprKind,
		ActionTile: cur,
		Anons:      ctx.anons,
		Parameters: ctx.parameters,
		Modifiers:  ctx.modifiers,
	})
}

func parseCallSpec(s *State, reg *registry.Bundle, opts Options, spec *registry.CallSpec, argSlots []registry.ArgSlot, ctx *callCtx) bool {
	switch spec.Kind {
	case registry.SpecArg:
		return parseArgSpec(s, reg, opts, spec, argSlots, ctx)
	case registry.SpecSeq:
		for _, it := range spec.Items {
			if !parseCallSpec(s, reg, opts, it, argSlots, ctx) {
				return false
			}
		}
		return true
	case registry.SpecBag:
		return parseBag(s, reg, opts, spec, argSlots, ctx)
	case registry.SpecChoice:
		for _, option := range spec.Items {
			if tryParseWithBacktrack(s, reg, opts, option, argSlots, ctx) {
				return true
			}
		}
		return false
	case registry.SpecOptional:
		tryParseWithBacktrack(s, reg, opts, spec.Item, argSlots, ctx)
		return true
	case registry.SpecRepeat:
		max := spec.Max
		if max <= 0 {
			max = math.MaxInt32
		}
		count := 0
		for count < max {
			if !tryParseWithBacktrack(s, reg, opts, spec.Item, argSlots, ctx) {
				break
			}
			count++
		}
		return count >= spec.Min
	case registry.SpecConditional:
		if ctx.matchedNames[spec.Condition] {
			if spec.Then == nil {
				return true
			}
			return parseCallSpec(s, reg, opts, spec.Then, argSlots, ctx)
		}
		if spec.Else == nil {
			return true
		}
		return parseCallSpec(s, reg, opts, spec.Else, argSlots, ctx)
	default:
		return true
	}
}

// tryParseWithBacktrack is the backtracking-commit primitive: it saves the
// cursor, speculatively parses spec into a cloned temp context, and commits
// the temp context's matches into ctx only if at least one token was
// consumed. A zero-consume success is treated as failure.
func tryParseWithBacktrack(s *State, reg *registry.Bundle, opts Options, spec *registry.CallSpec, argSlots []registry.ArgSlot, ctx *callCtx) bool {
	cp := s.Save()
	tmp := ctx.clone()
	ok := parseCallSpec(s, reg, opts, spec, argSlots, tmp)
	if !ok || s.Index() == cp.index {
		s.Restore(cp)
		return false
	}
	ctx.mergeFrom(tmp)
	return true
}

func parseBag(s *State, reg *registry.Bundle, opts Options, spec *registry.CallSpec, argSlots []registry.ArgSlot, ctx *callCtx) bool {
	items := spec.Items
	matched := make([]bool, len(items))
	retriable := make([]bool, len(items))
	for i, it := range items {
		retriable[i] = it.HasRepeatDescendant()
	}

	for {
		progressed := false
		for i, it := range items {
			if matched[i] && !retriable[i] {
				continue
			}
			if tryParseWithBacktrack(s, reg, opts, it, argSlots, ctx) {
				matched[i] = true
				progressed = true
				break
			}
		}
		if !progressed {
			break
		}
	}

	for i, it := range items {
		if !matched[i] && !it.IsOptionalNode() {
			return false
		}
	}
	return true
}

func findSlotForArgSpec(argSlots []registry.ArgSlot, spec *registry.CallSpec) (registry.ArgSlot, bool) {
	for _, slot := range argSlots {
		if slot.ArgSpec == spec {
			return slot, true
		}
	}
	return registry.ArgSlot{}, false
}

// isExpressionStart reports whether a tile can begin a value expression,
// used to decide whether to attempt an anonymous arg slot at all (so a
// failed attempt never spuriously consumes a token via an error-recovery
// NUD branch). Modifiers, parameters and accessors can never start an
// expression, matching the exclusion list the suggestion engine applies
// when it suggests expression-position tiles.
func isExpressionStart(t *mctile.TileDef) bool {
	if t == nil {
		return false
	}
	switch t.Kind {
	case mctile.KindLiteral, mctile.KindPage, mctile.KindVariable, mctile.KindFactory, mctile.KindSensor:
		return true
	case mctile.KindOperator:
		return t.Fixity == mctile.FixityPrefix
	case mctile.KindControlFlow:
		return t.CFID == mctile.CFOpenParen
	default:
		return false
	}
}

func parseArgSpec(s *State, reg *registry.Bundle, opts Options, spec *registry.CallSpec, argSlots []registry.ArgSlot, ctx *callCtx) bool {
	slot, hasSlot := findSlotForArgSpec(argSlots, spec)
	slotID := -1
	if hasSlot {
		slotID = slot.SlotID
	}

	if spec.Anonymous {
		cur, ok := s.Current()
		if !ok || !isExpressionStart(cur) {
			return !spec.Required
		}
		tokStart := s.Index()
		subOpts := opts
		subOpts.PrimaryAdjacencyTerminates = true
		expr := ParseExpression(s, reg, subOpts)
		if s.Index() == tokStart {
			return !spec.Required
		}
		ctx.anons = append(ctx.anons, mctile.SlotExpr{SlotID: slotID, Expr: expr})
		ctx.markName(spec.Name)
		return true
	}

	cur, ok := s.Current()
	if !ok || cur.TileID != spec.TileID {
		return !spec.Required
	}
	tileDef, hasTile := reg.Tiles.Get(spec.TileID)
	if !hasTile {
		tileDef = cur
	}

	tokStart := s.Index()
	s.Advance()

	if tileDef.Kind == mctile.KindModifier {
		modExpr := s.node(tokStart, &mctile.Expr{Kind: mctile.ExprModifier, Tile: cur})
		ctx.modifiers = append(ctx.modifiers, mctile.SlotExpr{SlotID: slotID, Expr: modExpr})
		ctx.markName(spec.Name)
		return true
	}

	subOpts := opts
	subOpts.PrimaryAdjacencyTerminates = true
	value := ParseExpression(s, reg, subOpts)
	paramExpr := s.node(tokStart, &mctile.Expr{Kind: mctile.ExprParameter, Tile: cur, Value: value})
	ctx.parameters = append(ctx.parameters, mctile.SlotExpr{SlotID: slotID, Expr: paramExpr})
	ctx.markName(spec.Name)
	return true
}
