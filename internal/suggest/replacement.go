package suggest

import (
	"github.com/humanapp/mindcraft-lang-sub000/internal/mctile"
	"github.com/humanapp/mindcraft-lang-sub000/internal/registry"
)

type roleKind int

const (
	roleExpressionPosition roleKind = iota
	roleValue
	roleInfixOperator
	rolePrefixOperator
	roleActionCallArg
	roleAccessorPosition
)

type role struct {
	kind          roleKind
	expectedType  *mctile.TypeID
	leftExpr      *mctile.Expr
	actionExpr    *mctile.Expr
	excludeSlotID *int
	structTypeID  mctile.TypeID
}

// suggestReplacement derives the role of the tile at ctx.ReplaceTileIndex by
// walking the AST, then dispatches to the matching suggestion function.
func suggestReplacement(ctx InsertionContext, reg *registry.Bundle) Result {
	var result Result
	idx := *ctx.ReplaceTileIndex
	r := deriveRole(ctx.Expr, idx, ctx.ExpectedType, false)

	switch r.kind {
	case roleExpressionPosition:
		suggestExpressionTiles(ctx, reg, &result, false, false)
	case roleValue:
		vctx := ctx
		vctx.ExpectedType = r.expectedType
		suggestExpressionTiles(vctx, reg, &result, true, true)
	case roleInfixOperator:
		suggestInfixOperators(ctx, reg, r.leftExpr, &result)
	case rolePrefixOperator:
		suggestExpressionTiles(ctx, reg, &result, false, false)
	case roleActionCallArg:
		if r.actionExpr != nil && r.actionExpr.ActionTile != nil {
			entry, ok := reg.Functions.Get(r.actionExpr.ActionTile.FnID)
			if ok {
				filled := countFills(r.actionExpr)
				if r.excludeSlotID != nil && filled[*r.excludeSlotID] > 0 {
					filled[*r.excludeSlotID]--
				}
				var available []registry.ArgSlot
				collectAvailableArgSlots(entry.Call.Root, entry.Call.ArgSlots, filled, &available, defaultRepeatMax, entry.Call.Root)
				suggestCallSpecTiles(ctx, reg, available, &result)
			}
		}
	case roleAccessorPosition:
		suggestAccessorTiles(ctx, reg, r.structTypeID, nil, &result)
	}

	dedupAndSort(&result)
	return result
}

// deriveRole walks e looking for the node whose span contains index,
// classifying the gap between an operator/accessor tile and its children as
// the operator/accessor position itself. hasParent is false only for the
// initial call from suggestReplacement: a leaf reached with hasParent still
// false is the entire root expression, not a value nested in some slot, and
// is classified as expression_position rather than value.
func deriveRole(e *mctile.Expr, index int, outerExpected *mctile.TypeID, hasParent bool) role {
	if e == nil || !e.Span.Contains(index) {
		return role{kind: roleExpressionPosition}
	}

	switch e.Kind {
	case mctile.ExprBinaryOp:
		if e.Left != nil && e.Left.Span.Contains(index) {
			return deriveRole(e.Left, index, outerExpected, true)
		}
		if e.Right != nil && e.Right.Span.Contains(index) {
			return deriveRole(e.Right, index, outerExpected, true)
		}
		return role{kind: roleInfixOperator, leftExpr: e.Left}
	case mctile.ExprUnaryOp:
		if e.Operand != nil && e.Operand.Span.Contains(index) {
			return deriveRole(e.Operand, index, outerExpected, true)
		}
		return role{kind: rolePrefixOperator}
	case mctile.ExprAssignment:
		if e.Target != nil && e.Target.Span.Contains(index) {
			return deriveRole(e.Target, index, outerExpected, true)
		}
		if e.Value != nil && e.Value.Span.Contains(index) {
			return deriveRole(e.Value, index, outerExpected, true)
		}
		return role{kind: roleInfixOperator, leftExpr: e.Target}
	case mctile.ExprFieldAccess:
		if e.Object != nil && e.Object.Span.Contains(index) {
			return deriveRole(e.Object, index, outerExpected, true)
		}
		structType := mctile.TypeUnknown
		if e.Object != nil {
			if ty, ok := mctile.GetExprOutputType(e.Object, nil, nil); ok {
				structType = ty
			}
		}
		return role{kind: roleAccessorPosition, structTypeID: structType}
	case mctile.ExprParameter:
		if e.Value != nil && e.Value.Span.Contains(index) {
			var expected *mctile.TypeID
			if e.Tile != nil && e.Tile.DataType != "" {
				t := e.Tile.DataType
				expected = &t
			}
			return deriveRole(e.Value, index, expected, true)
		}
		return role{kind: roleActionCallArg}
	case mctile.ExprModifier:
		return role{kind: roleActionCallArg}
	case mctile.ExprActuator, mctile.ExprSensor:
		if e.ActionTile != nil && e.Span.From == index {
			return role{kind: roleExpressionPosition}
		}
		for _, s := range e.Anons {
			if s.Expr != nil && s.Expr.Span.Contains(index) {
				sid := s.SlotID
				if s.Expr.Kind == mctile.ExprEmpty || s.Expr.Span == (mctile.Span{}) {
					return role{kind: roleActionCallArg, actionExpr: e, excludeSlotID: &sid}
				}
				return deriveRole(s.Expr, index, outerExpected, true)
			}
		}
		for _, s := range e.Parameters {
			if s.Expr != nil && s.Expr.Span.Contains(index) {
				return deriveRole(s.Expr, index, outerExpected, true)
			}
		}
		for _, s := range e.Modifiers {
			if s.Expr != nil && s.Expr.Span.Contains(index) {
				sid := s.SlotID
				return role{kind: roleActionCallArg, actionExpr: e, excludeSlotID: &sid}
			}
		}
		return role{kind: roleActionCallArg, actionExpr: e}
	case mctile.ExprError:
		if e.Partial != nil {
			return deriveRole(e.Partial, index, outerExpected, hasParent)
		}
		return role{kind: roleExpressionPosition}
	default:
		if !hasParent {
			return role{kind: roleExpressionPosition}
		}
		return role{kind: roleValue, expectedType: outerExpected}
	}
}
