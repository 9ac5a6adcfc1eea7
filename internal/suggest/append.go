package suggest

import (
	"github.com/humanapp/mindcraft-lang-sub000/internal/mctile"
	"github.com/humanapp/mindcraft-lang-sub000/internal/registry"
)

// suggestAppend dispatches on the shape of the trailing expression on this
// rule side to decide what can legally follow it.
func suggestAppend(ctx InsertionContext, reg *registry.Bundle) Result {
	var result Result
	e := ctx.Expr

	if e == nil || e.Kind == mctile.ExprEmpty || e.Kind == mctile.ExprError {
		suggestExpressionTiles(ctx, reg, &result, false, false)
		dedupAndSort(&result)
		return result
	}

	switch e.Kind {
	case mctile.ExprActuator, mctile.ExprSensor:
		suggestAfterActionCall(ctx, reg, e, &result)
	case mctile.ExprUnaryOp:
		if e.Operand != nil && isNonInlineActionOperand(e.Operand) {
			suggestAfterActionCall(ctx, reg, e.Operand, &result)
		} else if mctile.IsCompleteValueExpr(e) {
			suggestTrailingComplete(ctx, reg, e, &result)
		} else {
			vctx := ctx
			suggestExpressionTiles(vctx, reg, &result, true, true)
		}
	case mctile.ExprLiteral, mctile.ExprVariable, mctile.ExprBinaryOp, mctile.ExprAssignment, mctile.ExprFieldAccess:
		if mctile.IsCompleteValueExpr(e) {
			suggestTrailingComplete(ctx, reg, e, &result)
		} else {
			suggestExpressionTiles(ctx, reg, &result, true, false)
		}
	case mctile.ExprParameter, mctile.ExprModifier:
		// not a valid insertion point on its own
	}

	dedupAndSort(&result)
	return result
}

func isNonInlineActionOperand(e *mctile.Expr) bool {
	return (e.Kind == mctile.ExprSensor || e.Kind == mctile.ExprActuator) && e.ActionTile != nil && e.ActionTile.IsNonInlineSensor()
}

func suggestTrailingComplete(ctx InsertionContext, reg *registry.Bundle, e *mctile.Expr, result *Result) {
	suggestInfixOperators(ctx, reg, e, result)
	suggestCloseParen(ctx, reg, result)
	trailing := mctile.TrailingPrimaryExpr(e)
	if trailing == nil {
		return
	}
	ty, ok := mctile.GetExprOutputType(trailing, reg.Ops, reg.Conversions)
	if ok && reg.Types.IsStruct(ty) {
		suggestAccessorTiles(ctx, reg, ty, acceptedFieldTypesFor(ctx, e, reg), result)
	}
}

// acceptedFieldTypesFor derives the accepted-field-types list from the
// enclosing expression: the assignment target's type, or the RHS type
// implied by the left-hand side of a binary op via overload resolution.
func acceptedFieldTypesFor(ctx InsertionContext, e *mctile.Expr, reg *registry.Bundle) []mctile.TypeID {
	switch e.Kind {
	case mctile.ExprAssignment:
		if ty, ok := mctile.GetExprOutputType(e.Target, reg.Ops, reg.Conversions); ok {
			return []mctile.TypeID{ty}
		}
	case mctile.ExprBinaryOp:
		if e.OpTile != nil {
			if op, ok := reg.Ops.Get(e.OpTile.OpID); ok {
				lhsType, haveLHS := mctile.GetExprOutputType(e.Left, reg.Ops, reg.Conversions)
				var types []mctile.TypeID
				for _, ov := range op.Overloads() {
					if len(ov.ArgTypes) == 2 && (!haveLHS || ov.ArgTypes[0] == lhsType) {
						types = append(types, ov.ArgTypes[1])
					}
				}
				return types
			}
		}
	}
	if ctx.ExpectedType != nil {
		return []mctile.TypeID{*ctx.ExpectedType}
	}
	return nil
}

// suggestAfterActionCall implements the actuator/sensor append-mode branch:
// slot tiles while slots remain open (subject to value-pending suppression),
// then infix/close-paren/accessor once the call is trailing-complete.
func suggestAfterActionCall(ctx InsertionContext, reg *registry.Bundle, e *mctile.Expr, result *Result) {
	entry, ok := reg.Functions.Get(e.ActionTile.FnID)
	if !ok {
		return
	}

	filled := countFills(e)
	var available []registry.ArgSlot
	collectAvailableArgSlots(entry.Call.Root, entry.Call.ArgSlots, filled, &available, defaultRepeatMax, entry.Call.Root)

	anyMissingParamValue := false
	for _, s := range e.Parameters {
		if mctile.IsParameterValueMissing(s.Expr) {
			anyMissingParamValue = true
		}
	}
	anyIncompleteAnon := false
	anyStructMismatch := false
	var structMismatchTypes []mctile.TypeID
	for _, s := range e.Anons {
		if !mctile.IsCompleteValueExpr(s.Expr) {
			anyIncompleteAnon = true
			continue
		}
		if ty, ok := mctile.GetExprOutputType(s.Expr, reg.Ops, reg.Conversions); ok && reg.Types.IsStruct(ty) {
			if slot, ok := registry.SlotByID(entry.Call.ArgSlots, s.SlotID); ok {
				if expected, ok := expectedTypeOfArg(slot.ArgSpec, reg); ok && expected != ty {
					anyStructMismatch = true
					structMismatchTypes = append(structMismatchTypes, expected)
				}
			}
		}
	}

	needsSlots := len(available) > 0 || anyMissingParamValue || anyIncompleteAnon

	if anyMissingParamValue || anyIncompleteAnon || anyStructMismatch {
		suggestPendingValues(ctx, reg, entry, available, structMismatchTypes, result)
	} else if needsSlots {
		suggestCallSpecTiles(ctx, reg, available, result)
	}

	isSensorComplete := e.Kind == mctile.ExprSensor && len(available) == 0 && !anyMissingParamValue && !anyIncompleteAnon
	if hasTrailingValueExpr(e) || isSensorComplete {
		suggestTrailingComplete(ctx, reg, e, result)
	}
}

func hasTrailingValueExpr(e *mctile.Expr) bool {
	for _, s := range e.Anons {
		if s.Expr != nil && mctile.IsCompleteValueExpr(s.Expr) {
			return true
		}
	}
	return false
}

func countFills(e *mctile.Expr) map[int]int {
	filled := make(map[int]int)
	for _, s := range e.Anons {
		filled[s.SlotID]++
	}
	for _, s := range e.Parameters {
		filled[s.SlotID]++
	}
	for _, s := range e.Modifiers {
		filled[s.SlotID]++
	}
	return filled
}

func expectedTypeOfArg(spec *registry.CallSpec, reg *registry.Bundle) (mctile.TypeID, bool) {
	def, ok := reg.Tiles.Get(spec.TileID)
	if !ok || def.DataType == "" {
		return "", false
	}
	return def.DataType, true
}

// suggestCallSpecTiles offers the parameter/modifier tiles (and, for
// anonymous slots, value expression tiles) belonging to the available slots.
func suggestCallSpecTiles(ctx InsertionContext, reg *registry.Bundle, available []registry.ArgSlot, result *Result) {
	for _, slot := range available {
		if slot.ArgSpec.Anonymous {
			expected, _ := expectedTypeOfArg(slot.ArgSpec, reg)
			vctx := ctx
			vctx.ExpectedType = &expected
			suggestExpressionTiles(vctx, reg, result, true, true)
			continue
		}
		def, ok := reg.Tiles.Get(slot.ArgSpec.TileID)
		if !ok || def.Hidden {
			continue
		}
		if !def.Placement.Has(ctx.RuleSide) || !def.Requirements.Subset(ctx.AvailableCapabilities) {
			continue
		}
		result.Exact = append(result.Exact, Suggestion{TileDef: def, Compatibility: CompatUnchecked})
	}
}

// suggestPendingValues implements the value-pending suppression rule: only
// expression tiles matching the pending expected types, plus prefix
// operators whose result type matches, are offered. mismatchTypes carries
// the expected types of anon slots already filled with a struct value of
// the wrong type: those stay pending (suppressed to their expected type)
// even though the slot itself isn't open for a new fill.
func suggestPendingValues(ctx InsertionContext, reg *registry.Bundle, entry *registry.FunctionEntry, available []registry.ArgSlot, mismatchTypes []mctile.TypeID, result *Result) {
	pending := map[mctile.TypeID]bool{}
	for _, slot := range available {
		if slot.ArgSpec.Anonymous {
			if ty, ok := expectedTypeOfArg(slot.ArgSpec, reg); ok {
				pending[ty] = true
			}
		}
	}
	for _, ty := range mismatchTypes {
		pending[ty] = true
	}
	if len(pending) == 0 {
		suggestExpressionTiles(ctx, reg, result, true, true)
		return
	}
	for ty := range pending {
		t := ty
		vctx := ctx
		vctx.ExpectedType = &t
		suggestExpressionTiles(vctx, reg, result, true, true)
	}
}
