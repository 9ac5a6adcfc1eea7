package mctile

// OverloadLookup is the minimal read-only view of an operator table that the
// pure tree-walk helpers need. internal/registry's OperatorTable implements
// it; mctile itself never imports registry, so the dependency runs the
// other way: registries are consumed as opaque interfaces, not concrete
// types.
type OverloadLookup interface {
	FindOverload(op OpID, argTypes []TypeID) (result TypeID, ok bool)
}

// ConversionLookup is the minimal read-only view of a conversion graph the
// walkers need for best-effort type recovery outside a full TypeEnv pass.
type ConversionLookup interface {
	CanConvert(from, to TypeID) bool
}

// IsCompleteValueExpr reports whether e, considered as an expression
// occupying a value position, is structurally complete: no Empty/Error
// nodes anywhere along the path that would still need user input. A
// sensor/actuator node existing at all implies its required call-spec slots
// were already satisfied at parse time (a short-circuiting parse_action_call
// failure never produces one) so it is always considered complete here;
// callers that additionally care about a nested anon/parameter's own
// completeness walk Anons/Parameters themselves.
func IsCompleteValueExpr(e *Expr) bool {
	if e == nil {
		return false
	}
	switch e.Kind {
	case ExprEmpty, ExprError:
		return false
	case ExprLiteral, ExprVariable, ExprSensor, ExprModifier:
		return true
	case ExprFieldAccess:
		return IsCompleteValueExpr(e.Object)
	case ExprBinaryOp:
		return IsCompleteValueExpr(e.Left) && IsCompleteValueExpr(e.Right)
	case ExprUnaryOp:
		return IsCompleteValueExpr(e.Operand)
	case ExprAssignment:
		return IsCompleteValueExpr(e.Target) && IsCompleteValueExpr(e.Value)
	case ExprParameter:
		return e.Value != nil && IsCompleteValueExpr(e.Value)
	case ExprActuator:
		return true
	default:
		return false
	}
}

// IsParameterValueMissing reports whether a parameter slot-expr has no real
// value attached yet (the value position was reached but nothing could be
// parsed there, e.g. end of input).
func IsParameterValueMissing(e *Expr) bool {
	if e == nil || e.Kind != ExprParameter {
		return false
	}
	return e.Value == nil || e.Value.Kind == ExprEmpty
}

// TrailingPrimaryExpr returns the rightmost leaf reached by following
// right/operand/value edges. Accessors bind tighter than any operator, so a
// field_access node is itself a primary and is never descended into via its
// Object edge.
func TrailingPrimaryExpr(e *Expr) *Expr {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case ExprBinaryOp:
		return TrailingPrimaryExpr(e.Right)
	case ExprUnaryOp:
		return TrailingPrimaryExpr(e.Operand)
	case ExprAssignment:
		return TrailingPrimaryExpr(e.Value)
	case ExprError:
		if e.Partial != nil {
			return TrailingPrimaryExpr(e.Partial)
		}
		return e
	default:
		return e
	}
}

// GetExprOutputType computes the best-effort output type of e without a
// full TypeEnv. overloads/conversions may be nil, in which case operator
// nodes resolve to Unknown unless a tile already pins the type directly.
func GetExprOutputType(e *Expr, overloads OverloadLookup, conversions ConversionLookup) (TypeID, bool) {
	if e == nil {
		return TypeUnknown, false
	}
	switch e.Kind {
	case ExprLiteral:
		return e.Tile.ValueType, true
	case ExprVariable:
		return e.Tile.VarType, true
	case ExprFieldAccess:
		return e.Accessor.FieldTypeID, true
	case ExprParameter:
		return GetExprOutputType(e.Value, overloads, conversions)
	case ExprModifier:
		return TypeVoid, true
	case ExprSensor:
		return e.ActionTile.OutputType, true
	case ExprActuator:
		return TypeVoid, true
	case ExprAssignment:
		return GetExprOutputType(e.Value, overloads, conversions)
	case ExprBinaryOp:
		return binaryOutputType(e, overloads, conversions)
	case ExprUnaryOp:
		return unaryOutputType(e, overloads, conversions)
	default:
		return TypeUnknown, false
	}
}

func binaryOutputType(e *Expr, overloads OverloadLookup, conversions ConversionLookup) (TypeID, bool) {
	if overloads == nil {
		return TypeUnknown, false
	}
	lt, lok := GetExprOutputType(e.Left, overloads, conversions)
	rt, rok := GetExprOutputType(e.Right, overloads, conversions)
	if !lok || !rok {
		return TypeUnknown, false
	}
	if res, ok := overloads.FindOverload(e.OpTile.OpID, []TypeID{lt, rt}); ok {
		return res, true
	}
	if conversions != nil {
		if res, ok := overloads.FindOverload(e.OpTile.OpID, []TypeID{lt, lt}); ok && conversions.CanConvert(rt, lt) {
			return res, true
		}
		if res, ok := overloads.FindOverload(e.OpTile.OpID, []TypeID{rt, rt}); ok && conversions.CanConvert(lt, rt) {
			return res, true
		}
	}
	return TypeUnknown, false
}

func unaryOutputType(e *Expr, overloads OverloadLookup, conversions ConversionLookup) (TypeID, bool) {
	if overloads == nil {
		return TypeUnknown, false
	}
	ot, ok := GetExprOutputType(e.Operand, overloads, conversions)
	if !ok {
		return TypeUnknown, false
	}
	if res, ok := overloads.FindOverload(e.OpTile.OpID, []TypeID{ot}); ok {
		return res, true
	}
	if conversions != nil {
		for _, coerced := range []TypeID{TypeNumber, TypeBoolean, TypeString} {
			if coerced == ot {
				continue
			}
			if res, ok := overloads.FindOverload(e.OpTile.OpID, []TypeID{coerced}); ok && conversions.CanConvert(ot, coerced) {
				return res, true
			}
		}
	}
	return TypeUnknown, false
}
