package typecheck

import (
	"fmt"

	"github.com/humanapp/mindcraft-lang-sub000/internal/mctile"
	"github.com/humanapp/mindcraft-lang-sub000/internal/registry"
)

// slotValidationMaxDepth bounds the conversion search used when validating
// an action-call slot's value against its expected type and when balancing
// binary/unary operator operand types: shallow, one conversion step allowed,
// per the conversion policy.
const slotValidationMaxDepth = 1

type visitor struct {
	reg  *registry.Bundle
	env  *TypeEnv
	diag []Diag
}

// ComputeInferredTypes runs the post-order type visitor over root, mutating
// env in place and returning every diagnostic emitted.
func ComputeInferredTypes(root *mctile.Expr, reg *registry.Bundle, env *TypeEnv) []Diag {
	v := &visitor{reg: reg, env: env}
	v.visit(root)
	return v.diag
}

func (v *visitor) emit(code DiagCode, nodeID uint32, format string, args ...any) {
	v.diag = append(v.diag, Diag{Code: code, Message: fmt.Sprintf(format, args...), NodeID: nodeID})
}

func (v *visitor) visit(e *mctile.Expr) *TypeInfo {
	if e == nil {
		return nil
	}
	info := v.env.ensure(e.NodeID)

	switch e.Kind {
	case mctile.ExprEmpty, mctile.ExprError:
		if e.Kind == mctile.ExprError && e.Partial != nil {
			v.visit(e.Partial)
		}
	case mctile.ExprLiteral:
		info.Inferred = e.Tile.ValueType
	case mctile.ExprVariable:
		info.Inferred = e.Tile.VarType
	case mctile.ExprFieldAccess:
		v.visit(e.Object)
		info.Inferred = e.Accessor.FieldTypeID
	case mctile.ExprAssignment:
		v.visitAssignment(e, info)
	case mctile.ExprBinaryOp:
		v.visitBinaryOp(e, info)
	case mctile.ExprUnaryOp:
		v.visitUnaryOp(e, info)
	case mctile.ExprParameter:
		valInfo := v.visit(e.Value)
		if valInfo != nil {
			info.Inferred = valInfo.Inferred
		}
	case mctile.ExprModifier:
		info.Inferred = mctile.TypeVoid
	case mctile.ExprActuator:
		info.Inferred = mctile.TypeVoid
		v.visitActionCall(e)
	case mctile.ExprSensor:
		if e.ActionTile != nil {
			info.Inferred = e.ActionTile.OutputType
		}
		v.visitActionCall(e)
	}

	return info
}

func (v *visitor) visitAssignment(e *mctile.Expr, info *TypeInfo) {
	targetInfo := v.visit(e.Target)
	if targetInfo != nil {
		targetInfo.IsLVal = true
	}
	valueInfo := v.visit(e.Value)
	if valueInfo == nil {
		return
	}
	info.Inferred = valueInfo.Inferred
	if targetInfo != nil && targetInfo.Inferred != mctile.TypeUnknown && valueInfo.Inferred != mctile.TypeUnknown && targetInfo.Inferred != valueInfo.Inferred {
		v.emit(DataTypeMismatch, e.NodeID, "cannot assign %s to target of type %s", valueInfo.Inferred, targetInfo.Inferred)
	}
	if targetInfo != nil {
		targetInfo.Inferred = valueInfo.Inferred
	}
}

func (v *visitor) visitBinaryOp(e *mctile.Expr, info *TypeInfo) {
	leftInfo := v.visit(e.Left)
	rightInfo := v.visit(e.Right)
	if leftInfo == nil || rightInfo == nil || e.OpTile == nil {
		return
	}
	L, R := leftInfo.Inferred, rightInfo.Inferred
	op, hasOp := v.reg.Ops.Get(e.OpTile.OpID)
	if !hasOp {
		v.emit(NoOverloadForBinaryOp, e.NodeID, "operator %s is not registered", e.OpTile.OpID)
		return
	}

	if ov, ok := op.Find([]mctile.TypeID{L, R}); ok {
		info.Overload = ov
		info.Inferred = ov.ResultType
		return
	}

	if conv, ok := v.reg.Conversions.FindBestPath(R, L, slotValidationMaxDepth); ok {
		if ov, ok := op.Find([]mctile.TypeID{L, L}); ok {
			if len(conv) > 0 {
				rightInfo.Conversion = &conv[len(conv)-1]
			}
			info.Overload = ov
			info.Inferred = ov.ResultType
			v.emit(DataTypeConverted, e.Right.NodeID, "converted right operand from %s to %s", R, L)
			return
		}
	}

	if conv, ok := v.reg.Conversions.FindBestPath(L, R, slotValidationMaxDepth); ok {
		if ov, ok := op.Find([]mctile.TypeID{R, R}); ok {
			if len(conv) > 0 {
				leftInfo.Conversion = &conv[len(conv)-1]
			}
			info.Overload = ov
			info.Inferred = ov.ResultType
			v.emit(DataTypeConverted, e.Left.NodeID, "converted left operand from %s to %s", L, R)
			return
		}
	}

	v.emit(NoOverloadForBinaryOp, e.NodeID, "no overload of %s for (%s, %s)", e.OpTile.OpID, L, R)
}

var unaryCoercionOrder = []mctile.TypeID{mctile.TypeNumber, mctile.TypeBoolean, mctile.TypeString}

func (v *visitor) visitUnaryOp(e *mctile.Expr, info *TypeInfo) {
	operandInfo := v.visit(e.Operand)
	if operandInfo == nil || e.OpTile == nil {
		return
	}
	T := operandInfo.Inferred
	op, hasOp := v.reg.Ops.Get(e.OpTile.OpID)
	if !hasOp {
		v.emit(NoOverloadForUnaryOp, e.NodeID, "operator %s is not registered", e.OpTile.OpID)
		return
	}

	if ov, ok := op.Find([]mctile.TypeID{T}); ok {
		info.Overload = ov
		info.Inferred = ov.ResultType
		return
	}

	for _, coerced := range unaryCoercionOrder {
		if coerced == T {
			continue
		}
		ov, hasOv := op.Find([]mctile.TypeID{coerced})
		if !hasOv {
			continue
		}
		conv, ok := v.reg.Conversions.FindBestPath(T, coerced, slotValidationMaxDepth)
		if !ok {
			continue
		}
		if len(conv) > 0 {
			operandInfo.Conversion = &conv[len(conv)-1]
		}
		info.Overload = ov
		info.Inferred = ov.ResultType
		v.emit(DataTypeConverted, e.Operand.NodeID, "converted operand from %s to %s", T, coerced)
		return
	}

	v.emit(NoOverloadForUnaryOp, e.NodeID, "no overload of %s for %s", e.OpTile.OpID, T)
}

// visitActionCall visits every child slot-expr of a sensor/actuator, then
// validates each anonymous and parameter slot against its declared expected
// type (including choice-group validation), per the slot validation rules.
func (v *visitor) visitActionCall(e *mctile.Expr) {
	for _, s := range e.Anons {
		v.visit(s.Expr)
	}
	for _, s := range e.Parameters {
		v.visit(s.Expr)
	}
	for _, s := range e.Modifiers {
		v.visit(s.Expr)
	}

	if e.ActionTile == nil {
		return
	}
	entry, ok := v.reg.Functions.Get(e.ActionTile.FnID)
	if !ok {
		v.emit(TileNotFound, e.NodeID, "no function entry registered for %s", e.ActionTile.FnID)
		return
	}

	validate := func(s mctile.SlotExpr) {
		v.validateSlot(e.NodeID, s, entry.Call.ArgSlots)
	}
	for _, s := range e.Anons {
		validate(s)
	}
	for _, s := range e.Parameters {
		validate(s)
	}
}

func (v *visitor) validateSlot(actionNodeID uint32, s mctile.SlotExpr, slots []registry.ArgSlot) {
	slot, ok := registry.SlotByID(slots, s.SlotID)
	if !ok {
		return
	}
	childInfo, ok := v.env.Get(s.Expr.NodeID)
	if !ok {
		return
	}
	inferred := childInfo.Inferred

	if slot.ChoiceGroup != nil {
		var expectedTypes []mctile.TypeID
		for _, sib := range slots {
			if sib.ChoiceGroup != nil && *sib.ChoiceGroup == *slot.ChoiceGroup {
				if ty, ok := expectedType(sib.ArgSpec, v.reg); ok {
					expectedTypes = append(expectedTypes, ty)
				}
			}
		}
		for _, ty := range expectedTypes {
			if ty == inferred {
				return
			}
		}
		v.emit(DataTypeMismatch, s.Expr.NodeID, "value of type %s does not match any option of the choice group %v", inferred, expectedTypes)
		return
	}

	expected, ok := expectedType(slot.ArgSpec, v.reg)
	if !ok {
		return
	}
	childInfo.Expected = expected
	if expected == inferred {
		return
	}
	if conv, ok := v.reg.Conversions.FindBestPath(inferred, expected, slotValidationMaxDepth); ok {
		if len(conv) > 0 {
			childInfo.Conversion = &conv[len(conv)-1]
		}
		v.emit(DataTypeConverted, s.Expr.NodeID, "converted slot value from %s to %s", inferred, expected)
		return
	}
	v.emit(DataTypeMismatch, s.Expr.NodeID, "expected %s, got %s", expected, inferred)
}

func expectedType(spec *registry.CallSpec, reg *registry.Bundle) (mctile.TypeID, bool) {
	def, ok := reg.Tiles.Get(spec.TileID)
	if !ok || def.DataType == "" {
		return "", false
	}
	return def.DataType, true
}
