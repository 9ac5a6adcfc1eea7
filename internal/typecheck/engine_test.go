package typecheck

import (
	"testing"

	"github.com/humanapp/mindcraft-lang-sub000/internal/mctile"
	"github.com/humanapp/mindcraft-lang-sub000/internal/registry"
)

func literalExpr(id uint32, ty mctile.TypeID, n float64) *mctile.Expr {
	return &mctile.Expr{
		NodeID: id,
		Kind:   mctile.ExprLiteral,
		Tile:   &mctile.TileDef{TileID: "num", Kind: mctile.KindLiteral, ValueType: ty, Value: mctile.NumberValue(n)},
	}
}

func variableExpr(id uint32, ty mctile.TypeID) *mctile.Expr {
	return &mctile.Expr{
		NodeID: id,
		Kind:   mctile.ExprVariable,
		Tile:   &mctile.TileDef{TileID: "$v", Kind: mctile.KindVariable, VarName: "v", VarType: ty},
	}
}

func numberStringBundle() *registry.Bundle {
	reg := registry.NewBundle()
	reg.Ops.Register(&registry.RegisteredOperator{
		OpID:   "+",
		Fixity: mctile.FixityInfix,
		Overloads_: []registry.OpOverload{
			{ArgTypes: []mctile.TypeID{mctile.TypeNumber, mctile.TypeNumber}, ResultType: mctile.TypeNumber},
			{ArgTypes: []mctile.TypeID{mctile.TypeString, mctile.TypeString}, ResultType: mctile.TypeString},
		},
	})
	reg.Conversions.Register(registry.Conversion{From: mctile.TypeNumber, To: mctile.TypeString, Cost: 1, Name: "number_to_string"})
	return reg
}

func TestExactOverloadRequiresNoConversion(t *testing.T) {
	reg := numberStringBundle()
	env := NewTypeEnv()
	left := literalExpr(1, mctile.TypeNumber, 1)
	right := literalExpr(2, mctile.TypeNumber, 2)
	root := &mctile.Expr{
		NodeID: 3, Kind: mctile.ExprBinaryOp,
		OpTile: &mctile.TileDef{TileID: "+", Kind: mctile.KindOperator, OpID: "+"},
		Left:   left, Right: right,
	}
	diags := ComputeInferredTypes(root, reg, env)
	if len(diags) != 0 {
		t.Fatalf("expected zero diagnostics for exact overload, got %v", diags)
	}
	info, _ := env.Get(3)
	if info.Inferred != mctile.TypeNumber {
		t.Fatalf("expected Number, got %v", info.Inferred)
	}
	if info.Overload == nil {
		t.Fatal("expected overload to be recorded")
	}
	leftInfo, _ := env.Get(1)
	rightInfo, _ := env.Get(2)
	if leftInfo.Conversion != nil || rightInfo.Conversion != nil {
		t.Fatal("exact overload match must not record a conversion on either side")
	}
}

func TestBinaryOpConvertsCheaperSideOnly(t *testing.T) {
	reg := numberStringBundle()
	env := NewTypeEnv()
	left := literalExpr(1, mctile.TypeString, 0)
	left.Tile.Value = mctile.StringValue("hi")
	right := literalExpr(2, mctile.TypeNumber, 5)
	root := &mctile.Expr{
		NodeID: 3, Kind: mctile.ExprBinaryOp,
		OpTile: &mctile.TileDef{TileID: "+", Kind: mctile.KindOperator, OpID: "+"},
		Left:   left, Right: right,
	}
	diags := ComputeInferredTypes(root, reg, env)
	foundConverted := false
	for _, d := range diags {
		if d.Code == DataTypeConverted {
			foundConverted = true
		}
	}
	if !foundConverted {
		t.Fatalf("expected a DataTypeConverted diagnostic, got %v", diags)
	}
	rootInfo, _ := env.Get(3)
	if rootInfo.Inferred != mctile.TypeString {
		t.Fatalf("expected String result (via right-hand coercion), got %v", rootInfo.Inferred)
	}
	leftInfo, _ := env.Get(1)
	rightInfo, _ := env.Get(2)
	convertedCount := 0
	if leftInfo.Conversion != nil {
		convertedCount++
	}
	if rightInfo.Conversion != nil {
		convertedCount++
	}
	if convertedCount != 1 {
		t.Fatalf("expected exactly one side to carry a conversion, got %d", convertedCount)
	}
	if rightInfo.Conversion == nil {
		t.Fatal("expected the number operand to be the one converted, not the string operand")
	}
}

func TestNoOverloadEmitsDiagnostic(t *testing.T) {
	reg := numberStringBundle()
	env := NewTypeEnv()
	left := literalExpr(1, mctile.TypeBoolean, 0)
	right := literalExpr(2, mctile.TypeBoolean, 0)
	root := &mctile.Expr{
		NodeID: 3, Kind: mctile.ExprBinaryOp,
		OpTile: &mctile.TileDef{TileID: "+", Kind: mctile.KindOperator, OpID: "+"},
		Left:   left, Right: right,
	}
	diags := ComputeInferredTypes(root, reg, env)
	if len(diags) != 1 || diags[0].Code != NoOverloadForBinaryOp {
		t.Fatalf("expected a single NoOverloadForBinaryOp diagnostic, got %v", diags)
	}
}

func TestAssignmentNarrowsTargetType(t *testing.T) {
	reg := registry.NewBundle()
	env := NewTypeEnv()
	target := variableExpr(1, mctile.TypeUnknown)
	value := literalExpr(2, mctile.TypeNumber, 7)
	root := &mctile.Expr{NodeID: 3, Kind: mctile.ExprAssignment, Target: target, Value: value}
	diags := ComputeInferredTypes(root, reg, env)
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
	targetInfo, _ := env.Get(1)
	if !targetInfo.IsLVal {
		t.Fatal("expected assignment target to be marked as an l-value")
	}
	if targetInfo.Inferred != mctile.TypeNumber {
		t.Fatalf("expected target's inferred type to narrow to Number, got %v", targetInfo.Inferred)
	}
}

func TestAssignmentMismatchEmitsDiagnostic(t *testing.T) {
	reg := registry.NewBundle()
	env := NewTypeEnv()
	target := variableExpr(1, mctile.TypeString)
	value := literalExpr(2, mctile.TypeNumber, 7)
	root := &mctile.Expr{NodeID: 3, Kind: mctile.ExprAssignment, Target: target, Value: value}
	diags := ComputeInferredTypes(root, reg, env)
	if len(diags) != 1 || diags[0].Code != DataTypeMismatch {
		t.Fatalf("expected a single DataTypeMismatch diagnostic, got %v", diags)
	}
}

// TestActionArgImplicitWideningOnSwitchPage covers the scenario where an
// actuator's slot expects String but receives a Number literal that can be
// widened with a single registered conversion.
func TestActionArgImplicitWideningOnSwitchPage(t *testing.T) {
	reg := registry.NewBundle()
	reg.Conversions.Register(registry.Conversion{From: mctile.TypeNumber, To: mctile.TypeString, Cost: 1, Name: "number_to_string"})

	pageArg := registry.Arg("page_id", true, true, "")
	root := registry.Bag(pageArg)
	reg.Functions.Register(&registry.FunctionEntry{FnID: "switch_page", Call: registry.CallDef{Root: root}})
	reg.Tiles.Register(&mctile.TileDef{TileID: "page_id", Kind: mctile.KindParameter, ParameterID: "page_id", DataType: mctile.TypeString})

	entry, _ := reg.Functions.Get("switch_page")

	env := NewTypeEnv()
	argExpr := literalExpr(1, mctile.TypeNumber, 2)
	actuator := &mctile.Expr{
		NodeID:     2,
		Kind:       mctile.ExprActuator,
		ActionTile: &mctile.TileDef{TileID: "switch", Kind: mctile.KindActuator, ActuatorID: "switch", FnID: "switch_page"},
		Anons:      []mctile.SlotExpr{{SlotID: entry.Call.ArgSlots[0].SlotID, Expr: argExpr}},
	}
	diags := ComputeInferredTypes(actuator, reg, env)

	foundConverted := false
	for _, d := range diags {
		if d.Code == DataTypeConverted {
			foundConverted = true
		}
	}
	if !foundConverted {
		t.Fatalf("expected the Number literal to be widened to String via a DataTypeConverted diagnostic, got %v", diags)
	}
	argInfo, _ := env.Get(1)
	if argInfo.Expected != mctile.TypeString {
		t.Fatalf("expected slot's expected type to be recorded as String, got %v", argInfo.Expected)
	}
	if argInfo.Conversion == nil {
		t.Fatal("expected a conversion to be stored on the argument's TypeInfo")
	}
}

func TestChoiceGroupRequiresExactMatchNoConversion(t *testing.T) {
	reg := registry.NewBundle()
	reg.Conversions.Register(registry.Conversion{From: mctile.TypeNumber, To: mctile.TypeString, Cost: 1, Name: "number_to_string"})

	timeMs := registry.Arg("time_ms", false, false, "")
	timeSecs := registry.Arg("time_secs", false, false, "")
	root := registry.Bag(registry.Choice(timeMs, timeSecs))
	reg.Functions.Register(&registry.FunctionEntry{FnID: "every", Call: registry.CallDef{Root: root}})
	reg.Tiles.Register(&mctile.TileDef{TileID: "time_ms", Kind: mctile.KindParameter, ParameterID: "time_ms", DataType: mctile.TypeNumber})
	reg.Tiles.Register(&mctile.TileDef{TileID: "time_secs", Kind: mctile.KindParameter, ParameterID: "time_secs", DataType: mctile.TypeString})

	entry, _ := reg.Functions.Get("every")
	var msSlot registry.ArgSlot
	for _, s := range entry.Call.ArgSlots {
		if s.ArgSpec.TileID == "time_ms" {
			msSlot = s
		}
	}

	env := NewTypeEnv()
	// A Boolean-typed value offered to the time_ms slot: it matches neither
	// option's exact declared type (Number, String), so it must be rejected
	// even though a Number->String conversion is registered — choice group
	// validation never allows conversions.
	argExpr := &mctile.Expr{NodeID: 1, Kind: mctile.ExprLiteral, Tile: &mctile.TileDef{Kind: mctile.KindLiteral, ValueType: mctile.TypeBoolean, Value: mctile.BooleanValue(true)}}
	actuator := &mctile.Expr{
		NodeID:     2,
		Kind:       mctile.ExprActuator,
		ActionTile: &mctile.TileDef{TileID: "every", Kind: mctile.KindActuator, ActuatorID: "every", FnID: "every"},
		Parameters: []mctile.SlotExpr{{SlotID: msSlot.SlotID, Expr: argExpr}},
	}
	diags := ComputeInferredTypes(actuator, reg, env)
	for _, d := range diags {
		if d.Code == DataTypeConverted {
			t.Fatalf("choice group validation must never record a conversion, got %v", diags)
		}
	}
	found := false
	for _, d := range diags {
		if d.Code == DataTypeMismatch {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a DataTypeMismatch since Boolean matches no option's exact type, got %v", diags)
	}
}
