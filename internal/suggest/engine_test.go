package suggest

import (
	"testing"

	"github.com/humanapp/mindcraft-lang-sub000/internal/mctile"
	"github.com/humanapp/mindcraft-lang-sub000/internal/registry"
)

func TestChoiceExclusionOnceOneOptionHasAFill(t *testing.T) {
	slowly := registry.Arg("slowly", false, false, "")
	quickly := registry.Arg("quickly", false, false, "")
	root := registry.Choice(slowly, quickly)
	slots := registry.BuildArgSlots(root)

	var slowlySlot, quicklySlot registry.ArgSlot
	for _, s := range slots {
		if s.ArgSpec.TileID == "slowly" {
			slowlySlot = s
		} else {
			quicklySlot = s
		}
	}

	filled := map[int]int{slowlySlot.SlotID: 1}
	var available []registry.ArgSlot
	collectAvailableArgSlots(root, slots, filled, &available, defaultRepeatMax, root)

	for _, a := range available {
		if a.SlotID == quicklySlot.SlotID {
			t.Fatal("quickly must not be available once slowly (its choice sibling) has a fill")
		}
	}
}

func TestRepeatBoundAppearsWhileBelowMax(t *testing.T) {
	slowlyArg := registry.Arg("slowly", false, false, "")
	root := registry.Repeat(slowlyArg, 0, 3)
	slots := registry.BuildArgSlots(root)
	slot := slots[0]

	for fillCount := 0; fillCount < 3; fillCount++ {
		filled := map[int]int{slot.SlotID: fillCount}
		var available []registry.ArgSlot
		collectAvailableArgSlots(root, slots, filled, &available, defaultRepeatMax, root)
		if len(available) != 1 {
			t.Fatalf("fill count %d < max 3: expected slot still available, got %d available", fillCount, len(available))
		}
	}

	filled := map[int]int{slot.SlotID: 3}
	var available []registry.ArgSlot
	collectAvailableArgSlots(root, slots, filled, &available, defaultRepeatMax, root)
	if len(available) != 0 {
		t.Fatalf("fill count == max 3: expected slot no longer available, got %d", len(available))
	}
}

func TestInfixSuggestionRequiresExactFirstArgMatch(t *testing.T) {
	reg := registry.NewBundle()
	reg.Tiles.Register(operatorDef("+", mctile.FixityInfix))
	reg.Tiles.Register(operatorDef("++", mctile.FixityInfix))
	reg.Ops.Register(&registry.RegisteredOperator{
		OpID: "+", Fixity: mctile.FixityInfix,
		Overloads_: []registry.OpOverload{{ArgTypes: []mctile.TypeID{mctile.TypeNumber, mctile.TypeNumber}, ResultType: mctile.TypeNumber}},
	})
	reg.Ops.Register(&registry.RegisteredOperator{
		OpID: "++", Fixity: mctile.FixityInfix,
		Overloads_: []registry.OpOverload{{ArgTypes: []mctile.TypeID{mctile.TypeString, mctile.TypeString}, ResultType: mctile.TypeString}},
	})

	ctx := InsertionContext{RuleSide: mctile.DoSide, AvailableCapabilities: ^mctile.CapabilitySet(0)}
	var result Result
	lhs := literalExpr(mctile.TypeNumber)
	suggestInfixOperators(ctx, reg, lhs, &result)

	foundPlus, foundPlusPlus := false, false
	for _, s := range result.Exact {
		if s.TileDef.OpID == "+" {
			foundPlus = true
		}
		if s.TileDef.OpID == "++" {
			foundPlusPlus = true
		}
	}
	if !foundPlus {
		t.Fatal("expected + to be suggested (overload (Number,Number) matches LHS exactly)")
	}
	if foundPlusPlus {
		t.Fatal("++ must not be suggested: its overload's first arg type is String, not Number")
	}
}

func TestCloseParenGateRequiresUnclosedDepth(t *testing.T) {
	reg := registry.NewBundle()
	reg.Tiles.Register(closeParenDef())

	var resultNoDepth Result
	ctxNoDepth := InsertionContext{RuleSide: mctile.DoSide, UnclosedParenDepth: 0}
	suggestCloseParen(ctxNoDepth, reg, &resultNoDepth)
	if len(resultNoDepth.Exact) != 0 {
		t.Fatal("CloseParen must not be suggested with zero unclosed paren depth")
	}

	var resultWithDepth Result
	ctxWithDepth := InsertionContext{RuleSide: mctile.DoSide, UnclosedParenDepth: 1}
	suggestCloseParen(ctxWithDepth, reg, &resultWithDepth)
	if len(resultWithDepth.Exact) != 1 {
		t.Fatal("CloseParen must be suggested when unclosed paren depth > 0")
	}
}

func TestStructDrillDownClassifiesAsConversionWithFieldCost(t *testing.T) {
	reg := registry.NewBundle()
	reg.Types.Register(&registry.TypeDef{
		TypeID: "Position", Core: registry.CoreStruct,
		Fields: []registry.FieldDef{{Name: "x", TypeID: mctile.TypeNumber}, {Name: "y", TypeID: mctile.TypeNumber}},
	})
	expected := mctile.TypeNumber
	compat, cost, ok := classifyTypeCompatibility("Position", &expected, reg)
	if !ok {
		t.Fatal("expected Position to be eligible via field drill-down")
	}
	if compat != CompatConversion {
		t.Fatalf("expected Conversion compatibility, got %v", compat)
	}
	if cost != 1 {
		t.Fatalf("expected drill-down cost 1 (field matches exactly, +1 for the accessor step), got %d", cost)
	}
}

func TestCountUnclosedParensTracksStackDepth(t *testing.T) {
	open := &mctile.TileDef{Kind: mctile.KindControlFlow, CFID: mctile.CFOpenParen}
	closeT := &mctile.TileDef{Kind: mctile.KindControlFlow, CFID: mctile.CFCloseParen}
	tiles := []*mctile.TileDef{open, open, closeT}
	if got := CountUnclosedParens(tiles, nil); got != 1 {
		t.Fatalf("expected depth 1, got %d", got)
	}
	if got := CountUnclosedParens([]*mctile.TileDef{closeT}, nil); got != 0 {
		t.Fatalf("expected depth clamped at 0, got %d", got)
	}
}

func TestDeterminismSameInputsSameOrdering(t *testing.T) {
	reg := registry.NewBundle()
	reg.Tiles.Register(literalDef("n1", mctile.TypeNumber))
	reg.Tiles.Register(literalDef("n2", mctile.TypeNumber))
	ctx := InsertionContext{RuleSide: mctile.DoSide, AvailableCapabilities: ^mctile.CapabilitySet(0)}

	r1 := SuggestTiles(ctx, reg)
	r2 := SuggestTiles(ctx, reg)
	if len(r1.Exact) != len(r2.Exact) {
		t.Fatalf("expected identical result sizes across calls, got %d vs %d", len(r1.Exact), len(r2.Exact))
	}
	for i := range r1.Exact {
		if r1.Exact[i].TileDef.TileID != r2.Exact[i].TileDef.TileID {
			t.Fatalf("expected identical ordering at index %d", i)
		}
	}
}

// TestStructMismatchAloneStaysRestrictedToExpectedType covers the
// append-mode case where an actuator's sole anon slot already holds a
// complete value, but one of the wrong struct type: with no other slot
// open and nothing missing, the suggestion set must still stay pinned to
// the slot's expected type rather than falling back to every value tile
// in the catalog.
func TestStructMismatchAloneStaysRestrictedToExpectedType(t *testing.T) {
	reg := registry.NewBundle()
	reg.Types.Register(&registry.TypeDef{TypeID: "Position", Core: registry.CoreStruct})
	reg.Types.Register(&registry.TypeDef{TypeID: "Velocity", Core: registry.CoreStruct})

	posArg := registry.Arg("pos_arg", true, true, "")
	root := registry.Bag(posArg)
	reg.Functions.Register(&registry.FunctionEntry{FnID: "place", Call: registry.CallDef{Root: root}})
	reg.Tiles.Register(&mctile.TileDef{TileID: "pos_arg", Kind: mctile.KindParameter, ParameterID: "pos_arg", DataType: "Position"})

	reg.Tiles.Register(literalDef("pos_lit", "Position"))
	reg.Tiles.Register(literalDef("number_lit", mctile.TypeNumber))

	entry, _ := reg.Functions.Get("place")
	wrongTypedValue := &mctile.Expr{Kind: mctile.ExprLiteral, Tile: &mctile.TileDef{Kind: mctile.KindLiteral, ValueType: "Velocity"}}
	actuator := &mctile.Expr{
		Kind:       mctile.ExprActuator,
		ActionTile: &mctile.TileDef{TileID: "place", Kind: mctile.KindActuator, ActuatorID: "place", FnID: "place"},
		Anons:      []mctile.SlotExpr{{SlotID: entry.Call.ArgSlots[0].SlotID, Expr: wrongTypedValue}},
	}

	ctx := InsertionContext{RuleSide: mctile.DoSide, Expr: actuator, AvailableCapabilities: ^mctile.CapabilitySet(0)}
	result := SuggestTiles(ctx, reg)

	for _, s := range append(result.Exact, result.WithConversion...) {
		if s.TileDef.TileID == "number_lit" {
			t.Fatalf("number_lit must not be offered: the mismatched slot's expected type is Position, not Number")
		}
	}
	foundPosLit := false
	for _, s := range result.Exact {
		if s.TileDef.TileID == "pos_lit" {
			foundPosLit = true
		}
	}
	if !foundPosLit {
		t.Fatalf("expected pos_lit to be offered as an exact match for the mismatched slot's expected type, got %+v", result)
	}
}

// TestReplacingBareRootVariableOffersActionCalls covers replacing the sole
// tile of a rule side that consists of nothing but one bare variable: the
// tile has no containing expression, so this is an expression_position
// replacement (which includes actuators), not a value replacement nested
// inside some other expression's slot (which would exclude them).
func TestReplacingBareRootVariableOffersActionCalls(t *testing.T) {
	reg := registry.NewBundle()
	reg.Tiles.Register(actuatorDef("switch", "switch_page"))
	reg.Tiles.Register(literalDef("number_lit", mctile.TypeNumber))

	root := &mctile.Expr{
		Kind: mctile.ExprVariable,
		Span: mctile.Span{From: 0, To: 1},
		Tile: &mctile.TileDef{Kind: mctile.KindVariable, VarName: "score", VarType: mctile.TypeNumber},
	}
	replaceAt := 0
	ctx := InsertionContext{RuleSide: mctile.DoSide, Expr: root, ReplaceTileIndex: &replaceAt, AvailableCapabilities: ^mctile.CapabilitySet(0)}

	result := SuggestTiles(ctx, reg)

	foundActuator := false
	for _, s := range result.Exact {
		if s.TileDef.TileID == "switch" {
			foundActuator = true
		}
	}
	if !foundActuator {
		t.Fatalf("expected the actuator tile to be offered when replacing a bare root variable (expression_position, not value), got %+v", result)
	}
}

func TestExactAndConversionAreDisjoint(t *testing.T) {
	reg := registry.NewBundle()
	reg.Tiles.Register(literalDef("n1", mctile.TypeNumber))
	reg.Conversions.Register(registry.Conversion{From: mctile.TypeNumber, To: mctile.TypeString, Cost: 1})
	expected := mctile.TypeString
	ctx := InsertionContext{RuleSide: mctile.DoSide, AvailableCapabilities: ^mctile.CapabilitySet(0), ExpectedType: &expected}

	r := SuggestTiles(ctx, reg)
	seen := map[mctile.TileID]bool{}
	for _, s := range r.Exact {
		seen[s.TileDef.TileID] = true
	}
	for _, s := range r.WithConversion {
		if seen[s.TileDef.TileID] {
			t.Fatalf("tile %s appears in both buckets", s.TileDef.TileID)
		}
	}
}
