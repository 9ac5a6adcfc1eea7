package mctile

import "testing"

func numberLiteral(n float64) *Expr {
	return &Expr{
		Kind: ExprLiteral,
		Tile: &TileDef{Kind: KindLiteral, ValueType: TypeNumber, Value: NumberValue(n)},
	}
}

func TestIsCompleteValueExprLeafNodes(t *testing.T) {
	if !IsCompleteValueExpr(numberLiteral(1)) {
		t.Fatal("literal should be complete")
	}
	if IsCompleteValueExpr(&Expr{Kind: ExprEmpty}) {
		t.Fatal("empty should be incomplete")
	}
	if IsCompleteValueExpr(&Expr{Kind: ExprError}) {
		t.Fatal("error should be incomplete")
	}
}

func TestIsCompleteValueExprBinaryOp(t *testing.T) {
	complete := &Expr{Kind: ExprBinaryOp, Left: numberLiteral(1), Right: numberLiteral(2)}
	if !IsCompleteValueExpr(complete) {
		t.Fatal("binary op with two complete operands should be complete")
	}
	incomplete := &Expr{Kind: ExprBinaryOp, Left: numberLiteral(1), Right: &Expr{Kind: ExprEmpty}}
	if IsCompleteValueExpr(incomplete) {
		t.Fatal("binary op with an empty operand should be incomplete")
	}
}

func TestIsParameterValueMissing(t *testing.T) {
	missing := &Expr{Kind: ExprParameter, Value: &Expr{Kind: ExprEmpty}}
	if !IsParameterValueMissing(missing) {
		t.Fatal("empty value should count as missing")
	}
	present := &Expr{Kind: ExprParameter, Value: numberLiteral(1)}
	if IsParameterValueMissing(present) {
		t.Fatal("literal value should not count as missing")
	}
	if IsParameterValueMissing(numberLiteral(1)) {
		t.Fatal("non-parameter node should never report missing")
	}
}

func TestTrailingPrimaryExprFollowsRightEdges(t *testing.T) {
	a := numberLiteral(1)
	b := numberLiteral(2)
	bin := &Expr{Kind: ExprBinaryOp, Left: a, Right: b}
	if TrailingPrimaryExpr(bin) != b {
		t.Fatal("trailing primary of a binary op should be its right operand")
	}
	fa := &Expr{Kind: ExprFieldAccess, Object: a, Accessor: &TileDef{Kind: KindAccessor, FieldTypeID: TypeNumber}}
	bin2 := &Expr{Kind: ExprBinaryOp, Left: fa, Right: fa}
	if TrailingPrimaryExpr(bin2) != fa {
		t.Fatal("trailing primary should stop at a field_access node")
	}
}

func TestGetExprOutputTypeLiteralsAndFields(t *testing.T) {
	lit := numberLiteral(1)
	if ty, ok := GetExprOutputType(lit, nil, nil); !ok || ty != TypeNumber {
		t.Fatalf("want Number, got %v ok=%v", ty, ok)
	}
	fa := &Expr{Kind: ExprFieldAccess, Object: lit, Accessor: &TileDef{FieldTypeID: TypeString}}
	if ty, ok := GetExprOutputType(fa, nil, nil); !ok || ty != TypeString {
		t.Fatalf("want String, got %v ok=%v", ty, ok)
	}
}
