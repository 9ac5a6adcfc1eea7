package suggest

import (
	"github.com/humanapp/mindcraft-lang-sub000/internal/mctile"
)

func literalDef(id string, ty mctile.TypeID) *mctile.TileDef {
	return &mctile.TileDef{TileID: mctile.TileID(id), Kind: mctile.KindLiteral, ValueType: ty, Placement: mctile.EitherSide}
}

func variableDef(id string, ty mctile.TypeID) *mctile.TileDef {
	return &mctile.TileDef{TileID: mctile.TileID(id), Kind: mctile.KindVariable, VarName: id, VarType: ty, Placement: mctile.EitherSide}
}

func operatorDef(id mctile.OpID, fixity mctile.Fixity) *mctile.TileDef {
	return &mctile.TileDef{TileID: mctile.TileID(id), Kind: mctile.KindOperator, OpID: id, Fixity: fixity, Placement: mctile.EitherSide}
}

func accessorDef(structType mctile.TypeID, field string, fieldType mctile.TypeID) *mctile.TileDef {
	return &mctile.TileDef{TileID: mctile.TileID(field), Kind: mctile.KindAccessor, StructTypeID: structType, FieldName: field, FieldTypeID: fieldType, Placement: mctile.EitherSide}
}

func modifierDef(id string) *mctile.TileDef {
	return &mctile.TileDef{TileID: mctile.TileID(id), Kind: mctile.KindModifier, ModifierID: id, Placement: mctile.EitherSide}
}

func actuatorDef(id string, fnID mctile.FnID) *mctile.TileDef {
	return &mctile.TileDef{TileID: mctile.TileID(id), Kind: mctile.KindActuator, ActuatorID: id, FnID: fnID, Placement: mctile.EitherSide}
}

func closeParenDef() *mctile.TileDef {
	return &mctile.TileDef{TileID: "CloseParen", Kind: mctile.KindControlFlow, CFID: mctile.CFCloseParen, Placement: mctile.EitherSide}
}

func literalExpr(ty mctile.TypeID) *mctile.Expr {
	return &mctile.Expr{Kind: mctile.ExprLiteral, Tile: &mctile.TileDef{Kind: mctile.KindLiteral, ValueType: ty}}
}
