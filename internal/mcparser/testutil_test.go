package mcparser

import (
	"github.com/humanapp/mindcraft-lang-sub000/internal/mctile"
	"github.com/humanapp/mindcraft-lang-sub000/internal/registry"
)

func numTile(n float64) *mctile.TileDef {
	return &mctile.TileDef{TileID: "num", Kind: mctile.KindLiteral, ValueType: mctile.TypeNumber, Value: mctile.NumberValue(n)}
}

func varTile(name string, ty mctile.TypeID) *mctile.TileDef {
	return &mctile.TileDef{TileID: mctile.TileID("$" + name), Kind: mctile.KindVariable, VarName: name, VarType: ty}
}

func opTile(id mctile.OpID, fixity mctile.Fixity, prec int) *mctile.TileDef {
	return &mctile.TileDef{TileID: mctile.TileID(id), Kind: mctile.KindOperator, OpID: id, Fixity: fixity, Precedence: prec}
}

func cfTile(id mctile.ControlFlowID) *mctile.TileDef {
	return &mctile.TileDef{TileID: mctile.TileID(id), Kind: mctile.KindControlFlow, CFID: id}
}

func accessorTile(structType mctile.TypeID, field string, fieldType mctile.TypeID, readOnly bool) *mctile.TileDef {
	return &mctile.TileDef{TileID: mctile.TileID(field), Kind: mctile.KindAccessor, StructTypeID: structType, FieldName: field, FieldTypeID: fieldType, ReadOnly: readOnly}
}

func modifierTile(id string) *mctile.TileDef {
	return &mctile.TileDef{TileID: mctile.TileID(id), Kind: mctile.KindModifier, ModifierID: id}
}

func parameterTile(id string, ty mctile.TypeID) *mctile.TileDef {
	return &mctile.TileDef{TileID: mctile.TileID(id), Kind: mctile.KindParameter, ParameterID: id, DataType: ty}
}

func actuatorTile(id string, fn mctile.FnID) *mctile.TileDef {
	return &mctile.TileDef{TileID: mctile.TileID(id), Kind: mctile.KindActuator, ActuatorID: id, FnID: fn}
}

func sensorTile(id string, fn mctile.FnID, inline bool, outputType mctile.TypeID) *mctile.TileDef {
	placement := mctile.EitherSide
	if inline {
		placement |= mctile.Inline
	}
	return &mctile.TileDef{TileID: mctile.TileID(id), Kind: mctile.KindSensor, SensorID: id, FnID: fn, OutputType: outputType, Placement: placement}
}

func emptyBundle() *registry.Bundle {
	return registry.NewBundle()
}
