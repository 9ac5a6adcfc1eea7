package registry

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/humanapp/mindcraft-lang-sub000/internal/mctile"
)

// manifest is the on-disk YAML shape a host authors to seed a Bundle in one
// file, rather than wiring five registries together in code. Field names
// are deliberately flat and host-editable.
type manifest struct {
	Types []struct {
		ID     string `yaml:"id"`
		Core   string `yaml:"core"`
		Fields []struct {
			Name string `yaml:"name"`
			Type string `yaml:"type"`
		} `yaml:"fields"`
	} `yaml:"types"`

	Operators []struct {
		ID         string `yaml:"id"`
		Fixity     string `yaml:"fixity"`
		Precedence int    `yaml:"precedence"`
		Overloads  []struct {
			Args   []string `yaml:"args"`
			Result string   `yaml:"result"`
		} `yaml:"overloads"`
	} `yaml:"operators"`

	Conversions []struct {
		From string `yaml:"from"`
		To   string `yaml:"to"`
		Cost int    `yaml:"cost"`
		Name string `yaml:"name"`
	} `yaml:"conversions"`

	Tiles []struct {
		ID           string   `yaml:"id"`
		Kind         string   `yaml:"kind"`
		Placement    int      `yaml:"placement"`
		Requirements uint64   `yaml:"requirements"`
		Persist      bool     `yaml:"persist"`
		Hidden       bool     `yaml:"hidden"`
		VarName      string   `yaml:"var_name"`
		VarType      string   `yaml:"var_type"`
		ValueType    string   `yaml:"value_type"`
		OpID         string   `yaml:"op_id"`
		ParameterID  string   `yaml:"parameter_id"`
		DataType     string   `yaml:"data_type"`
		ModifierID   string   `yaml:"modifier_id"`
		StructTypeID string   `yaml:"struct_type_id"`
		FieldName    string   `yaml:"field_name"`
		FieldTypeID  string   `yaml:"field_type_id"`
		ReadOnly     bool     `yaml:"read_only"`
		SensorID     string   `yaml:"sensor_id"`
		ActuatorID   string   `yaml:"actuator_id"`
		OutputType   string   `yaml:"output_type"`
		FnID         string   `yaml:"fn_id"`
		PageID       string   `yaml:"page_id"`
	} `yaml:"tiles"`
}

var coreTypeNames = map[string]CoreType{
	"unknown": CoreUnknown,
	"void":    CoreVoid,
	"number":  CoreNumber,
	"string":  CoreString,
	"boolean": CoreBoolean,
	"struct":  CoreStruct,
}

var kindNames = map[string]mctile.Kind{
	"literal":      mctile.KindLiteral,
	"variable":     mctile.KindVariable,
	"operator":     mctile.KindOperator,
	"control_flow": mctile.KindControlFlow,
	"parameter":    mctile.KindParameter,
	"modifier":     mctile.KindModifier,
	"accessor":     mctile.KindAccessor,
	"sensor":       mctile.KindSensor,
	"actuator":     mctile.KindActuator,
	"factory":      mctile.KindFactory,
	"page":         mctile.KindPage,
	"missing":      mctile.KindMissing,
}

// LoadManifest reads a YAML registry manifest from path and builds a
// Bundle from it. Function-entry call specs are not expressible in the flat
// manifest format (they are nested grammar trees); a host wanting sensors
// or actuators with non-trivial call specs registers those entries in code
// after loading the manifest's tiles/types/operators/conversions.
func LoadManifest(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("registry: read manifest: %w", err)
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("registry: parse manifest: %w", err)
	}
	return buildBundle(&m)
}

func buildBundle(m *manifest) (*Bundle, error) {
	b := NewBundle()

	for _, t := range m.Types {
		core, ok := coreTypeNames[t.Core]
		if !ok {
			return nil, fmt.Errorf("registry: unknown core type %q for type %q", t.Core, t.ID)
		}
		def := &TypeDef{TypeID: mctile.TypeID(t.ID), Core: core}
		for _, f := range t.Fields {
			def.Fields = append(def.Fields, FieldDef{Name: f.Name, TypeID: mctile.TypeID(f.Type)})
		}
		b.Types.Register(def)
	}

	for _, o := range m.Operators {
		fixity := mctile.FixityInfix
		if o.Fixity == "prefix" {
			fixity = mctile.FixityPrefix
		}
		reg := &RegisteredOperator{OpID: mctile.OpID(o.ID), Fixity: fixity, Precedence: o.Precedence}
		for _, ov := range o.Overloads {
			args := make([]mctile.TypeID, len(ov.Args))
			for i, a := range ov.Args {
				args[i] = mctile.TypeID(a)
			}
			reg.Overloads_ = append(reg.Overloads_, OpOverload{ArgTypes: args, ResultType: mctile.TypeID(ov.Result)})
		}
		b.Ops.Register(reg)
	}

	for _, c := range m.Conversions {
		b.Conversions.Register(Conversion{
			From: mctile.TypeID(c.From),
			To:   mctile.TypeID(c.To),
			Cost: c.Cost,
			Name: c.Name,
		})
	}

	for _, tl := range m.Tiles {
		kind, ok := kindNames[tl.Kind]
		if !ok {
			return nil, fmt.Errorf("registry: unknown tile kind %q for tile %q", tl.Kind, tl.ID)
		}
		def := &mctile.TileDef{
			TileID:       mctile.TileID(tl.ID),
			Kind:         kind,
			Placement:    mctile.Placement(tl.Placement),
			Requirements: mctile.CapabilitySet(tl.Requirements),
			Persist:      tl.Persist,
			Hidden:       tl.Hidden,
			VarName:      tl.VarName,
			VarType:      mctile.TypeID(tl.VarType),
			ValueType:    mctile.TypeID(tl.ValueType),
			OpID:         mctile.OpID(tl.OpID),
			ParameterID:  tl.ParameterID,
			DataType:     mctile.TypeID(tl.DataType),
			ModifierID:   tl.ModifierID,
			StructTypeID: mctile.TypeID(tl.StructTypeID),
			FieldName:    tl.FieldName,
			FieldTypeID:  mctile.TypeID(tl.FieldTypeID),
			ReadOnly:     tl.ReadOnly,
			SensorID:     tl.SensorID,
			ActuatorID:   tl.ActuatorID,
			OutputType:   mctile.TypeID(tl.OutputType),
			FnID:         mctile.FnID(tl.FnID),
			PageID:       tl.PageID,
		}
		if def.Kind == mctile.KindOperator {
			if op, ok := b.Ops.Get(def.OpID); ok {
				def.Fixity = op.Fixity
				def.Precedence = op.Precedence
			}
		}
		b.Tiles.Register(def)
	}

	return b, nil
}
