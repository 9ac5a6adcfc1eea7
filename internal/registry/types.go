package registry

import "github.com/humanapp/mindcraft-lang-sub000/internal/mctile"

// CoreType names the handful of primitive shapes a TypeDef can be built
// from. Struct types additionally carry a field table.
type CoreType int

const (
	CoreUnknown CoreType = iota
	CoreVoid
	CoreNumber
	CoreString
	CoreBoolean
	CoreStruct
)

// FieldDef is one entry of a struct type's field table.
type FieldDef struct {
	Name   string
	TypeID mctile.TypeID
}

// TypeDef describes one registered type, with a field table for struct
// types.
type TypeDef struct {
	TypeID   mctile.TypeID
	Core     CoreType
	Fields   []FieldDef
}

// FieldType returns the declared type of a named field, if this is a
// struct type and the field exists.
func (t *TypeDef) FieldType(name string) (mctile.TypeID, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f.TypeID, true
		}
	}
	return "", false
}

// TypeRegistry is a lookup table of TypeDef by TypeID.
type TypeRegistry struct {
	defs map[mctile.TypeID]*TypeDef
}

func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{defs: make(map[mctile.TypeID]*TypeDef)}
}

func (r *TypeRegistry) Register(def *TypeDef) {
	r.defs[def.TypeID] = def
}

func (r *TypeRegistry) Get(id mctile.TypeID) (*TypeDef, bool) {
	d, ok := r.defs[id]
	return d, ok
}

// IsStruct reports whether id names a registered struct type.
func (r *TypeRegistry) IsStruct(id mctile.TypeID) bool {
	d, ok := r.defs[id]
	return ok && d.Core == CoreStruct
}
