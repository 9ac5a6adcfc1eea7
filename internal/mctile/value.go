package mctile

import "strconv"

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	ValueNil ValueKind = iota
	ValueNumber
	ValueString
	ValueBoolean
	ValueStruct
)

// Value is the tagged union carried by literal tiles. Struct-opaque values
// are represented as a flat field map; the core never interprets their
// contents beyond type-checking field access.
type Value struct {
	Kind   ValueKind
	Num    float64
	Str    string
	Bool   bool
	Fields map[string]Value
}

func NumberValue(n float64) Value  { return Value{Kind: ValueNumber, Num: n} }
func StringValue(s string) Value   { return Value{Kind: ValueString, Str: s} }
func BooleanValue(b bool) Value    { return Value{Kind: ValueBoolean, Bool: b} }
func NilValue() Value              { return Value{Kind: ValueNil} }
func StructValue(f map[string]Value) Value {
	return Value{Kind: ValueStruct, Fields: f}
}

// String renders the value the way a diagnostic or CLI dump would display
// it.
func (v Value) String() string {
	switch v.Kind {
	case ValueNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case ValueString:
		return strconv.Quote(v.Str)
	case ValueBoolean:
		return strconv.FormatBool(v.Bool)
	case ValueStruct:
		return "<struct>"
	default:
		return "nil"
	}
}
