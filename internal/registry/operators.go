package registry

import "github.com/humanapp/mindcraft-lang-sub000/internal/mctile"

// OpOverload is one arg-type signature an operator accepts, generalized from
// function-call signature matching to operator application.
type OpOverload struct {
	ArgTypes   []mctile.TypeID
	ResultType mctile.TypeID
}

func (o OpOverload) matches(argTypes []mctile.TypeID) bool {
	if len(o.ArgTypes) != len(argTypes) {
		return false
	}
	for i, t := range o.ArgTypes {
		if t != argTypes[i] {
			return false
		}
	}
	return true
}

// RegisteredOperator is one operator's full overload set.
type RegisteredOperator struct {
	OpID       mctile.OpID
	Fixity     mctile.Fixity
	Precedence int
	Overloads_ []OpOverload
}

// Overloads returns every signature registered for this operator.
func (o *RegisteredOperator) Overloads() []OpOverload {
	return o.Overloads_
}

// Find returns the first overload whose arg types exactly match argTypes.
func (o *RegisteredOperator) Find(argTypes []mctile.TypeID) (*OpOverload, bool) {
	for i := range o.Overloads_ {
		if o.Overloads_[i].matches(argTypes) {
			return &o.Overloads_[i], true
		}
	}
	return nil, false
}

// OperatorTable is a lookup table of RegisteredOperator by OpID.
type OperatorTable struct {
	ops map[mctile.OpID]*RegisteredOperator
}

func NewOperatorTable() *OperatorTable {
	return &OperatorTable{ops: make(map[mctile.OpID]*RegisteredOperator)}
}

func (t *OperatorTable) Register(op *RegisteredOperator) {
	t.ops[op.OpID] = op
}

func (t *OperatorTable) Get(id mctile.OpID) (*RegisteredOperator, bool) {
	op, ok := t.ops[id]
	return op, ok
}

// FindOverload implements mctile.OverloadLookup, letting the pure tree-walk
// helpers in mctile resolve an operator's result type without importing
// this package.
func (t *OperatorTable) FindOverload(op mctile.OpID, argTypes []mctile.TypeID) (mctile.TypeID, bool) {
	reg, ok := t.ops[op]
	if !ok {
		return "", false
	}
	ov, ok := reg.Find(argTypes)
	if !ok {
		return "", false
	}
	return ov.ResultType, true
}
