package registry

import "github.com/humanapp/mindcraft-lang-sub000/internal/mctile"

// FunctionEntry is one sensor/actuator's call-spec metadata, referenced by
// a tile's FnID. The registry never executes anything; only the call-spec
// shape is consumed by the parser and suggestion engine.
type FunctionEntry struct {
	FnID mctile.FnID
	Call CallDef
}

// FunctionRegistry is a lookup table of FunctionEntry by FnID.
type FunctionRegistry struct {
	entries map[mctile.FnID]*FunctionEntry
}

func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{entries: make(map[mctile.FnID]*FunctionEntry)}
}

// Register stores an entry, flattening its arg slots if not already set.
func (r *FunctionRegistry) Register(e *FunctionEntry) {
	if e.Call.ArgSlots == nil && e.Call.Root != nil {
		e.Call.ArgSlots = BuildArgSlots(e.Call.Root)
	}
	r.entries[e.FnID] = e
}

func (r *FunctionRegistry) Get(id mctile.FnID) (*FunctionEntry, bool) {
	e, ok := r.entries[id]
	return e, ok
}
