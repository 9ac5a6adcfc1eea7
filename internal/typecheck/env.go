// Package typecheck implements the C4 type engine: a post-order visitor
// that decorates an AST with inferred/expected types, resolves operator
// overloads, inserts implicit conversions and emits type diagnostics.
package typecheck

import (
	"github.com/humanapp/mindcraft-lang-sub000/internal/mctile"
	"github.com/humanapp/mindcraft-lang-sub000/internal/registry"
)

// TypeInfo is the per-node decoration the type engine attaches.
type TypeInfo struct {
	Inferred   mctile.TypeID
	Expected   mctile.TypeID
	IsLVal     bool
	Overload   *registry.OpOverload
	Conversion *registry.Conversion
}

// TypeEnv maps every AST node reachable from a parsed root to its TypeInfo.
type TypeEnv struct {
	infos map[uint32]*TypeInfo
}

func NewTypeEnv() *TypeEnv {
	return &TypeEnv{infos: make(map[uint32]*TypeInfo)}
}

// Get returns the TypeInfo for a node id, if present.
func (e *TypeEnv) Get(nodeID uint32) (*TypeInfo, bool) {
	info, ok := e.infos[nodeID]
	return info, ok
}

// ensure returns the TypeInfo for a node, creating a default Unknown entry
// on first access. Every node visited by ComputeInferredTypes goes through
// this, which is what makes the Env-total invariant hold.
func (e *TypeEnv) ensure(nodeID uint32) *TypeInfo {
	info, ok := e.infos[nodeID]
	if !ok {
		info = &TypeInfo{Inferred: mctile.TypeUnknown, Expected: mctile.TypeUnknown}
		e.infos[nodeID] = info
	}
	return info
}

// Len reports how many nodes currently have an entry.
func (e *TypeEnv) Len() int { return len(e.infos) }
