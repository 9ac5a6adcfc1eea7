package mcparser

import "github.com/humanapp/mindcraft-lang-sub000/internal/mctile"

// node stamps a freshly built Expr with a fresh node id and the span
// [start, s.Index()).
func (s *State) node(start int, e *mctile.Expr) *mctile.Expr {
	e.NodeID = s.AllocNodeID()
	e.Span = mctile.Span{From: start, To: s.index}
	return e
}

func (s *State) errorNode(start int, message string, partial *mctile.Expr) *mctile.Expr {
	return s.node(start, &mctile.Expr{Kind: mctile.ExprError, Message: message, Partial: partial})
}

func (s *State) emptyNode(at int) *mctile.Expr {
	e := &mctile.Expr{Kind: mctile.ExprEmpty}
	e.NodeID = s.AllocNodeID()
	e.Span = mctile.Span{From: at, To: at}
	return e
}
