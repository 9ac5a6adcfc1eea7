package mcparser

import (
	"github.com/humanapp/mindcraft-lang-sub000/internal/mctile"
	"github.com/humanapp/mindcraft-lang-sub000/internal/registry"
)

// ParseExpression is the Pratt core: parseNud for the leading token, then an
// inline LED loop for accessors and infix operators.
func ParseExpression(s *State, reg *registry.Bundle, opts Options) *mctile.Expr {
	left := parseNud(s, reg, opts)

	for {
		if s.AtEnd() {
			break
		}
		cur, _ := s.Current()
		if opts.shouldStop(cur) {
			break
		}

		if cur.Kind == mctile.KindAccessor {
			s.Advance()
			start := left.Span.From
			left = s.node(start, &mctile.Expr{Kind: mctile.ExprFieldAccess, Object: left, Accessor: cur})
			continue
		}

		if cur.Kind == mctile.KindOperator && cur.IsInfixOperator() {
			if cur.Precedence < opts.MinOperatorPrecedence {
				break
			}
			s.Advance()
			nextMin := cur.Precedence + 1
			if cur.IsAssignOperator() {
				nextMin = cur.Precedence
			}
			right := ParseExpression(s, reg, Options{
				Stop:                       opts.Stop,
				MinOperatorPrecedence:      nextMin,
				PrimaryAdjacencyTerminates: opts.PrimaryAdjacencyTerminates,
			})

			start := left.Span.From
			if cur.IsAssignOperator() {
				left = buildAssignment(s, start, left, cur, right)
			} else {
				left = s.node(start, &mctile.Expr{Kind: mctile.ExprBinaryOp, OpTile: cur, Left: left, Right: right})
			}
			continue
		}

		break
	}

	return left
}

func buildAssignment(s *State, start int, target *mctile.Expr, opTile *mctile.TileDef, value *mctile.Expr) *mctile.Expr {
	if !isValidAssignTarget(target) {
		s.AddDiag(Diag{Code: InvalidAssignmentTarget, Message: "invalid assignment target", Span: target.Span})
		return s.errorNode(start, "invalid assignment target", target)
	}
	if target.Kind == mctile.ExprFieldAccess && target.Accessor.ReadOnly {
		s.AddDiag(Diag{Code: ReadOnlyFieldAssignment, Message: "cannot assign to read-only field", Span: target.Span})
		return s.errorNode(start, "cannot assign to read-only field", target)
	}
	return s.node(start, &mctile.Expr{Kind: mctile.ExprAssignment, Target: target, Value: value})
}

func isValidAssignTarget(e *mctile.Expr) bool {
	switch e.Kind {
	case mctile.ExprVariable:
		return true
	case mctile.ExprFieldAccess:
		return true
	default:
		return false
	}
}

func parseNud(s *State, reg *registry.Bundle, opts Options) *mctile.Expr {
	start := s.Index()
	cur, ok := s.Current()
	if !ok {
		s.AddDiag(Diag{Code: ExpectedExpressionFoundEOF, Message: "expected expression, found end of input", Span: mctile.Span{From: start, To: start}})
		return s.emptyNode(start)
	}

	switch cur.Kind {
	case mctile.KindLiteral, mctile.KindPage:
		s.Advance()
		return s.node(start, &mctile.Expr{Kind: mctile.ExprLiteral, Tile: cur})

	case mctile.KindVariable:
		s.Advance()
		return s.node(start, &mctile.Expr{Kind: mctile.ExprVariable, Tile: cur})

	case mctile.KindOperator:
		if cur.IsPrefixOperator() {
			s.Advance()
			operand := ParseExpression(s, reg, Options{
				Stop:                       opts.Stop,
				MinOperatorPrecedence:      cur.Precedence,
				PrimaryAdjacencyTerminates: opts.PrimaryAdjacencyTerminates,
			})
			return s.node(start, &mctile.Expr{Kind: mctile.ExprUnaryOp, OpTile: cur, Operand: operand})
		}
		s.Advance()
		s.AddDiag(Diag{Code: UnexpectedOperatorInExpression, Message: "unexpected operator in expression position", Span: mctile.Span{From: start, To: s.Index()}})
		return s.errorNode(start, "unexpected operator in expression position", nil)

	case mctile.KindControlFlow:
		if cur.CFID == mctile.CFOpenParen {
			s.Advance()
			inner := ParseExpression(s, reg, Options{Stop: StopAtCloseParen, MinOperatorPrecedence: 0})
			if closeTile, ok := s.Current(); ok && closeTile.Kind == mctile.KindControlFlow && closeTile.CFID == mctile.CFCloseParen {
				s.Advance()
			} else {
				s.AddDiag(Diag{Code: ExpectedClosingParen, Message: "expected closing paren", Span: mctile.Span{From: start, To: s.Index()}})
			}
			inner.Span = mctile.Span{From: start, To: s.Index()}
			return inner
		}
		s.Advance()
		s.AddDiag(Diag{Code: UnexpectedControlFlowInExpression, Message: "unexpected control-flow tile in expression position", Span: mctile.Span{From: start, To: s.Index()}})
		return s.errorNode(start, "unexpected control-flow tile in expression position", nil)

	case mctile.KindSensor:
		if !cur.IsNonInlineSensor() {
			s.Advance()
			return s.node(start, &mctile.Expr{Kind: mctile.ExprSensor, ActionTile: cur})
		}
		return parseActionCall(s, reg, opts)

	default:
		s.Advance()
		s.AddDiag(Diag{Code: UnexpectedTokenKindInExpression, Message: "unexpected tile kind in expression position", Span: mctile.Span{From: start, To: s.Index()}})
		return s.errorNode(start, "unexpected tile kind in expression position", nil)
	}
}
