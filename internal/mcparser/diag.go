// Package mcparser implements the C3 parser: a Pratt expression core
// composed with a grammar-combinator action-call parser over a bounded tile
// cursor.
package mcparser

import (
	"fmt"

	"github.com/humanapp/mindcraft-lang-sub000/internal/mctile"
)

// DiagCode enumerates the parser's stable error-code space.
type DiagCode int

const (
	UnexpectedTokenAfterExpression DiagCode = iota + 1000
	ExpectedExpressionFoundEOF
	UnexpectedActionCallAfterExpression
	UnexpectedExpressionAfterExpression
	ExpectedSensorOrActuator
	ActionCallParseFailure
	UnexpectedActionCallKind
	ExpectedExpressionInSubExpr
	UnexpectedTokenKindInExpression
	UnexpectedOperatorInExpression
	ExpectedClosingParen
	UnexpectedControlFlowInExpression
	UnknownOperator
	InvalidAssignmentTarget
	ReadOnlyFieldAssignment DiagCode = 1014
)

var diagNames = map[DiagCode]string{
	UnexpectedTokenAfterExpression:      "UnexpectedTokenAfterExpression",
	ExpectedExpressionFoundEOF:          "ExpectedExpressionFoundEOF",
	UnexpectedActionCallAfterExpression: "UnexpectedActionCallAfterExpression",
	UnexpectedExpressionAfterExpression: "UnexpectedExpressionAfterExpression",
	ExpectedSensorOrActuator:            "ExpectedSensorOrActuator",
	ActionCallParseFailure:              "ActionCallParseFailure",
	UnexpectedActionCallKind:            "UnexpectedActionCallKind",
	ExpectedExpressionInSubExpr:         "ExpectedExpressionInSubExpr",
	UnexpectedTokenKindInExpression:     "UnexpectedTokenKindInExpression",
	UnexpectedOperatorInExpression:      "UnexpectedOperatorInExpression",
	ExpectedClosingParen:                "ExpectedClosingParen",
	UnexpectedControlFlowInExpression:   "UnexpectedControlFlowInExpression",
	UnknownOperator:                     "UnknownOperator",
	InvalidAssignmentTarget:             "InvalidAssignmentTarget",
	ReadOnlyFieldAssignment:             "ReadOnlyFieldAssignment",
}

func (c DiagCode) String() string {
	if n, ok := diagNames[c]; ok {
		return n
	}
	return fmt.Sprintf("DiagCode(%d)", int(c))
}

// Diag is one parse diagnostic. Diagnostics never halt parsing; a failed
// subparse is always additionally recorded as an error AST node.
type Diag struct {
	Code    DiagCode
	Message string
	Span    mctile.Span
}
