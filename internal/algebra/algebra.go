// Package algebra models the symbolic algebraic-expression tree the
// analyzer hands the evaluator (spec §3, "AlgebraicExpression"): the
// representation of an unevaluated polynomial constraint over field
// elements and column references. Construction helpers for raw
// expression trees are explicitly out of scope (spec §1); this package
// only defines the shape the evaluator reads and, in the symbolic-fold
// cases, builds nodes of.
//
// Grounded on github.com/consensys/go-corset's pkg/corset/expression.go
// (Expr tree: Add, ArrayAccess, ...) and on
// original_source/ast/src/parsed/build.rs, adapted to the flatter
// Number/Reference/BinaryOperation/UnaryOperation shape spec §3 names.
package algebra

import (
	"fmt"

	"github.com/taikoonwang/powdr/internal/field"
)

// Expression is the closed family of symbolic algebraic-expression
// nodes the evaluator consumes and constructs.
type Expression interface {
	isExpression()
	String() string
}

// Number is a field-literal leaf.
type Number struct {
	Value field.Element
}

func (Number) isExpression()    {}
func (n Number) String() string { return n.Value.String() }

// Reference names a polynomial column, optionally evaluated on the next
// row (spec §3: "Reference.next may be true at most once along the
// spine of unary operators").
type Reference struct {
	Name   string
	PolyID uint64
	Next   bool
}

func (Reference) isExpression() {}
func (r Reference) String() string {
	if r.Next {
		return r.Name + "'"
	}
	return r.Name
}

// BinaryOperation is a structural two-operand symbolic node.
type BinaryOperation struct {
	Left     Expression
	Operator string
	Right    Expression
}

func (BinaryOperation) isExpression() {}
func (b BinaryOperation) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Operator, b.Right)
}

// UnaryOperation is a structural single-operand symbolic node.
type UnaryOperation struct {
	Operator string
	Inner    Expression
}

func (UnaryOperation) isExpression() {}
func (u UnaryOperation) String() string {
	return fmt.Sprintf("%s%s", u.Operator, u.Inner)
}

// WithNext returns a copy of a Reference with Next set to true. The
// caller (internal/evaluator) is responsible for rejecting a second
// application per the next-operator monotonicity invariant.
func (r Reference) WithNext() Reference {
	r.Next = true
	return r
}
