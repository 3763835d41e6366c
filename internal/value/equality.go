package value

import "github.com/taikoonwang/powdr/internal/algebra"

// Equal implements the value-equality relation used by match-arm
// pattern comparison (spec §3 invariants, §4.1 "Match"). The binary
// `==`/`!=` operators in internal/evaluator/operators.go do not call it.
//
// Closure equality is explicitly undefined: comparing two closures
// panics rather than fabricating an answer (spec §9, "Closure equality
// is undefined"). Equal has no Custom case: comparing two Custom values
// panics as well.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Bool:
		return av.Value == b.(Bool).Value
	case Integer:
		return av.Value.Cmp(b.(Integer).Value) == 0
	case FieldElement:
		return av.Value.Equal(b.(FieldElement).Value)
	case String:
		return av.Value == b.(String).Value
	case Tuple:
		bv := b.(Tuple)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equal(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case Array:
		bv := b.(Array)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equal(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case Closure:
		panic("value: closure equality is undefined")
	case BuiltinFunction:
		return av.Tag == b.(BuiltinFunction).Tag
	case Expression:
		return algebraEqual(av.Expr, b.(Expression).Expr)
	case Identity:
		bv := b.(Identity)
		return algebraEqual(av.Left, bv.Left) && algebraEqual(av.Right, bv.Right)
	default:
		panic("value: Equal called with an unexpected or Custom operand")
	}
}

// algebraEqual is structural equality over the symbolic expression
// tree, used only to compare two Expression/Identity values (never
// folded by the interpreter itself).
func algebraEqual(a, b algebra.Expression) bool {
	switch av := a.(type) {
	case algebra.Number:
		bv, ok := b.(algebra.Number)
		return ok && av.Value.Equal(bv.Value)
	case algebra.Reference:
		bv, ok := b.(algebra.Reference)
		return ok && av.Name == bv.Name && av.PolyID == bv.PolyID && av.Next == bv.Next
	case algebra.BinaryOperation:
		bv, ok := b.(algebra.BinaryOperation)
		return ok && av.Operator == bv.Operator && algebraEqual(av.Left, bv.Left) && algebraEqual(av.Right, bv.Right)
	case algebra.UnaryOperation:
		bv, ok := b.(algebra.UnaryOperation)
		return ok && av.Operator == bv.Operator && algebraEqual(av.Inner, bv.Inner)
	default:
		return false
	}
}
