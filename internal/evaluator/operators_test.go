package evaluator

import (
	"math/big"
	"testing"

	"github.com/taikoonwang/powdr/internal/algebra"
	"github.com/taikoonwang/powdr/internal/evalerror"
	"github.com/taikoonwang/powdr/internal/field"
	"github.com/taikoonwang/powdr/internal/value"
)

func bi(n int64) *big.Int { return big.NewInt(n) }

func TestIntegerArithmetic(t *testing.T) {
	in := New()
	tests := []struct {
		op   string
		l, r int64
		want int64
	}{
		{"+", 2, 3, 5},
		{"-", 5, 3, 2},
		{"*", 4, 3, 12},
		{"/", 7, 2, 3},
		{"%", 7, 2, 1},
		{"&", 6, 3, 2},
		{"|", 4, 1, 5},
		{"^", 5, 3, 6},
		{"<<", 1, 4, 16},
		{">>", 16, 4, 1},
		{"**", 2, 10, 1024},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			got, err := in.evalBinaryOperation(tt.op, value.Integer{Value: bi(tt.l)}, value.Integer{Value: bi(tt.r)})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			i, ok := got.(value.Integer)
			if !ok || i.Value.Cmp(bi(tt.want)) != 0 {
				t.Errorf("%d %s %d = %v, want %d", tt.l, tt.op, tt.r, got, tt.want)
			}
		})
	}
}

func TestIntegerDivisionByZeroIsTypeError(t *testing.T) {
	in := New()
	for _, op := range []string{"/", "%"} {
		_, err := in.evalBinaryOperation(op, value.Integer{Value: bi(1)}, value.Integer{Value: bi(0)})
		if _, ok := err.(*evalerror.TypeError); !ok {
			t.Errorf("op %q by zero: got %v (%T), want *TypeError", op, err, err)
		}
	}
}

func TestZeroToTheZeroIsOne(t *testing.T) {
	in := New()

	got, err := in.evalBinaryOperation("**", value.Integer{Value: bi(0)}, value.Integer{Value: bi(0)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i, ok := got.(value.Integer); !ok || i.Value.Cmp(bi(1)) != 0 {
		t.Errorf("0**0 (Integer) = %v, want 1", got)
	}

	fe0 := value.FieldElement{Value: field.Zero()}
	got, err = in.evalBinaryOperation("**", fe0, value.Integer{Value: bi(0)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f, ok := got.(value.FieldElement); !ok || !f.Value.Equal(field.One()) {
		t.Errorf("0**0 (FieldElement) = %v, want 1", got)
	}
}

func TestFieldElementRestrictedOperatorSet(t *testing.T) {
	in := New()
	a := value.FieldElement{Value: field.FromUint64(5)}
	b := value.FieldElement{Value: field.FromUint64(3)}

	if _, err := in.evalBinaryOperation("/", a, b); err == nil {
		t.Error("expected an error: / is not defined between two FieldElements")
	}

	got, err := in.evalBinaryOperation("+", a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f, ok := got.(value.FieldElement); !ok || !f.Value.Equal(field.FromUint64(8)) {
		t.Errorf("5+3 = %v, want 8", got)
	}
}

func TestArrayAndStringConcatenation(t *testing.T) {
	in := New()

	arr, err := in.evalBinaryOperation("+",
		value.Array{Elements: []value.Value{value.Integer{Value: bi(1)}}},
		value.Array{Elements: []value.Value{value.Integer{Value: bi(2)}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, ok := arr.(value.Array)
	if !ok || len(a.Elements) != 2 {
		t.Errorf("got %v, want a 2-element array", arr)
	}

	s, err := in.evalBinaryOperation("+", value.String{Value: "this "}, value.String{Value: "text"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if str, ok := s.(value.String); !ok || str.Value != "this text" {
		t.Errorf("got %v, want %q", s, "this text")
	}
}

func TestBoolOperatorsAreStrict(t *testing.T) {
	in := New()
	got, err := in.evalBinaryOperation("&&", value.Bool{Value: true}, value.Bool{Value: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, ok := got.(value.Bool); !ok || b.Value {
		t.Errorf("true && false = %v, want false", got)
	}
}

func TestExpressionNumberFold(t *testing.T) {
	in := New()
	a := value.Expression{Expr: algebra.Number{Value: field.FromUint64(2)}}
	b := value.Expression{Expr: algebra.Number{Value: field.FromUint64(3)}}

	got, err := in.evalBinaryOperation("+", a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e, ok := got.(value.Expression)
	if !ok {
		t.Fatalf("got %T, want value.Expression", got)
	}
	n, ok := e.Expr.(algebra.Number)
	if !ok || !n.Value.Equal(field.FromUint64(5)) {
		t.Errorf("got %v, want Expression(Number(5))", got)
	}
}

func TestExpressionEqualityFoldsToBool(t *testing.T) {
	in := New()
	a := value.Expression{Expr: algebra.Number{Value: field.FromUint64(2)}}
	b := value.Expression{Expr: algebra.Number{Value: field.FromUint64(2)}}

	got, err := in.evalBinaryOperation("==", a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, ok := got.(value.Bool); !ok || !b.Value {
		t.Errorf("got %v, want Bool(true)", got)
	}
}

func TestExpressionSymbolicBinaryOnReferences(t *testing.T) {
	in := New()
	a := value.Expression{Expr: algebra.Reference{Name: "x"}}
	b := value.Expression{Expr: algebra.Reference{Name: "y"}}

	got, err := in.evalBinaryOperation("+", a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e, ok := got.(value.Expression)
	if !ok {
		t.Fatalf("got %T, want value.Expression", got)
	}
	bop, ok := e.Expr.(algebra.BinaryOperation)
	if !ok || bop.Operator != "+" {
		t.Errorf("got %v, want a structural + node", got)
	}
}

func TestIdentityNeverFolds(t *testing.T) {
	in := New()
	a := value.Expression{Expr: algebra.Number{Value: field.FromUint64(1)}}
	b := value.Expression{Expr: algebra.Number{Value: field.FromUint64(1)}}

	got, err := in.evalBinaryOperation("=", a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got.(value.Identity); !ok {
		t.Errorf("got %T, want value.Identity (never folded)", got)
	}
}

func TestBinaryDispatchFallsThroughToTypeError(t *testing.T) {
	in := New()
	_, err := in.evalBinaryOperation("+", value.Bool{Value: true}, value.Integer{Value: bi(1)})
	if _, ok := err.(*evalerror.TypeError); !ok {
		t.Errorf("got %v (%T), want *TypeError", err, err)
	}
}

func TestUnaryMinusAndNot(t *testing.T) {
	in := New()

	got, err := in.evalUnaryOperation("-", value.Integer{Value: bi(5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i, ok := got.(value.Integer); !ok || i.Value.Cmp(bi(-5)) != 0 {
		t.Errorf("-5 = %v, want -5", got)
	}

	got, err = in.evalUnaryOperation("!", value.Bool{Value: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, ok := got.(value.Bool); !ok || b.Value {
		t.Errorf("!true = %v, want false", got)
	}
}

func TestNextOperatorMonotonicity(t *testing.T) {
	in := New()
	ref := value.Expression{Expr: algebra.Reference{Name: "x"}}

	got, err := in.evalUnaryOperation("'", ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e, ok := got.(value.Expression)
	if !ok {
		t.Fatalf("got %T, want value.Expression", got)
	}
	r, ok := e.Expr.(algebra.Reference)
	if !ok || !r.Next {
		t.Fatalf("got %v, want a Reference with Next=true", got)
	}

	if _, err := in.evalUnaryOperation("'", got); err == nil {
		t.Error("applying the next operator twice should fail")
	}
}

func TestNextOnNonReferenceBuildsSymbolicNode(t *testing.T) {
	in := New()
	inner := value.Expression{Expr: algebra.BinaryOperation{
		Left:     algebra.Reference{Name: "x"},
		Operator: "+",
		Right:    algebra.Reference{Name: "y"},
	}}

	got, err := in.evalUnaryOperation("'", inner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e, ok := got.(value.Expression)
	if !ok {
		t.Fatalf("got %T, want value.Expression", got)
	}
	if _, ok := e.Expr.(algebra.UnaryOperation); !ok {
		t.Errorf("got %v, want a structural unary node", got)
	}
}

func TestCustomOperandsAreDelegated(t *testing.T) {
	in := New()
	in.Resolver = &recordingResolver{}
	c := value.Custom{Host: recordingHost{}}

	if _, err := in.evalBinaryOperation("+", c, value.Integer{Value: bi(1)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rr := in.Resolver.(*recordingResolver)
	if !rr.binaryCalled {
		t.Error("expected EvalBinaryOperation to be delegated to the resolver")
	}

	if _, err := in.evalUnaryOperation("-", c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rr.unaryCalled {
		t.Error("expected EvalUnaryOperation to be delegated to the resolver")
	}
}
