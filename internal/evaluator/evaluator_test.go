package evaluator

import (
	"math/big"
	"testing"

	"github.com/taikoonwang/powdr/internal/ast"
	"github.com/taikoonwang/powdr/internal/evalerror"
	"github.com/taikoonwang/powdr/internal/resolver"
	"github.com/taikoonwang/powdr/internal/typesystem"
	"github.com/taikoonwang/powdr/internal/value"
)

// recordingResolver and recordingHost back the Custom-delegation tests
// in operators_test.go.
type recordingResolver struct {
	resolver.Base
	binaryCalled bool
	unaryCalled  bool
}

func (r *recordingResolver) Lookup(name string, genericArgs []typesystem.Type) (value.Value, error) {
	return nil, evalerror.NewSymbolNotFound(name)
}

func (r *recordingResolver) EvalBinaryOperation(left value.Value, operator string, right value.Value) (value.Value, error) {
	r.binaryCalled = true
	return value.Bool{Value: true}, nil
}

func (r *recordingResolver) EvalUnaryOperation(operator string, inner value.Host) (value.Value, error) {
	r.unaryCalled = true
	return value.Bool{Value: true}, nil
}

type recordingHost struct{}

func (recordingHost) HostTypeName() string { return "custom" }
func (recordingHost) HostInspect() string  { return "<custom>" }

func intLit(n int64) *ast.NumberLiteral { return &ast.NumberLiteral{Value: big.NewInt(n)} }

// TestMapArrayTranslate applies an add-ten lambda to each element of
// [1, 2, 3] and checks the mapped values [11, 12, 13]. The word-translation
// scenario (a string match mapped over a 4-element array) is covered as
// data in internal/conformance/testdata/scenarios.yaml.
func TestMapArrayTranslate(t *testing.T) {
	in := New()
	in.Resolver = &recordingResolver{}

	addTen := &ast.LambdaExpression{
		ParamNames: []string{"x"},
		Body: &ast.BinaryOperation{
			Left:     &ast.LocalReference{Index: 0, Name: "x"},
			Operator: "+",
			Right:    intLit(10),
		},
	}
	fnVal, err := in.Eval(addTen, value.Environment{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	source := []int64{1, 2, 3}
	want := []int64{11, 12, 13}
	got := make([]int64, len(source))
	for i, n := range source {
		out, err := in.Apply(fnVal, []value.Value{value.Integer{Value: big.NewInt(n)}})
		if err != nil {
			t.Fatalf("Apply(%d) failed: %v", n, err)
		}
		iv, ok := out.(value.Integer)
		if !ok {
			t.Fatalf("Apply(%d) = %T, want Integer", n, out)
		}
		got[i] = iv.Value.Int64()
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

// fibResolver resolves the single global name "fib" to a fresh closure
// over its own recursive body every time it's looked up, letting the
// body's own GlobalReference("fib") recurse back through the resolver
// rather than through any self-referential value construction.
type fibResolver struct {
	resolver.Base
	in   *Interpreter
	body *ast.LambdaExpression
}

func (r *fibResolver) Lookup(name string, genericArgs []typesystem.Type) (value.Value, error) {
	if name == "fib" {
		return r.in.Eval(r.body, value.Environment{})
	}
	return nil, evalerror.NewSymbolNotFound(name)
}

// TestFibonacciViaRecursiveGlobalReference covers spec §8 scenario 2:
// fib(20) == 6765, exercising recursive global lookup, closures and
// strict binary dispatch together.
func TestFibonacciViaRecursiveGlobalReference(t *testing.T) {
	n := &ast.LocalReference{Index: 0, Name: "n"}
	fibBody := &ast.LambdaExpression{
		ParamNames: []string{"n"},
		Body: &ast.IfExpression{
			Condition: &ast.BinaryOperation{Left: n, Operator: "<", Right: intLit(2)},
			Then:      n,
			Else: &ast.BinaryOperation{
				Left: &ast.CallExpression{
					Callee:    &ast.GlobalReference{Name: "fib"},
					Arguments: []ast.Expression{&ast.BinaryOperation{Left: n, Operator: "-", Right: intLit(1)}},
				},
				Operator: "+",
				Right: &ast.CallExpression{
					Callee:    &ast.GlobalReference{Name: "fib"},
					Arguments: []ast.Expression{&ast.BinaryOperation{Left: n, Operator: "-", Right: intLit(2)}},
				},
			},
		},
	}

	in := New()
	in.Resolver = &fibResolver{in: in, body: fibBody}

	fn, err := in.Resolver.Lookup("fib", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := in.Apply(fn, []value.Value{value.Integer{Value: big.NewInt(20)}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	i, ok := got.(value.Integer)
	if !ok || i.Value.Cmp(big.NewInt(6765)) != 0 {
		t.Errorf("fib(20) = %v, want 6765", got)
	}
}

// TestLexicalCapture covers spec §8 scenario 3: a closure's captured
// environment is fixed at construction time and is unaffected by later
// calls (each call builds a fresh call environment; the capture is
// never mutated).
func TestLexicalCapture(t *testing.T) {
	in := New()

	captureEnv := value.Environment{value.Integer{Value: big.NewInt(100)}}
	lambda := &ast.LambdaExpression{
		ParamNames: []string{"x"},
		Body: &ast.BinaryOperation{
			Left:     &ast.LocalReference{Index: 0, Name: "x"},
			Operator: "+",
			Right:    &ast.LocalReference{Index: 1, Name: "captured"},
		},
	}
	closure, err := in.Eval(lambda, captureEnv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, tt := range []struct{ arg, want int64 }{
		{5, 105},
		{-3, 97},
	} {
		got, err := in.Apply(closure, []value.Value{value.Integer{Value: big.NewInt(tt.arg)}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		i, ok := got.(value.Integer)
		if !ok || i.Value.Cmp(big.NewInt(tt.want)) != 0 {
			t.Errorf("Apply(%d) = %v, want %d", tt.arg, got, tt.want)
		}
	}

	// The capture must be untouched: calling with a different argument
	// doesn't leak the previous call's argument into later calls.
	if captureEnv[0].(value.Integer).Value.Cmp(big.NewInt(100)) != 0 {
		t.Error("closure call mutated the captured environment")
	}
}

// TestArrayLenBuiltin covers spec §8 scenario 4.
func TestArrayLenBuiltin(t *testing.T) {
	in := New()
	in.Resolver = &recordingResolver{}

	three := &ast.CallExpression{
		Callee: &ast.GlobalReference{Name: "std::array::len"},
		Arguments: []ast.Expression{
			&ast.ArrayLiteral{Elements: []ast.Expression{intLit(1), intLit(2), intLit(3)}},
		},
	}
	got, err := in.Eval(three, value.Environment{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i, ok := got.(value.Integer); !ok || i.Value.Cmp(big.NewInt(3)) != 0 {
		t.Errorf("std::array::len([1,2,3]) = %v, want 3", got)
	}

	empty := &ast.CallExpression{
		Callee:    &ast.GlobalReference{Name: "std::array::len"},
		Arguments: []ast.Expression{&ast.ArrayLiteral{}},
	}
	got, err = in.Eval(empty, value.Environment{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i, ok := got.(value.Integer); !ok || i.Value.Sign() != 0 {
		t.Errorf("std::array::len([]) = %v, want 0", got)
	}
}

// TestPanicPropagation covers spec §8 scenario 5: evaluating
// (\i. if i==1 { std::check::panic("this " + "text") } else { [9] })(1)
// surfaces FailedAssertion("this text").
func TestPanicPropagation(t *testing.T) {
	in := New()
	in.Resolver = &recordingResolver{}

	n := &ast.LocalReference{Index: 0, Name: "i"}
	lambda := &ast.LambdaExpression{
		ParamNames: []string{"i"},
		Body: &ast.IfExpression{
			Condition: &ast.BinaryOperation{Left: n, Operator: "==", Right: intLit(1)},
			Then: &ast.CallExpression{
				Callee: &ast.GlobalReference{Name: "std::check::panic"},
				Arguments: []ast.Expression{
					&ast.BinaryOperation{
						Left:     &ast.StringLiteral{Value: "this "},
						Operator: "+",
						Right:    &ast.StringLiteral{Value: "text"},
					},
				},
			},
			Else: &ast.ArrayLiteral{Elements: []ast.Expression{intLit(9)}},
		},
	}

	fn, err := in.Eval(lambda, value.Environment{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = in.Apply(fn, []value.Value{value.Integer{Value: big.NewInt(1)}})
	fa, ok := err.(*evalerror.FailedAssertion)
	if !ok {
		t.Fatalf("got error %v (%T), want *FailedAssertion", err, err)
	}
	if fa.Message != "this text" {
		t.Errorf("message = %q, want %q", fa.Message, "this text")
	}
}

func TestMatchValueEquality(t *testing.T) {
	in := New()

	m := &ast.MatchExpression{
		Scrutinee: intLit(2),
		Arms: []ast.MatchArm{
			{Pattern: intLit(1), Body: &ast.StringLiteral{Value: "one"}},
			{Pattern: intLit(2), Body: &ast.StringLiteral{Value: "two"}},
			{Pattern: nil, Body: &ast.StringLiteral{Value: "other"}},
		},
	}
	got, err := in.Eval(m, value.Environment{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s, ok := got.(value.String); !ok || s.Value != "two" {
		t.Errorf("got %v, want String(\"two\")", got)
	}
}

func TestMatchNoArmFails(t *testing.T) {
	in := New()
	m := &ast.MatchExpression{
		Scrutinee: intLit(5),
		Arms: []ast.MatchArm{
			{Pattern: intLit(1), Body: &ast.StringLiteral{Value: "one"}},
		},
	}
	_, err := in.Eval(m, value.Environment{})
	if err != evalerror.ErrNoMatch {
		t.Errorf("got %v, want ErrNoMatch", err)
	}
}

func TestIndexOutOfBounds(t *testing.T) {
	in := New()
	idx := &ast.IndexExpression{
		Array: &ast.ArrayLiteral{Elements: []ast.Expression{intLit(1), intLit(2)}},
		Index: intLit(5),
	}
	_, err := in.Eval(idx, value.Environment{})
	if _, ok := err.(*evalerror.OutOfBounds); !ok {
		t.Errorf("got %v (%T), want *OutOfBounds", err, err)
	}
}
