// Package value implements the closed Value universe the interpreter
// manipulates (spec §3, §4.2): the runtime values of the language,
// including the symbolic Expression and Identity variants, plus the
// conversions and display rules §4.2 specifies.
//
// Grounded on the teacher's internal/evaluator/object*.go family (an
// Object interface with Type()/Inspect(), one struct per variant,
// scalars compared by field equality) adapted to the exact variant
// list spec §3 names, with Integer widened to *big.Int (spec requires
// arbitrary precision) and FieldElement backed by internal/field.
package value

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/taikoonwang/powdr/internal/algebra"
	"github.com/taikoonwang/powdr/internal/field"
	"github.com/taikoonwang/powdr/internal/typesystem"
)

// Kind names a Value variant, mirroring the teacher's ObjectType enum.
type Kind string

const (
	KindBool            Kind = "Bool"
	KindInteger         Kind = "Integer"
	KindFieldElement    Kind = "FieldElement"
	KindString          Kind = "String"
	KindTuple           Kind = "Tuple"
	KindArray           Kind = "Array"
	KindClosure         Kind = "Closure"
	KindBuiltinFunction Kind = "BuiltinFunction"
	KindExpression      Kind = "Expression"
	KindIdentity        Kind = "Identity"
	KindCustom          Kind = "Custom"
)

// Value is the closed union of runtime values (spec §3).
type Value interface {
	Kind() Kind
	// Inspect renders the value's canonical display form (spec §4.2,
	// "Display"). It is total: it never fails for a well-formed value.
	Inspect() string
	// TypeName renders the value's type-name string (spec §4.2).
	TypeName() string
}

// Environment is an ordered sequence of shared value handles, addressed
// by the small integer indices the analyzer injects (spec §3,
// "Environment"). It is immutable once captured by a closure; building
// a new Environment for a call never mutates an existing one.
type Environment []Value

// Bool is a boolean value.
type Bool struct{ Value bool }

func (Bool) Kind() Kind          { return KindBool }
func (b Bool) Inspect() string   { return fmt.Sprintf("%t", b.Value) }
func (Bool) TypeName() string    { return "bool" }

// Integer is an arbitrary-precision signed integer.
type Integer struct{ Value *big.Int }

func (Integer) Kind() Kind        { return KindInteger }
func (i Integer) Inspect() string { return i.Value.String() }
func (Integer) TypeName() string  { return "int" }

// FieldElement is a canonical element of the configured prime field.
type FieldElement struct{ Value field.Element }

func (FieldElement) Kind() Kind        { return KindFieldElement }
func (f FieldElement) Inspect() string { return f.Value.String() }
func (FieldElement) TypeName() string  { return "fe" }

// String is immutable text.
type String struct{ Value string }

func (String) Kind() Kind        { return KindString }
func (s String) Inspect() string { return fmt.Sprintf("%q", s.Value) }
func (String) TypeName() string  { return "string" }

// Tuple is a heterogeneous fixed-length sequence.
type Tuple struct{ Elements []Value }

func (Tuple) Kind() Kind { return KindTuple }
func (t Tuple) Inspect() string {
	parts := make([]string, len(t.Elements))
	for i, el := range t.Elements {
		parts[i] = el.Inspect()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (t Tuple) TypeName() string {
	parts := make([]string, len(t.Elements))
	for i, el := range t.Elements {
		parts[i] = el.TypeName()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Array is homogeneous at the language level, heterogeneous at runtime.
type Array struct{ Elements []Value }

func (Array) Kind() Kind { return KindArray }
func (a Array) Inspect() string {
	parts := make([]string, len(a.Elements))
	for i, el := range a.Elements {
		parts[i] = el.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (a Array) TypeName() string {
	if len(a.Elements) == 0 {
		return "[]"
	}
	return "[" + a.Elements[0].TypeName() + "]"
}

// Lambda is the subset of the source expression tree a Closure exposes
// to this package: its parameter count. It is declared here as an
// interface so package value does not import package ast;
// internal/evaluator builds one of these directly from an
// *ast.LambdaExpression and reads the body back from its own wrapper.
type Lambda interface {
	Arity() int
}

// Closure pairs a λ-expression with its captured environment and a
// snapshot of the generic-type bindings in effect at capture time
// (spec §3, "Closure"; spec §9, "Closures capture the whole
// environment").
type Closure struct {
	Lambda   Lambda
	Env      Environment
	Generics typesystem.Bindings
}

func (Closure) Kind() Kind       { return KindClosure }
func (Closure) Inspect() string  { return "<closure>" }
func (Closure) TypeName() string { return "closure" }

// BuiltinTag enumerates the eight fixed intrinsics (spec §4.4).
type BuiltinTag string

const (
	BuiltinArrayLen      BuiltinTag = "array_len"
	BuiltinCheckPanic    BuiltinTag = "check_panic"
	BuiltinConvertExpr   BuiltinTag = "convert_expr"
	BuiltinConvertFe     BuiltinTag = "convert_fe"
	BuiltinConvertInt    BuiltinTag = "convert_int"
	BuiltinDebugPrint    BuiltinTag = "debug_print"
	BuiltinFieldModulus  BuiltinTag = "field_modulus"
	BuiltinProverEval    BuiltinTag = "prover_eval"
)

// BuiltinFunction is a reference to one of the enumerated intrinsics.
type BuiltinFunction struct{ Tag BuiltinTag }

func (BuiltinFunction) Kind() Kind        { return KindBuiltinFunction }
func (b BuiltinFunction) Inspect() string { return "<builtin " + string(b.Tag) + ">" }
func (b BuiltinFunction) TypeName() string {
	return "builtin_" + string(b.Tag)
}

// Expression wraps a symbolic algebraic expression.
type Expression struct{ Expr algebra.Expression }

func (Expression) Kind() Kind        { return KindExpression }
func (e Expression) Inspect() string { return e.Expr.String() }
func (Expression) TypeName() string  { return "expr" }

// Identity is an unresolved constraint between two symbolic
// expressions, produced only by the `=` operator on two Expressions
// (spec §4.1, rule 8; never folded, per spec §8's "Identity symmetry").
type Identity struct {
	Left  algebra.Expression
	Right algebra.Expression
}

func (Identity) Kind() Kind        { return KindIdentity }
func (i Identity) Inspect() string { return i.Left.String() + " = " + i.Right.String() }
func (Identity) TypeName() string  { return "constr" }

// Host is the capability a Custom value exposes to the interpreter: a
// display name and rendering, nothing else. All operator semantics for
// a Custom value live in the resolver (spec §3, "A Custom value is
// opaque"); the interpreter never type-switches into Host's concrete
// type.
type Host interface {
	HostTypeName() string
	HostInspect() string
}

// Custom wraps a host-provided opaque value.
type Custom struct{ Host Host }

func (Custom) Kind() Kind          { return KindCustom }
func (c Custom) Inspect() string   { return c.Host.HostInspect() }
func (c Custom) TypeName() string  { return c.Host.HostTypeName() }
