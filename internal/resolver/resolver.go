// Package resolver defines the symbol-resolver capability the
// interpreter is parameterized over (spec §4.3): global-name lookup,
// public references, and delegation of any operation touching a
// Custom value.
//
// Grounded directly on original_source/pil-analyzer/src/evaluator.rs's
// SymbolLookup trait, translating Rust's default-method trait bodies
// into Go's struct-embedding idiom (Base supplies the defaults;
// a concrete resolver embeds it and overrides only Lookup).
package resolver

import (
	"github.com/taikoonwang/powdr/internal/algebra"
	"github.com/taikoonwang/powdr/internal/evalerror"
	"github.com/taikoonwang/powdr/internal/typesystem"
	"github.com/taikoonwang/powdr/internal/value"
)

// Resolver is the capability the interpreter consults for anything it
// cannot decide on its own (spec §4.3).
type Resolver interface {
	// Lookup resolves a global dotted name not found in the built-in
	// table, optionally instantiated with concrete generic arguments.
	Lookup(name string, genericArgs []typesystem.Type) (value.Value, error)
	// LookupPublicReference resolves a public reference.
	LookupPublicReference(name string) (value.Value, error)
	// EvalBinaryOperation is invoked only when at least one operand is
	// a Custom value (spec §4.1, binary dispatch rule 1).
	EvalBinaryOperation(left value.Value, operator string, right value.Value) (value.Value, error)
	// EvalUnaryOperation is invoked only when the operand is a Custom
	// value (spec §4.1, "For Custom, delegate").
	EvalUnaryOperation(operator string, inner value.Host) (value.Value, error)
	// EvalExpr evaluates a symbolic expression in whatever concrete
	// context the caller has available (spec §4.4, std::prover::eval).
	EvalExpr(expr algebra.Expression) (value.Value, error)
}

// Base supplies the default method bodies spec §4.3 describes for
// every Resolver method except Lookup, which has no sensible default
// (original_source's SymbolLookup trait leaves it with no default
// body at all). Embed Base in a concrete resolver and override what
// you need.
type Base struct{}

func (Base) LookupPublicReference(name string) (value.Value, error) {
	return nil, evalerror.NewUnsupported("cannot evaluate public reference: %s", name)
}

func (Base) EvalBinaryOperation(left value.Value, operator string, right value.Value) (value.Value, error) {
	return nil, evalerror.NewUnsupported("custom binary operation %q is not supported by this resolver", operator)
}

func (Base) EvalUnaryOperation(operator string, inner value.Host) (value.Value, error) {
	return nil, evalerror.NewUnsupported("custom unary operation %q is not supported by this resolver", operator)
}

func (Base) EvalExpr(expr algebra.Expression) (value.Value, error) {
	return nil, evalerror.ErrDataNotAvailable
}
