// Package definitions implements the default, definitions-map-backed
// resolver (spec §4.3, "The default resolver (backed by a definitions
// map)"): an analyzer-supplied table from dotted name to symbol/
// definition pair, and the Resolver that serves global lookups out of
// it.
//
// Grounded on the shape of original_source/pil-analyzer/src/evaluator.rs's
// Definitions-backed SymbolLookup implementation, and on the teacher's
// two-phase wiring pattern for anything that must call back into the
// evaluator it's parameterized by (funxy's internal/evaluator module
// registry, constructed separately from the Evaluator and wired in
// after both exist).
package definitions

import (
	"fmt"

	"github.com/taikoonwang/powdr/internal/algebra"
	"github.com/taikoonwang/powdr/internal/ast"
	"github.com/taikoonwang/powdr/internal/evaluator"
	"github.com/taikoonwang/powdr/internal/evalerror"
	"github.com/taikoonwang/powdr/internal/resolver"
	"github.com/taikoonwang/powdr/internal/typesystem"
	"github.com/taikoonwang/powdr/internal/value"
)

// Definition is the closed family of things a dotted name can name
// (spec §10, "Analyzer input": "Symbol describes kind (polynomial
// column vs other)").
type Definition interface {
	isDefinition()
}

// PolyColumn names a polynomial column, scalar or array-shaped. Length
// 0 means scalar; a positive Length means an array of that many
// per-element references, each with consecutive polynomial IDs
// starting at PolyID.
type PolyColumn struct {
	PolyID uint64
	Length int
}

func (PolyColumn) isDefinition() {}

// ExpressionDefinition is a typed expression definition: a body to
// evaluate and the generic type-variable scheme it was declared with,
// if any (spec §4.3, "Generic-argument mapping").
type ExpressionDefinition struct {
	Body       ast.Expression
	TypeScheme []string
}

func (ExpressionDefinition) isDefinition() {}

// Map is the analyzer-supplied table of dotted name to definition.
type Map map[string]Definition

// GenericArgMapping derives the effective generic-type bindings for a
// use site from its declared scheme and the concrete arguments
// supplied at the call, following spec §4.3's three cases exactly.
func GenericArgMapping(scheme []string, concrete []typesystem.Type) (typesystem.Bindings, error) {
	if len(scheme) == 0 {
		return typesystem.Bindings{}, nil
	}
	if concrete == nil {
		return nil, evalerror.NewTypeError("symbol has %d generic type variable(s) but was referenced with none", len(scheme))
	}
	if len(scheme) != len(concrete) {
		return nil, evalerror.NewTypeError("generic argument count mismatch: scheme declares %d variable(s), call site supplied %d", len(scheme), len(concrete))
	}
	bindings := make(typesystem.Bindings, len(scheme))
	for i, name := range scheme {
		bindings[name] = concrete[i]
	}
	return bindings, nil
}

// Resolver serves global lookups out of a Map (spec §4.3, "The default
// resolver"). Interp is set after construction, once the Interpreter
// that will hold this Resolver also exists, because evaluating an
// ExpressionDefinition's body requires recursively invoking it.
type Resolver struct {
	resolver.Base
	Defs   Map
	Interp *evaluator.Interpreter
}

// NewResolver builds a Resolver over defs. Callers must set Interp
// before the first Lookup that resolves an ExpressionDefinition.
func NewResolver(defs Map) *Resolver {
	return &Resolver{Defs: defs}
}

// Lookup implements spec §4.3's default resolver lookup rule.
func (r *Resolver) Lookup(name string, genericArgs []typesystem.Type) (value.Value, error) {
	def, ok := r.Defs[name]
	if !ok {
		return nil, evalerror.NewSymbolNotFound(name)
	}
	switch d := def.(type) {
	case PolyColumn:
		if d.Length == 0 {
			return value.Expression{Expr: algebra.Reference{Name: name, PolyID: d.PolyID}}, nil
		}
		elems := make([]value.Value, d.Length)
		for i := range elems {
			elems[i] = value.Expression{Expr: algebra.Reference{
				Name:   fmt.Sprintf("%s[%d]", name, i),
				PolyID: d.PolyID + uint64(i),
			}}
		}
		return value.Array{Elements: elems}, nil
	case ExpressionDefinition:
		bindings, err := GenericArgMapping(d.TypeScheme, genericArgs)
		if err != nil {
			return nil, err
		}
		return r.Interp.EvalGeneric(d.Body, value.Environment{}, bindings)
	default:
		return nil, evalerror.NewUnsupported("unsupported definition kind for %s", name)
	}
}
