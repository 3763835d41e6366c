// Package typesystem models the small set of concrete types the
// evaluator needs once the analyzer has already finished type checking:
// the "concrete type" half of a generic-argument binding (spec §3,
// "Generic arguments"). It intentionally carries none of the unifier,
// kind checker or dispatch machinery a full Hindley-Milner type checker
// would need (that belongs to the analyzer, an external collaborator
// per spec §1) — trimmed from the teacher's internal/typesystem down to
// the representation the evaluator itself touches: substitution and
// display.
package typesystem

import "strings"

// Bindings maps a type-variable name to the concrete type it is bound
// to in some enclosing generic-argument context (spec §3, "Generic
// arguments"). A closure snapshots the caller's Bindings at capture
// time.
type Bindings map[string]Type

// Type is the closed family of concrete types a generic-argument map can
// bind a type variable to.
type Type interface {
	isType()
	String() string
}

// TCon is a nullary type constructor, e.g. "Int" or "fe".
type TCon struct {
	Name string
}

func (TCon) isType()         {}
func (t TCon) String() string { return t.Name }

// TVar is a type variable awaiting substitution, e.g. "T".
type TVar struct {
	Name string
}

func (TVar) isType()         {}
func (t TVar) String() string { return t.Name }

// TApp is an applied type constructor, e.g. "Array<Int>".
type TApp struct {
	Constructor Type
	Args        []Type
}

func (TApp) isType() {}
func (t TApp) String() string {
	var b strings.Builder
	b.WriteString(t.Constructor.String())
	b.WriteString("<")
	for i, a := range t.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteString(">")
	return b.String()
}

// Substitute replaces any TVar in t found in bindings with its bound
// concrete type, recursively. Type variables with no entry in bindings
// are left untouched (the caller's own enclosing map, if any, handles
// them at the next level up).
func Substitute(t Type, bindings map[string]Type) Type {
	switch tt := t.(type) {
	case TVar:
		if bound, ok := bindings[tt.Name]; ok {
			return bound
		}
		return tt
	case TApp:
		args := make([]Type, len(tt.Args))
		for i, a := range tt.Args {
			args[i] = Substitute(a, bindings)
		}
		return TApp{Constructor: Substitute(tt.Constructor, bindings), Args: args}
	default:
		return t
	}
}
