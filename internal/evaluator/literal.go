package evaluator

import (
	"github.com/taikoonwang/powdr/internal/algebra"
	"github.com/taikoonwang/powdr/internal/ast"
	"github.com/taikoonwang/powdr/internal/evalerror"
	"github.com/taikoonwang/powdr/internal/field"
	"github.com/taikoonwang/powdr/internal/typesystem"
	"github.com/taikoonwang/powdr/internal/value"
)

// evalNumberLiteral resolves a numeric literal's concrete type and
// produces the matching value (spec §4.1, "Numeric literal"). An
// annotation naming a type variable is resolved through the current
// generic-type map; an unannotated literal defaults to Integer (spec
// §9's open question, resolved in favor of the current Integer
// default).
func (in *Interpreter) evalNumberLiteral(node *ast.NumberLiteral, generics typesystem.Bindings) (value.Value, error) {
	typeName := node.TypeName
	if node.TypeVar != "" {
		bound, ok := generics[node.TypeVar]
		if !ok {
			return nil, evalerror.NewTypeError("unresolved generic type variable %q in numeric literal", node.TypeVar)
		}
		tcon, ok := bound.(typesystem.TCon)
		if !ok {
			return nil, evalerror.NewTypeError("numeric literal's type variable %q resolved to a non-concrete type %s", node.TypeVar, bound)
		}
		typeName = tcon.Name
	}

	switch typeName {
	case "", "int":
		return value.Integer{Value: node.Value}, nil
	case "fe":
		fe, err := field.FromBigInt(node.Value)
		if err != nil {
			return nil, evalerror.NewTypeError("%s", err)
		}
		return value.FieldElement{Value: fe}, nil
	case "expr":
		fe, err := field.FromBigInt(node.Value)
		if err != nil {
			return nil, evalerror.NewTypeError("%s", err)
		}
		return value.Expression{Expr: algebra.Number{Value: fe}}, nil
	default:
		return nil, evalerror.NewTypeError("numeric literal cannot have type %q", typeName)
	}
}
