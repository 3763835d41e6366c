package evaluator

import (
	"github.com/taikoonwang/powdr/internal/ast"
	"github.com/taikoonwang/powdr/internal/evalerror"
	"github.com/taikoonwang/powdr/internal/typesystem"
	"github.com/taikoonwang/powdr/internal/value"
)

// evalIndexExpression implements spec §4.1's "Index access": the
// indexed value must be an Array, the index must be an Integer, and a
// negative or too-large index raises OutOfBounds rather than a type
// error (spec §8, "Index bounds").
func (in *Interpreter) evalIndexExpression(node *ast.IndexExpression, env value.Environment, generics typesystem.Bindings) (value.Value, error) {
	arrVal, err := in.EvalGeneric(node.Array, env, generics)
	if err != nil {
		return nil, err
	}
	arr, ok := arrVal.(value.Array)
	if !ok {
		return nil, evalerror.NewTypeError("cannot index into %s: not an array", arrVal.TypeName())
	}

	idxVal, err := in.EvalGeneric(node.Index, env, generics)
	if err != nil {
		return nil, err
	}
	idx, ok := idxVal.(value.Integer)
	if !ok {
		return nil, evalerror.NewTypeError("array index must be an int, got %s", idxVal.TypeName())
	}

	if !idx.Value.IsInt64() {
		return nil, evalerror.NewOutOfBounds("array index %s is out of bounds for array of length %d", idx.Value, len(arr.Elements))
	}
	i := idx.Value.Int64()
	if i < 0 || i >= int64(len(arr.Elements)) {
		return nil, evalerror.NewOutOfBounds("array index %d is out of bounds for array of length %d", i, len(arr.Elements))
	}
	return arr.Elements[i], nil
}
