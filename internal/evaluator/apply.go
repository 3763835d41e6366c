package evaluator

import (
	"github.com/taikoonwang/powdr/internal/ast"
	"github.com/taikoonwang/powdr/internal/builtins"
	"github.com/taikoonwang/powdr/internal/evalerror"
	"github.com/taikoonwang/powdr/internal/typesystem"
	"github.com/taikoonwang/powdr/internal/value"
)

func (in *Interpreter) evalCallExpression(node *ast.CallExpression, env value.Environment, generics typesystem.Bindings) (value.Value, error) {
	callee, err := in.EvalGeneric(node.Callee, env, generics)
	if err != nil {
		return nil, err
	}
	args, err := in.evalExpressions(node.Arguments, env, generics)
	if err != nil {
		return nil, err
	}
	return in.Apply(callee, args)
}

// Apply applies a callable value (closure or built-in) to a list of
// pre-evaluated arguments (spec §4.1, entry point 3 / "Application").
func (in *Interpreter) Apply(callable value.Value, args []value.Value) (value.Value, error) {
	switch fn := callable.(type) {
	case value.BuiltinFunction:
		return builtins.Call(fn.Tag, in.Out, in.Resolver, args)
	case value.Closure:
		lam, ok := fn.Lambda.(lambdaAdapter)
		if !ok {
			return nil, evalerror.NewTypeError("closure lambda has unexpected representation %T", fn.Lambda)
		}
		node := lam.Node()
		if len(args) != len(node.ParamNames) {
			return nil, evalerror.NewTypeError("closure expects %d argument(s), got %d", len(node.ParamNames), len(args))
		}
		// Parameter i lives at local index i; captured variables
		// follow, in the order they were captured (spec §4.1,
		// "Application": "concatenation of arguments followed by the
		// captured environment"). A fresh slice is built every call so
		// the closure's own captured environment is never mutated.
		callEnv := make(value.Environment, 0, len(args)+len(fn.Env))
		callEnv = append(callEnv, args...)
		callEnv = append(callEnv, fn.Env...)
		return in.EvalGeneric(node.Body, callEnv, fn.Generics)
	default:
		return nil, evalerror.NewTypeError("cannot call a value of type %s", callable.TypeName())
	}
}
