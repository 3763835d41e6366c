package conformance

import (
	"fmt"
	"math/big"

	"github.com/taikoonwang/powdr/internal/definitions"
	"github.com/taikoonwang/powdr/internal/evalerror"
	"github.com/taikoonwang/powdr/internal/evaluator"
	"github.com/taikoonwang/powdr/internal/value"
)

// Run builds a fresh interpreter over the scenario's definitions map,
// looks up Eval, optionally applies ApplyArgs, and returns the
// result's display form.
func Run(s Scenario) (string, error) {
	defs, err := s.File.ToDefinitions()
	if err != nil {
		return "", err
	}

	resolv := definitions.NewResolver(defs)
	interp := evaluator.New()
	interp.Resolver = resolv
	resolv.Interp = interp

	result, err := interp.Resolver.Lookup(s.Eval, nil)
	if err != nil {
		return "", err
	}

	for _, arg := range s.ApplyArgs {
		n, ok := new(big.Int).SetString(arg, 10)
		if !ok {
			return "", fmt.Errorf("invalid apply_args literal %q", arg)
		}
		result, err = interp.Apply(result, []value.Value{value.Integer{Value: n}})
		if err != nil {
			return "", err
		}
	}

	return result.Inspect(), nil
}

// ErrorKind names the evalerror type of err, or "" if err is nil or
// not one of the closed taxonomy's types.
func ErrorKind(err error) string {
	switch err.(type) {
	case *evalerror.TypeError:
		return "TypeError"
	case *evalerror.Unsupported:
		return "Unsupported"
	case *evalerror.OutOfBounds:
		return "OutOfBounds"
	case *evalerror.NoMatch:
		return "NoMatch"
	case *evalerror.SymbolNotFound:
		return "SymbolNotFound"
	case *evalerror.DataNotAvailable:
		return "DataNotAvailable"
	case *evalerror.FailedAssertion:
		return "FailedAssertion"
	default:
		return ""
	}
}
