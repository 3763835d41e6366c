package evaluator

import (
	"github.com/taikoonwang/powdr/internal/ast"
	"github.com/taikoonwang/powdr/internal/evalerror"
	"github.com/taikoonwang/powdr/internal/typesystem"
	"github.com/taikoonwang/powdr/internal/value"
)

// evalMatchExpression implements spec §4.1's "Match": arms are visited
// in order, each pattern is itself an evaluated expression (not a
// binding form — spec §9, "Match is value-equality-based, not
// pattern-based"), and an arm matches on value equality with a
// fallback to Integer equality across Integer/FieldElement.
func (in *Interpreter) evalMatchExpression(node *ast.MatchExpression, env value.Environment, generics typesystem.Bindings) (value.Value, error) {
	scrutinee, err := in.EvalGeneric(node.Scrutinee, env, generics)
	if err != nil {
		return nil, err
	}

	for _, arm := range node.Arms {
		if arm.Pattern == nil {
			return in.EvalGeneric(arm.Body, env, generics)
		}
		patVal, err := in.EvalGeneric(arm.Pattern, env, generics)
		if err != nil {
			return nil, err
		}
		if patternMatches(patVal, scrutinee) {
			return in.EvalGeneric(arm.Body, env, generics)
		}
	}
	return nil, evalerror.ErrNoMatch
}

// patternMatches implements the match-arm comparison rule precisely
// (spec §4.1): value equality, or — only as a fallback when the two
// values aren't already value-equal — Integer equality across
// Integer/FieldElement.
func patternMatches(pattern, scrutinee value.Value) bool {
	if pattern.Kind() == scrutinee.Kind() {
		return value.Equal(pattern, scrutinee)
	}
	pi, errP := value.TryToInteger(pattern)
	si, errS := value.TryToInteger(scrutinee)
	if errP == nil && errS == nil {
		return pi.Cmp(si) == 0
	}
	return false
}
