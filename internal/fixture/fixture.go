// Package fixture implements a small YAML DSL for building evaluator
// inputs without a full PIL parser/analyzer front end, which is
// explicitly out of scope (spec §1). It backs both the `pilcheck` demo
// CLI and the conformance test harness, which load the exact same
// shape of file for two different purposes (single evaluation vs.
// bulk scenario checking).
package fixture

import (
	"fmt"
	"math/big"

	"github.com/taikoonwang/powdr/internal/ast"
	"github.com/taikoonwang/powdr/internal/definitions"
)

// File is one fixture's analyzer-supplied definitions map, plus the
// name of the definition a standalone consumer (like pilcheck) should
// evaluate by default.
type File struct {
	Eval        string         `yaml:"eval"`
	Definitions map[string]Def `yaml:"definitions"`
}

// Def is one entry of a File's definitions map.
type Def struct {
	Kind       string   `yaml:"kind"` // "poly_column" or "expression"
	PolyID     uint64   `yaml:"poly_id"`
	Length     int      `yaml:"length"`
	TypeScheme []string `yaml:"type_scheme"`
	Body       *Expr    `yaml:"body"`
}

// Expr is a node of the recursive expression DSL: enough to build
// every ast.Expression variant a hand-written fixture is likely to
// need (numeric/string literals, references, operators, lambdas,
// calls, arrays, indexing, conditionals, match).
type Expr struct {
	Kind       string   `yaml:"kind"`
	Value      string   `yaml:"value"`
	Type       string   `yaml:"type"` // concrete type name for a "number" literal, e.g. "fe"
	Operator   string   `yaml:"operator"`
	Left       *Expr    `yaml:"left"`
	Right      *Expr    `yaml:"right"`
	Inner      *Expr    `yaml:"inner"`
	Name       string   `yaml:"name"`
	Index      int      `yaml:"index"`
	ParamNames []string `yaml:"params"`
	Body       *Expr    `yaml:"body"`
	Callee     *Expr    `yaml:"callee"`
	Arguments  []*Expr  `yaml:"arguments"`
	Elements   []*Expr  `yaml:"elements"`
	Array      *Expr    `yaml:"array"`
	Condition  *Expr    `yaml:"condition"`
	Then       *Expr    `yaml:"then"`
	Else       *Expr    `yaml:"else"`
	Scrutinee  *Expr    `yaml:"scrutinee"`
	Arms       []Arm    `yaml:"arms"`
}

// Arm is one arm of a "match" expression. A nil Pattern is the
// catch-all arm.
type Arm struct {
	Pattern *Expr `yaml:"pattern"`
	Body    *Expr `yaml:"body"`
}

// ToDefinitions converts every entry of f.Definitions to its
// definitions.Definition counterpart.
func (f File) ToDefinitions() (definitions.Map, error) {
	out := make(definitions.Map, len(f.Definitions))
	for name, d := range f.Definitions {
		def, err := d.toDefinition()
		if err != nil {
			return nil, fmt.Errorf("definition %q: %w", name, err)
		}
		out[name] = def
	}
	return out, nil
}

func (d Def) toDefinition() (definitions.Definition, error) {
	switch d.Kind {
	case "poly_column":
		return definitions.PolyColumn{PolyID: d.PolyID, Length: d.Length}, nil
	case "expression":
		if d.Body == nil {
			return nil, fmt.Errorf("expression definition has no body")
		}
		body, err := d.Body.ToAST()
		if err != nil {
			return nil, err
		}
		return definitions.ExpressionDefinition{Body: body, TypeScheme: d.TypeScheme}, nil
	default:
		return nil, fmt.Errorf("unknown definition kind %q", d.Kind)
	}
}

// ToAST converts a DSL expression node into the ast.Expression it
// describes.
func (e *Expr) ToAST() (ast.Expression, error) {
	if e == nil {
		return nil, fmt.Errorf("missing expression")
	}
	switch e.Kind {
	case "number":
		n, ok := new(big.Int).SetString(e.Value, 10)
		if !ok {
			return nil, fmt.Errorf("invalid number literal %q", e.Value)
		}
		return &ast.NumberLiteral{Value: n, TypeName: e.Type}, nil
	case "string":
		return &ast.StringLiteral{Value: e.Value}, nil
	case "binary":
		left, err := e.Left.ToAST()
		if err != nil {
			return nil, err
		}
		right, err := e.Right.ToAST()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOperation{Left: left, Operator: e.Operator, Right: right}, nil
	case "unary":
		inner, err := e.Inner.ToAST()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOperation{Operator: e.Operator, Inner: inner}, nil
	case "global":
		return &ast.GlobalReference{Name: e.Name}, nil
	case "local":
		return &ast.LocalReference{Index: e.Index, Name: e.Name}, nil
	case "lambda":
		body, err := e.Body.ToAST()
		if err != nil {
			return nil, err
		}
		return &ast.LambdaExpression{ParamNames: e.ParamNames, Body: body}, nil
	case "call":
		callee, err := e.Callee.ToAST()
		if err != nil {
			return nil, err
		}
		args := make([]ast.Expression, len(e.Arguments))
		for i, a := range e.Arguments {
			av, err := a.ToAST()
			if err != nil {
				return nil, err
			}
			args[i] = av
		}
		return &ast.CallExpression{Callee: callee, Arguments: args}, nil
	case "array":
		elems := make([]ast.Expression, len(e.Elements))
		for i, el := range e.Elements {
			ev, err := el.ToAST()
			if err != nil {
				return nil, err
			}
			elems[i] = ev
		}
		return &ast.ArrayLiteral{Elements: elems}, nil
	case "index":
		arr, err := e.Array.ToAST()
		if err != nil {
			return nil, err
		}
		idx, err := e.Inner.ToAST()
		if err != nil {
			return nil, err
		}
		return &ast.IndexExpression{Array: arr, Index: idx}, nil
	case "if":
		cond, err := e.Condition.ToAST()
		if err != nil {
			return nil, err
		}
		then, err := e.Then.ToAST()
		if err != nil {
			return nil, err
		}
		els, err := e.Else.ToAST()
		if err != nil {
			return nil, err
		}
		return &ast.IfExpression{Condition: cond, Then: then, Else: els}, nil
	case "match":
		scrutinee, err := e.Scrutinee.ToAST()
		if err != nil {
			return nil, err
		}
		arms := make([]ast.MatchArm, len(e.Arms))
		for i, a := range e.Arms {
			body, err := a.Body.ToAST()
			if err != nil {
				return nil, err
			}
			var pattern ast.Expression
			if a.Pattern != nil {
				pattern, err = a.Pattern.ToAST()
				if err != nil {
					return nil, err
				}
			}
			arms[i] = ast.MatchArm{Pattern: pattern, Body: body}
		}
		return &ast.MatchExpression{Scrutinee: scrutinee, Arms: arms}, nil
	default:
		return nil, fmt.Errorf("unknown expression kind %q", e.Kind)
	}
}
