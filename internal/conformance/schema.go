// Package conformance is a YAML-fixture-driven test harness: each
// scenario describes a definitions map and a definition to evaluate
// (optionally applied to a list of integer arguments), plus the
// expected display form or error kind. It exercises spec §8's
// end-to-end scenarios as data, the way a golden-file suite does,
// rather than only as Go test literals.
//
// Grounded on MongooseMoo-barn's conformance package (loader.go walks
// a testdata directory for YAML files, runner.go drives an interpreter
// over each loaded case, conformance_test.go reports one subtest per
// case), adapted from its object-database fixture shape to this
// evaluator's definitions-map shape.
package conformance

import (
	"github.com/taikoonwang/powdr/internal/fixture"
)

// Scenario is one named fixture case.
type Scenario struct {
	Name string `yaml:"name"`

	fixture.File `yaml:",inline"`

	// ApplyArgs, if non-empty, are decimal integer literals applied in
	// order, one argument per call: the first to the looked-up
	// definition, each later one to the previous call's result (each
	// callee must be a one-parameter closure).
	ApplyArgs []string `yaml:"apply_args"`

	// ExpectInspect is the expected Inspect() display form of the
	// final result. Ignored if ExpectErrorKind is set.
	ExpectInspect string `yaml:"expect_inspect"`

	// ExpectErrorKind, if set, names the evalerror type the evaluation
	// must fail with (e.g. "FailedAssertion", "OutOfBounds").
	ExpectErrorKind string `yaml:"expect_error_kind"`
}

// Suite is the top-level shape of one testdata YAML file.
type Suite struct {
	Scenarios []Scenario `yaml:"scenarios"`
}
