// Command pilcheck is a thin demonstration CLI over the evaluator: it
// loads a YAML definitions fixture and evaluates one named definition,
// printing the resulting value's display form.
//
// Grounded on cmd/funxy/main.go's flag-parsing shape (flag.Parse(),
// positional file argument, no config file, no environment variables).
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/taikoonwang/powdr/internal/definitions"
	"github.com/taikoonwang/powdr/internal/evaluator"
	"github.com/taikoonwang/powdr/internal/fixture"
)

func main() {
	exprName := flag.String("expr", "", "name of the definition to evaluate (overrides the fixture's own \"eval\" field)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: pilcheck [-expr name] <fixture.yaml>")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *exprName); err != nil {
		fmt.Fprintf(os.Stderr, "pilcheck: %v\n", err)
		os.Exit(1)
	}
}

func run(path, exprName string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var f fixture.File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	defs, err := f.ToDefinitions()
	if err != nil {
		return err
	}

	name := f.Eval
	if exprName != "" {
		name = exprName
	}
	if name == "" {
		return fmt.Errorf("no definition to evaluate: set \"eval\" in the fixture or pass -expr")
	}

	resolv := definitions.NewResolver(defs)
	interp := evaluator.New()
	interp.Resolver = resolv
	resolv.Interp = interp

	result, err := interp.Resolver.Lookup(name, nil)
	if err != nil {
		return fmt.Errorf("evaluating %q: %w", name, err)
	}

	fmt.Println(result.Inspect())
	return nil
}
