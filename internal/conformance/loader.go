package conformance

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDir walks dir for *.yaml files and collects every scenario they
// declare.
func LoadDir(dir string) ([]Scenario, error) {
	var all []Scenario

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		var suite Suite
		if err := yaml.Unmarshal(data, &suite); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		all = append(all, suite.Scenarios...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}
