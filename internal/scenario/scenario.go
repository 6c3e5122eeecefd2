// Package scenario loads batch-run descriptions from HCL files: which
// datasets to ingest and which route queries to answer.
//
// A scenario file looks like:
//
//	population_file = "city_population.txt"
//	road_file       = "road_network-1.txt"
//
//	query "capital-run" {
//	  from = "Washington"
//	  to   = "Detroit"
//	}
//
// Both file attributes are required. Query blocks are optional; the
// report falls back to its default questions when none are given.
package scenario

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// ErrInvalidScenario is returned when a scenario parses but fails validation.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

// Query names one fewest-highways question.
type Query struct {
	Name string `hcl:"name,label"`
	From string `hcl:"from"`
	To   string `hcl:"to"`
}

// Scenario describes one batch run.
type Scenario struct {
	PopulationFile string  `hcl:"population_file"`
	RoadFile       string  `hcl:"road_file"`
	Queries        []Query `hcl:"query,block"`
}

// Load parses and validates the scenario file at path.
func Load(path string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("scenario: failed to parse %s: %s", path, diags.Error())
	}

	var sc Scenario
	if diags = gohcl.DecodeBody(file.Body, nil, &sc); diags.HasErrors() {
		return nil, fmt.Errorf("scenario: failed to decode %s: %s", path, diags.Error())
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// validate enforces non-empty dataset paths and well-formed, uniquely
// named queries.
func (s *Scenario) validate() error {
	if s.PopulationFile == "" {
		return fmt.Errorf("%w: population_file is empty", ErrInvalidScenario)
	}
	if s.RoadFile == "" {
		return fmt.Errorf("%w: road_file is empty", ErrInvalidScenario)
	}
	seen := make(map[string]struct{}, len(s.Queries))
	for _, q := range s.Queries {
		if q.Name == "" {
			return fmt.Errorf("%w: query label is empty", ErrInvalidScenario)
		}
		if _, dup := seen[q.Name]; dup {
			return fmt.Errorf("%w: duplicate query %q", ErrInvalidScenario, q.Name)
		}
		seen[q.Name] = struct{}{}
		if q.From == "" || q.To == "" {
			return fmt.Errorf("%w: query %q needs both from and to", ErrInvalidScenario, q.Name)
		}
	}

	return nil
}
