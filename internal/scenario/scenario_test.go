package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/archipelago/internal/scenario"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_FullScenario(t *testing.T) {
	path := writeScenario(t, `
population_file = "city_population.txt"
road_file       = "road_network-1.txt"

query "capital-run" {
  from = "Washington"
  to   = "Detroit"
}

query "coastal" {
  from = "Los Angeles"
  to   = "San Diego"
}
`)

	sc, err := scenario.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "city_population.txt", sc.PopulationFile)
	assert.Equal(t, "road_network-1.txt", sc.RoadFile)
	require.Len(t, sc.Queries, 2)
	assert.Equal(t, scenario.Query{Name: "capital-run", From: "Washington", To: "Detroit"}, sc.Queries[0])
	assert.Equal(t, scenario.Query{Name: "coastal", From: "Los Angeles", To: "San Diego"}, sc.Queries[1])
}

func TestLoad_NoQueries(t *testing.T) {
	path := writeScenario(t, `
population_file = "pop.txt"
road_file       = "roads.txt"
`)

	sc, err := scenario.Load(path)
	require.NoError(t, err)
	assert.Empty(t, sc.Queries)
}

func TestLoad_MissingFileAttribute(t *testing.T) {
	path := writeScenario(t, `road_file = "roads.txt"`)

	_, err := scenario.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "population_file")
}

func TestLoad_EmptyDatasetPath(t *testing.T) {
	path := writeScenario(t, `
population_file = ""
road_file       = "roads.txt"
`)

	_, err := scenario.Load(path)
	assert.ErrorIs(t, err, scenario.ErrInvalidScenario)
}

func TestLoad_DuplicateQueryNames(t *testing.T) {
	path := writeScenario(t, `
population_file = "pop.txt"
road_file       = "roads.txt"

query "twice" {
  from = "A"
  to   = "B"
}

query "twice" {
  from = "C"
  to   = "D"
}
`)

	_, err := scenario.Load(path)
	require.ErrorIs(t, err, scenario.ErrInvalidScenario)
	assert.Contains(t, err.Error(), `"twice"`)
}

func TestLoad_QueryMissingEndpoint(t *testing.T) {
	path := writeScenario(t, `
population_file = "pop.txt"
road_file       = "roads.txt"

query "half" {
  from = "A"
  to   = ""
}
`)

	_, err := scenario.Load(path)
	assert.ErrorIs(t, err, scenario.ErrInvalidScenario)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := scenario.Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.hcl")
}

func TestLoad_SyntaxError(t *testing.T) {
	path := writeScenario(t, `population_file = `)

	_, err := scenario.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}
