package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/archipelago/builder"
	"github.com/katalvlaran/archipelago/internal/app"
	"github.com/katalvlaran/archipelago/internal/report"
)

// writeDatasets drops a small two-island archipelago into dir and returns
// the dataset paths.
func writeDatasets(t *testing.T) (populationPath, roadPath string) {
	t.Helper()
	dir := t.TempDir()
	populationPath = filepath.Join(dir, "pop.txt")
	roadPath = filepath.Join(dir, "roads.txt")
	populations := "Washington : 700000\nChicago : 2700000\nDetroit : 630000\nOro Valley : 47000\n"
	roads := "Washington : Chicago\nChicago : Detroit\n"
	require.NoError(t, os.WriteFile(populationPath, []byte(populations), 0o644))
	require.NoError(t, os.WriteFile(roadPath, []byte(roads), 0o644))

	return populationPath, roadPath
}

func TestRun_BatchReport(t *testing.T) {
	populationPath, roadPath := writeDatasets(t)
	cfg := &app.Config{
		PopulationPath: populationPath,
		RoadPath:       roadPath,
		Queries: []report.Query{
			{From: "Washington", To: "Detroit"},
			{From: "Washington", To: "Oro Valley"},
		},
		LogLevel:  "error",
		LogFormat: "text",
	}

	var out, errOut bytes.Buffer
	require.NoError(t, app.New(&out, &errOut, cfg).Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Graph built with 4 settlements and 2 highways.")
	assert.Contains(t, got, "2 islands")
	assert.Contains(t, got, "Island 1: 4,030,000")
	assert.Contains(t, got, "Min highways from Washington to Detroit: 2")
	assert.Contains(t, got, "Min highways from Washington to Oro Valley: unreachable")
	assert.Empty(t, errOut.String(), "nothing above error level should be logged")
}

func TestRun_MissingDatasetIsFatal(t *testing.T) {
	dir := t.TempDir()
	cfg := &app.Config{
		PopulationPath: filepath.Join(dir, "absent.txt"),
		RoadPath:       filepath.Join(dir, "also-absent.txt"),
		LogLevel:       "error",
		LogFormat:      "text",
	}

	var out, errOut bytes.Buffer
	err := app.New(&out, &errOut, cfg).Run(context.Background())
	require.ErrorIs(t, err, builder.ErrMissingInput)
	assert.Contains(t, err.Error(), "absent.txt")
	assert.Empty(t, out.String(), "no partial report on missing input")
}

func TestRun_ScenarioSuppliesDatasetsAndQueries(t *testing.T) {
	populationPath, roadPath := writeDatasets(t)
	scenarioPath := filepath.Join(t.TempDir(), "run.hcl")
	body := `
population_file = "` + populationPath + `"
road_file       = "` + roadPath + `"

query "capital-run" {
  from = "Washington"
  to   = "Detroit"
}
`
	require.NoError(t, os.WriteFile(scenarioPath, []byte(body), 0o644))

	cfg := &app.Config{ScenarioPath: scenarioPath, LogLevel: "error", LogFormat: "text"}
	var out, errOut bytes.Buffer
	require.NoError(t, app.New(&out, &errOut, cfg).Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Min highways from Washington to Detroit: 2")
	assert.NotContains(t, got, "Los Angeles", "scenario queries replace the stock ones")
}

func TestRun_FlagsOverrideScenario(t *testing.T) {
	populationPath, roadPath := writeDatasets(t)
	scenarioPath := filepath.Join(t.TempDir(), "run.hcl")
	body := `
population_file = "scenario-pop.txt"
road_file       = "scenario-roads.txt"

query "ignored" {
  from = "Washington"
  to   = "Detroit"
}
`
	require.NoError(t, os.WriteFile(scenarioPath, []byte(body), 0o644))

	// Flag-level paths and queries shadow everything in the scenario, so
	// its non-existent dataset paths must never be opened.
	cfg := &app.Config{
		PopulationPath: populationPath,
		RoadPath:       roadPath,
		ScenarioPath:   scenarioPath,
		Queries:        []report.Query{{From: "Chicago", To: "Washington"}},
		LogLevel:       "error",
		LogFormat:      "text",
	}
	var out, errOut bytes.Buffer
	require.NoError(t, app.New(&out, &errOut, cfg).Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Min highways from Chicago to Washington: 1")
	assert.NotContains(t, got, "Detroit:", "scenario query must be shadowed")
}

func TestRun_InvalidScenarioIsFatal(t *testing.T) {
	scenarioPath := filepath.Join(t.TempDir(), "broken.hcl")
	require.NoError(t, os.WriteFile(scenarioPath, []byte(`road_file = "roads.txt"`), 0o644))

	cfg := &app.Config{ScenarioPath: scenarioPath, LogLevel: "error", LogFormat: "text"}
	var out, errOut bytes.Buffer
	err := app.New(&out, &errOut, cfg).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "population_file")
}

func TestRun_DefaultQueriesWhenUnconfigured(t *testing.T) {
	populationPath, roadPath := writeDatasets(t)
	cfg := &app.Config{
		PopulationPath: populationPath,
		RoadPath:       roadPath,
		LogLevel:       "error",
		LogFormat:      "text",
	}

	var out, errOut bytes.Buffer
	require.NoError(t, app.New(&out, &errOut, cfg).Run(context.Background()))

	// The stock questions run against a dataset that knows none of the
	// western cities, so the driver's membership guard must report skips.
	got := out.String()
	assert.Contains(t, got, "Min highways from Washington to Detroit: 2")
	assert.Contains(t, got, `skipped (unknown settlement "Los Angeles")`)
	assert.Contains(t, got, `skipped (unknown settlement "New York")`)
}

func TestRun_ServeStartupFailure(t *testing.T) {
	populationPath, roadPath := writeDatasets(t)
	cfg := &app.Config{
		PopulationPath: populationPath,
		RoadPath:       roadPath,
		ServeAddr:      "256.256.256.256:99999", // never listenable
		LogLevel:       "error",
		LogFormat:      "text",
	}

	var out, errOut bytes.Buffer
	err := app.New(&out, &errOut, cfg).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http server")
}

func TestRun_ServeStopsOnCanceledContext(t *testing.T) {
	populationPath, roadPath := writeDatasets(t)
	cfg := &app.Config{
		PopulationPath: populationPath,
		RoadPath:       roadPath,
		ServeAddr:      "127.0.0.1:0",
		LogLevel:       "error",
		LogFormat:      "text",
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errOut bytes.Buffer
	err := app.New(&out, &errOut, cfg).Run(ctx)
	assert.NoError(t, err, "a canceled context means clean shutdown, not failure")
}
