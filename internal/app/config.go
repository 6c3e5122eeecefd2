package app

import "github.com/katalvlaran/archipelago/internal/report"

// Config carries one resolved CLI invocation.
type Config struct {
	// PopulationPath and RoadPath locate the datasets. Empty means
	// "not set": the scenario file, then the stock defaults, fill in.
	PopulationPath string
	RoadPath       string

	// ScenarioPath optionally names an HCL scenario file.
	ScenarioPath string

	// Queries collected from repeatable -route flags. Empty falls back
	// to the scenario's queries, then to the stock defaults.
	Queries []report.Query

	// ServeAddr switches from batch report to HTTP API mode when set.
	ServeAddr string

	// Logging surface.
	LogLevel  string
	LogFormat string
}
