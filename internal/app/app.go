// Package app owns one archipelago invocation: it resolves the run plan
// from flags, scenario file, and stock defaults, builds the graph, and
// either renders the batch report or serves the HTTP API.
package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/katalvlaran/archipelago/builder"
	"github.com/katalvlaran/archipelago/internal/report"
	"github.com/katalvlaran/archipelago/internal/scenario"
)

// App bundles the resolved configuration with its logger and report sink.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config
}

// New builds an App with its own logger. Reports go to outW, diagnostics
// to errW, so batch output stays machine-readable.
func New(outW, errW io.Writer, cfg *Config) *App {
	return &App{
		outW:   outW,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, errW),
		cfg:    cfg,
	}
}

// Run executes one invocation: resolve inputs, ingest the datasets, then
// report or serve depending on the configuration.
func (a *App) Run(ctx context.Context) error {
	populationPath, roadPath, queries, err := a.resolve()
	if err != nil {
		return err
	}
	a.logger.Debug("datasets resolved",
		"population", populationPath,
		"roads", roadPath,
		"queries", len(queries))

	g, err := builder.BuildFiles(populationPath, roadPath, builder.WithLogger(a.logger))
	if err != nil {
		return err
	}

	if a.cfg.ServeAddr != "" {
		return a.serve(ctx, g)
	}

	return report.Write(a.outW, g, queries)
}

// resolve merges the three configuration layers: explicit flags win over
// the optional scenario file, which wins over the stock defaults.
func (a *App) resolve() (populationPath, roadPath string, queries []report.Query, err error) {
	populationPath = a.cfg.PopulationPath
	roadPath = a.cfg.RoadPath
	queries = a.cfg.Queries

	if a.cfg.ScenarioPath != "" {
		sc, err := scenario.Load(a.cfg.ScenarioPath)
		if err != nil {
			return "", "", nil, err
		}
		if populationPath == "" {
			populationPath = sc.PopulationFile
		}
		if roadPath == "" {
			roadPath = sc.RoadFile
		}
		if len(queries) == 0 {
			for _, q := range sc.Queries {
				queries = append(queries, report.Query{From: q.From, To: q.To})
			}
		}
	}

	if populationPath == "" {
		populationPath = report.DefaultPopulationFile
	}
	if roadPath == "" {
		roadPath = report.DefaultRoadFile
	}
	if len(queries) == 0 {
		queries = report.DefaultQueries()
	}

	return populationPath, roadPath, queries, nil
}
