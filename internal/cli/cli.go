// Package cli parses command-line arguments into the application's
// configuration and owns process-level concerns like exit codes.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/archipelago/internal/app"
	"github.com/katalvlaran/archipelago/internal/report"
)

// ExitError carries a specific process exit code alongside its message.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// routeList collects repeatable -route flags of the form "From:To".
type routeList []report.Query

// String renders the collected queries for flag diagnostics.
func (r *routeList) String() string {
	parts := make([]string, len(*r))
	for i, q := range *r {
		parts[i] = q.From + ":" + q.To
	}

	return strings.Join(parts, ", ")
}

// Set parses one "From:To" value. Settlement names may contain spaces,
// so only the first colon separates the two endpoints.
func (r *routeList) Set(value string) error {
	from, to, ok := strings.Cut(value, ":")
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	if !ok || from == "" || to == "" {
		return fmt.Errorf(`want "From:To", got %q`, value)
	}
	*r = append(*r, report.Query{From: from, To: to})

	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating the program should exit cleanly (help requested),
// or an ExitError with code 2 for invalid usage.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("archipelago", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Archipelago - settlement graph analysis over population and road datasets.

Usage:
  archipelago [options]

Without options the stock datasets and route questions are used. A report
prints the settlement totals, the islands (connected components) with their
populations, and the fewest-highway count for each configured route.

Options:
`)
		flagSet.PrintDefaults()
	}

	populationFlag := flagSet.String("population", "", "Path to the settlement population dataset.")
	roadsFlag := flagSet.String("roads", "", "Path to the highway dataset.")
	scenarioFlag := flagSet.String("scenario", "", "Path to an HCL scenario file describing datasets and queries.")
	serveFlag := flagSet.String("serve", "", "Serve the HTTP API on this address (e.g. ':8080') instead of printing a report.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	var routeFlags routeList
	flagSet.Var(&routeFlags, "route", `Extra fewest-highway question "From:To"; repeatable.`)

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return &app.Config{
		PopulationPath: *populationFlag,
		RoadPath:       *roadsFlag,
		ScenarioPath:   *scenarioFlag,
		Queries:        routeFlags,
		ServeAddr:      *serveFlag,
		LogLevel:       logLevel,
		LogFormat:      logFormat,
	}, false, nil
}
