// Command archipelago analyzes settlement and road datasets: it counts
// islands, totals their populations, and answers fewest-highway queries,
// either as a one-shot report or over an HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/archipelago/internal/app"
	"github.com/katalvlaran/archipelago/internal/cli"
)

// main translates run's error into an exit code: 2 for usage mistakes,
// 1 for everything else (missing datasets included).
func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes one invocation; split from main for testing. Reports go
// to outW, usage and diagnostics to errW.
func run(outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	return app.New(outW, errW, cfg).Run(context.Background())
}
