// Package builder turns population and road records into a core.Graph.
package builder

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/archipelago/core"
)

// ingest carries shared state across the two scan phases.
type ingest struct {
	graph   *core.Graph
	opts    Options
	skipped int
}

// Build scans population records, then road records, and returns the
// resulting graph. Bad records are dropped per the package recovery
// policy; only stream failures abort.
// Complexity: O(L) over total input lines.
func Build(populationData, roadData io.Reader, opts ...Option) (*core.Graph, error) {
	if populationData == nil || roadData == nil {
		return nil, ErrNilReader
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	in := &ingest{graph: core.NewGraph(), opts: o}
	if err := in.populations(populationData); err != nil {
		return nil, err
	}
	if err := in.roads(roadData); err != nil {
		return nil, err
	}

	o.Logger.Info("graph built",
		"settlements", in.graph.SettlementCount(),
		"highways", in.graph.HighwayCount(),
		"skipped", in.skipped)

	return in.graph, nil
}

// BuildFiles reads both datasets from disk and delegates to Build.
// Either file failing to open is fatal; no partial graph is returned.
func BuildFiles(populationPath, roadPath string, opts ...Option) (*core.Graph, error) {
	popFile, err := os.Open(populationPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingInput, populationPath, err)
	}
	defer popFile.Close()

	roadFile, err := os.Open(roadPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingInput, roadPath, err)
	}
	defer roadFile.Close()

	return Build(popFile, roadFile, opts...)
}

// skip records one dropped line and notifies the hook.
func (in *ingest) skip(kind SkipKind, text string, line int) {
	in.skipped++
	in.opts.Logger.Debug("record skipped", "reason", kind.String(), "line", line, "text", text)
	in.opts.OnSkip(kind, text)
}

// populations registers `<name> : <integer>` records.
// Re-declared names update in place; the latest population wins.
func (in *ingest) populations(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		name, value, ok := splitRecord(text)
		if !ok {
			in.skip(SkipMalformed, text, line)
			continue
		}
		population, err := strconv.ParseInt(value, 10, 64)
		if err != nil || population < 0 {
			in.skip(SkipBadNumber, text, line)
			continue
		}
		if err = in.graph.AddSettlement(name, population); err != nil {
			return fmt.Errorf("builder: register %q: %w", name, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrScan, err)
	}

	return nil
}

// roads connects `<nameA> : <nameB>` records whose endpoints are both
// registered. Unknown endpoints and self-loops are dropped, never fatal.
func (in *ingest) roads(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		a, b, ok := splitRecord(text)
		if !ok {
			in.skip(SkipMalformed, text, line)
			continue
		}
		if a == b {
			in.skip(SkipSelfLoop, text, line)
			continue
		}
		if !in.graph.HasSettlement(a) || !in.graph.HasSettlement(b) {
			in.skip(SkipUnknownSettlement, text, line)
			continue
		}
		if err := in.graph.Connect(a, b); err != nil {
			return fmt.Errorf("builder: connect %q and %q: %w", a, b, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrScan, err)
	}

	return nil
}

// splitRecord divides text around Separator and trims both fields.
// ok is false unless exactly one separator occurs and neither trimmed
// field is empty.
func splitRecord(text string) (left, right string, ok bool) {
	parts := strings.Split(text, Separator)
	if len(parts) != 2 {
		return "", "", false
	}
	left = strings.TrimSpace(parts[0])
	right = strings.TrimSpace(parts[1])
	if left == "" || right == "" {
		return "", "", false
	}

	return left, right, true
}
