// Package report renders the batch analysis of a settlement graph:
// build totals, island count, per-island populations sorted descending,
// and the answers to a set of fewest-highway queries.
package report

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/archipelago/core"
	"github.com/katalvlaran/archipelago/islands"
	"github.com/katalvlaran/archipelago/routes"
)

// Default dataset names used when neither flags nor a scenario override them.
const (
	DefaultPopulationFile = "city_population.txt"
	DefaultRoadFile       = "road_network-1.txt"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("report: graph is nil")

// Query names one fewest-highways question.
type Query struct {
	From string
	To   string
}

// DefaultQueries returns the stock route questions asked when a run
// configures none.
func DefaultQueries() []Query {
	return []Query{
		{From: "Washington", To: "Detroit"},
		{From: "Los Angeles", To: "San Diego"},
		{From: "New York", To: "Oro Valley"},
	}
}

// printer accumulates output and the first write error.
type printer struct {
	w   io.Writer
	msg *message.Printer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// number renders n with thousands separators (1234567 -> "1,234,567").
func (p *printer) number(n int64) string {
	return p.msg.Sprintf("%d", n)
}

// Write renders the full analysis of g to w. Queries naming unknown
// settlements are reported as skipped, never fatal; analysis errors
// and write failures abort.
func Write(w io.Writer, g *core.Graph, queries []Query) error {
	if g == nil {
		return ErrGraphNil
	}
	isles, err := islands.Islands(g)
	if err != nil {
		return err
	}

	p := &printer{w: w, msg: message.NewPrinter(language.English)}
	p.printf("Graph built with %d settlements and %d highways.\n",
		g.SettlementCount(), g.HighwayCount())
	p.printf("The archipelago has %d islands (connected components).\n", len(isles))

	sums := make([]int64, len(isles))
	for i, isle := range isles {
		sums[i] = isle.Population
	}
	sort.Slice(sums, func(i, j int) bool { return sums[i] > sums[j] })

	p.printf("\nIsland populations, largest first:\n")
	for i, sum := range sums {
		p.printf("  Island %d: %s\n", i+1, p.number(sum))
	}

	if len(queries) > 0 {
		p.printf("\n")
		for _, q := range queries {
			p.route(g, q)
		}
	}

	return p.err
}

// route renders one query line. Unknown endpoints are pre-checked here
// so the engine's not-found error stays reserved for programmer mistakes.
func (p *printer) route(g *core.Graph, q Query) {
	for _, name := range []string{q.From, q.To} {
		if !g.HasSettlement(name) {
			p.printf("Min highways from %s to %s: skipped (unknown settlement %q)\n",
				q.From, q.To, name)
			return
		}
	}

	hops, err := routes.MinHighways(g, q.From, q.To)
	if err != nil {
		if p.err == nil {
			p.err = err
		}
		return
	}
	if hops == routes.Unreachable {
		p.printf("Min highways from %s to %s: unreachable\n", q.From, q.To)
		return
	}
	p.printf("Min highways from %s to %s: %d\n", q.From, q.To, hops)
}
