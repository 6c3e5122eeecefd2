// Package builder assembles a core.Graph from the two textual datasets of
// an archipelago: settlement populations and bidirectional highways.
//
// What
//
//   - Build(populationData, roadData): scan two line-oriented streams and
//     return a fully-connected settlement graph.
//   - BuildFiles(populationPath, roadPath): the same from files on disk;
//     a missing file is fatal.
//   - Record format, one per line, separator is space-colon-space (" : "):
//     populations  "<name> : <integer>"
//     roads        "<nameA> : <nameB>"
//
// Recovery policy (permissive over strict)
//
//	Construction never aborts on bad records. A line is dropped when it
//	does not split into exactly two non-empty fields around " : ", when a
//	population fails base-10 int64 parsing or is negative, when a road
//	names an unregistered settlement, or when a road connects a settlement
//	to itself. Blank lines are ignored. Both fields are whitespace-trimmed.
//	Duplicate population declarations update in place (latest wins, the
//	settlement keeps its highways); duplicate roads are absorbed by the
//	graph's idempotent Connect.
//
//	Only stream-level failures abort: a scanner error surfaces as ErrScan,
//	an unopenable file as ErrMissingInput.
//
// Options
//
//   - WithLogger(l):  emit a Debug record per skipped line and an Info
//     summary after the build. Default: discard.
//   - WithOnSkip(fn): callback per skipped line with its SkipKind.
//
// Errors
//
//   - ErrNilReader     - a nil input stream was supplied.
//   - ErrMissingInput  - BuildFiles could not open a dataset.
//   - ErrScan          - reading an input stream failed mid-scan.
//
// Complexity: O(L) time over total input lines, O(S + H) memory for the
// resulting graph.
package builder
