// Package report runs the hull and chain algorithms on parsed input and
// prints their results in a human readable form.
package report

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/oliverbestmann/hullchains/chains"
	"github.com/oliverbestmann/hullchains/geom"
	"github.com/oliverbestmann/hullchains/hull"
)

var ErrMismatch = errors.New("hull differs from reference")

type HullOptions struct {
	Balance bool

	// Check compares the result against a batch computation of the hull
	Check bool

	Logger *slog.Logger
}

// Hull applies the operations to an empty hull and prints the result.
func Hull(w io.Writer, ops []hull.Operation, opts HullOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	treeOpts := []hull.Option{hull.WithLogger(logger)}
	if !opts.Balance {
		treeOpts = append(treeOpts, hull.WithoutBalancing())
	}

	h := hull.New(treeOpts...)

	startTime := time.Now()
	stats := h.Apply(ops...)

	logger.Info("Operations applied",
		slog.Int("operations", len(ops)),
		slog.Duration("elapsed", time.Since(startTime)),
	)

	if stats.Missing > 0 || stats.Duplicates > 0 {
		logger.Warn("Some operations had no effect",
			slog.Int("missing", stats.Missing),
			slog.Int("duplicates", stats.Duplicates),
		)
	}

	_, err := fmt.Fprintf(w,
		"points: %d (inserted %d, deleted %d, duplicates %d, missing %d)\n"+
			"upper: %s\n"+
			"lower: %s\n"+
			"polygon: %s\n",
		h.Len(), stats.Inserted, stats.Deleted, stats.Duplicates, stats.Missing,
		formatPoints(h.Upper()),
		formatPoints(h.Lower()),
		formatPoints(h.Polygon()),
	)

	if err != nil {
		return err
	}

	if opts.Check {
		expected := geom.ConvexHull(h.Points())
		if actual := h.Polygon(); !slices.Equal(expected, actual) {
			return fmt.Errorf("%w: expected %s, got %s", ErrMismatch, formatPoints(expected), formatPoints(actual))
		}

		logger.Info("Hull matches reference")
	}

	return nil
}

// Chains decomposes the graph and prints the chains together with the two
// chains enclosing the query point.
func Chains(w io.Writer, g *chains.Graph, query geom.Point) error {
	found, err := g.FindChains()
	if err != nil {
		return fmt.Errorf("decompose graph: %w", err)
	}

	var buf strings.Builder

	_, _ = fmt.Fprintf(&buf, "vertices: %d, edges: %d, chains: %d\n", g.Len(), len(g.Edges()), len(found))

	for idx, chain := range found {
		_, _ = fmt.Fprintf(&buf, "chain %d: %s\n", idx, formatChain(chain))
	}

	bracket := chains.Localize(found, query)
	_, _ = fmt.Fprintf(&buf, "query %s lies %s\n", query, DescribeBracket(bracket))

	_, err = io.WriteString(w, buf.String())
	return err
}

// DescribeBracket explains the position of a point relative to the chains.
func DescribeBracket(b chains.Bracket) string {
	switch {
	case b.Left < 0 && b.Right < 0:
		return "nowhere, there are no chains"
	case b.Left < 0:
		return fmt.Sprintf("left of chain %d", b.Right)
	case b.Right < 0:
		return fmt.Sprintf("right of chain %d", b.Left)
	default:
		return fmt.Sprintf("between chain %d and chain %d", b.Left, b.Right)
	}
}

func formatPoints(points []geom.Point) string {
	if len(points) == 0 {
		return "-"
	}

	parts := make([]string, len(points))
	for idx, p := range points {
		parts[idx] = p.String()
	}

	return strings.Join(parts, " ")
}

func formatChain(chain chains.Chain) string {
	parts := make([]string, len(chain))
	for idx, vertex := range chain {
		parts[idx] = vertex.String()
	}

	return strings.Join(parts, " -> ")
}
