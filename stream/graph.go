package stream

import (
	"fmt"
	"io"
	"strconv"

	"github.com/oliverbestmann/hullchains/chains"
	"github.com/oliverbestmann/hullchains/geom"
)

// ReadGraph parses a graph followed by a query point. The input starts with
// the number of vertices and the number of edges, each on its own line.
// Then follows one "x y" line per vertex, one "i j" line per edge referencing
// vertices by their position, and finally the "x y" query point.
func ReadGraph(r io.Reader, opts ...chains.Option) (*chains.Graph, geom.Point, error) {
	lines := newLineScanner(r)

	vertexCount, err := readCount(lines, "vertex count")
	if err != nil {
		return nil, geom.Point{}, err
	}

	edgeCount, err := readCount(lines, "edge count")
	if err != nil {
		return nil, geom.Point{}, err
	}

	g := chains.NewGraph(opts...)

	for range vertexCount {
		p, err := readPoint(lines, "vertex")
		if err != nil {
			return nil, geom.Point{}, err
		}

		g.AddVertex(p.X, p.Y)
	}

	for range edgeCount {
		if !lines.Next() {
			return nil, geom.Point{}, unexpectedEOF(lines, "edge")
		}

		fields := lines.Fields()
		if len(fields) != 2 {
			return nil, geom.Point{}, lines.Errorf("expected edge i j, got %d fields", len(fields))
		}

		first, errFirst := strconv.Atoi(fields[0])
		second, errSecond := strconv.Atoi(fields[1])
		if errFirst != nil || errSecond != nil {
			return nil, geom.Point{}, lines.Errorf("invalid edge %q", lines.text)
		}

		if err := g.AddEdge(first, second); err != nil {
			return nil, geom.Point{}, fmt.Errorf("line %d: %w", lines.line, err)
		}
	}

	query, err := readPoint(lines, "query point")
	if err != nil {
		return nil, geom.Point{}, err
	}

	return g, query, nil
}

func readCount(lines *lineScanner, what string) (int, error) {
	if !lines.Next() {
		return 0, unexpectedEOF(lines, what)
	}

	count, err := strconv.Atoi(lines.text)
	if err != nil || count < 0 {
		return 0, lines.Errorf("invalid %s %q", what, lines.text)
	}

	return count, nil
}

func readPoint(lines *lineScanner, what string) (geom.Point, error) {
	if !lines.Next() {
		return geom.Point{}, unexpectedEOF(lines, what)
	}

	fields := lines.Fields()
	if len(fields) != 2 {
		return geom.Point{}, lines.Errorf("expected %s x y, got %d fields", what, len(fields))
	}

	p, err := parsePoint(fields)
	if err != nil {
		return geom.Point{}, lines.Errorf("%s", err)
	}

	return p, nil
}

func unexpectedEOF(lines *lineScanner, what string) error {
	if err := lines.Err(); err != nil {
		return err
	}

	return fmt.Errorf("missing %s after line %d: %w", what, lines.line, ErrSyntax)
}
