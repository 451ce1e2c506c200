package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/oliverbestmann/hullchains/geom"
	"github.com/oliverbestmann/hullchains/hull"
)

var ErrSyntax = errors.New("syntax error")

// ReadOperations parses one operation per line, written as "[op] x y" with op
// being "i" for insert or "d" for delete. A line without op is an insert.
// Inserted points take their id from seq, deletions carry no id.
func ReadOperations(r io.Reader, seq *geom.Sequence) ([]hull.Operation, error) {
	var ops []hull.Operation

	lines := newLineScanner(r)
	for lines.Next() {
		fields := lines.Fields()

		kind := hull.OpInsert

		switch len(fields) {
		case 2:
			// no explicit operation

		case 3:
			switch fields[0] {
			case "i":
				kind = hull.OpInsert
			case "d":
				kind = hull.OpDelete
			default:
				return nil, lines.Errorf("unknown operation %q", fields[0])
			}

			fields = fields[1:]

		default:
			return nil, lines.Errorf("expected [op] x y, got %d fields", len(fields))
		}

		p, err := parsePoint(fields)
		if err != nil {
			return nil, lines.Errorf("%s", err)
		}

		if kind == hull.OpInsert {
			p = seq.Assign(p)
		}

		ops = append(ops, hull.Operation{Kind: kind, Point: p})
	}

	if err := lines.Err(); err != nil {
		return nil, err
	}

	return ops, nil
}

// WriteOperations writes the operations in the format read by ReadOperations.
func WriteOperations(w io.Writer, ops []hull.Operation) error {
	buf := bufio.NewWriter(w)

	for _, op := range ops {
		if _, err := fmt.Fprintln(buf, op.String()); err != nil {
			return err
		}
	}

	return buf.Flush()
}

func parsePoint(fields []string) (geom.Point, error) {
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("invalid x coordinate %q", fields[0])
	}

	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("invalid y coordinate %q", fields[1])
	}

	return geom.Pt(x, y), nil
}

// lineScanner iterates over the non empty lines of a reader and keeps
// track of the line number for error messages.
type lineScanner struct {
	scanner *bufio.Scanner
	line    int
	text    string
}

func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{scanner: bufio.NewScanner(r)}
}

func (s *lineScanner) Next() bool {
	for s.scanner.Scan() {
		s.line++

		s.text = strings.TrimSpace(s.scanner.Text())
		if s.text != "" && !strings.HasPrefix(s.text, "#") {
			return true
		}
	}

	return false
}

func (s *lineScanner) Fields() []string {
	return strings.Fields(s.text)
}

func (s *lineScanner) Err() error {
	if err := s.scanner.Err(); err != nil {
		return fmt.Errorf("read line %d: %w", s.line+1, err)
	}

	return nil
}

func (s *lineScanner) Errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", s.line, fmt.Sprintf(format, args...), ErrSyntax)
}
