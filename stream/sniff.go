package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/neilotoole/streamcache"
)

type Format int

const (
	FormatUnknown Format = iota
	FormatOperations
	FormatGraph
)

func (f Format) String() string {
	switch f {
	case FormatOperations:
		return "operations"
	case FormatGraph:
		return "graph"
	default:
		return "unknown"
	}
}

// Sniff detects the format of the input by looking at its first line. The
// input does not need to be seekable: the returned reader yields the
// complete input again, starting at the first byte. The caller must close
// the returned reader.
func Sniff(ctx context.Context, src io.Reader) (Format, io.ReadCloser, error) {
	cache := streamcache.New(src)

	sniffer := cache.NewReader(ctx)
	content := cache.NewReader(ctx)

	// no more readers, the content reader takes over the source
	// once the sniffer is done.
	cache.Seal()

	format, err := sniffFormat(sniffer)

	if errClose := sniffer.Close(); errClose != nil && err == nil {
		err = fmt.Errorf("close sniffer: %w", errClose)
	}

	if err != nil {
		return FormatUnknown, nil, errors.Join(err, content.Close())
	}

	return format, content, nil
}

func sniffFormat(r io.Reader) (Format, error) {
	lines := newLineScanner(r)
	if !lines.Next() {
		if err := lines.Err(); err != nil {
			return FormatUnknown, err
		}

		return FormatUnknown, fmt.Errorf("empty input: %w", ErrSyntax)
	}

	fields := lines.Fields()

	switch len(fields) {
	case 1:
		if _, err := strconv.Atoi(fields[0]); err == nil {
			return FormatGraph, nil
		}

	case 2, 3:
		if len(fields) == 2 || fields[0] == "i" || fields[0] == "d" {
			return FormatOperations, nil
		}
	}

	return FormatUnknown, lines.Errorf("unknown input format")
}
