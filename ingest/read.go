package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"gonum.org/v1/gonum/mat"
)

const (
	// MaxLineSize is the longest line Read accepts.
	MaxLineSize = 64 << 20

	initialRows = 1024
	checkEvery  = 4096
)

// Stats summarizes a Read.
type Stats struct {
	// Rows is the number of parsed rows.
	Rows int
	// Cols is the number of selected columns.
	Cols int
	// Lines is the number of lines consumed, including blank lines and the
	// header.
	Lines int
	// Skipped counts malformed rows that were dropped.
	Skipped int
	// Header holds the skipped header line, if any.
	Header string
}

// Read parses r into a matrix of len(opts.Columns) columns.
func Read(ctx context.Context, r io.Reader, opts Options) (*mat.Dense, *Stats, error) {
	if err := opts.validate(); err != nil {
		return nil, nil, err
	}

	p := parser{
		opts:   opts,
		cols:   len(opts.Columns),
		maxCol: maxColumn(opts.Columns),
		row:    make([]float64, len(opts.Columns)),
		data:   make([]float64, 0, initialRows*len(opts.Columns)),
	}
	if opts.DecimalSeparator != '.' {
		p.decimal = string(opts.DecimalSeparator)
	}

	stats := &Stats{Cols: p.cols}
	progress := rate.Sometimes{First: 1, Interval: time.Second}
	headerPending := opts.SkipHeader

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), MaxLineSize)

	for sc.Scan() {
		stats.Lines++
		if stats.Lines%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
			if opts.Logger != nil {
				progress.Do(func() {
					opts.Logger.DebugContext(ctx, "reading input",
						slog.Int("lines", stats.Lines),
						slog.Int("rows", stats.Rows),
						slog.Int("skipped", stats.Skipped),
					)
				})
			}
		}

		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if headerPending {
			headerPending = false
			stats.Header = line
			continue
		}

		if err := p.parseLine(stats.Lines, line); err != nil {
			if opts.FailOnError {
				return nil, nil, err
			}
			stats.Skipped++
			continue
		}
		stats.Rows++
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("ingest: read line %d: %w", stats.Lines+1, err)
	}

	if stats.Rows == 0 {
		return nil, nil, ErrNoRows
	}
	return mat.NewDense(stats.Rows, p.cols, p.data), stats, nil
}

type parser struct {
	opts    Options
	cols    int
	maxCol  int
	decimal string
	fields  []string
	row     []float64
	data    []float64
}

// parseLine appends the selected fields of line to data. On error nothing is
// appended.
func (p *parser) parseLine(lineNo int, line string) error {
	p.fields = splitInto(p.fields[:0], line, p.opts.FieldSeparator, p.maxCol+1)

	for i, c := range p.opts.Columns {
		if c >= len(p.fields) {
			return &ParseError{Line: lineNo, Column: c, Err: ErrMissingField}
		}
		text := strings.TrimSpace(p.fields[c])
		if p.decimal != "" {
			text = strings.ReplaceAll(text, p.decimal, ".")
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return &ParseError{Line: lineNo, Column: c, Text: p.fields[c], Err: err}
		}
		p.row[i] = v
	}

	p.data = append(p.data, p.row...)
	return nil
}

// splitInto splits s on sep, stopping once limit fields are collected.
func splitInto(dst []string, s, sep string, limit int) []string {
	for len(dst) < limit {
		i := strings.Index(s, sep)
		if i < 0 {
			return append(dst, s)
		}
		dst = append(dst, s[:i])
		s = s[i+len(sep):]
	}
	return dst
}

func maxColumn(cols []int) int {
	m := 0
	for _, c := range cols {
		m = max(m, c)
	}
	return m
}
