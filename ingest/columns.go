package ingest

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseColumns turns column arguments into field indices. Each argument is
// either an index ("3") or an inclusive range ("5-9") whose end must be
// greater than its start.
func ParseColumns(args []string) ([]int, error) {
	var cols []int
	for _, arg := range args {
		from, to, isRange := strings.Cut(arg, "-")
		if !isRange {
			c, err := parseIndex(arg)
			if err != nil {
				return nil, fmt.Errorf("%w %q: %v", ErrInvalidColumn, arg, err)
			}
			cols = append(cols, c)
			continue
		}

		lo, err := parseIndex(from)
		if err != nil {
			return nil, fmt.Errorf("%w range %q: expected <from>-<to>: %v", ErrInvalidColumn, arg, err)
		}
		hi, err := parseIndex(to)
		if err != nil {
			return nil, fmt.Errorf("%w range %q: expected <from>-<to>: %v", ErrInvalidColumn, arg, err)
		}
		if hi <= lo {
			return nil, fmt.Errorf("%w range %q: end must be greater than start", ErrInvalidColumn, arg)
		}
		for c := lo; c <= hi; c++ {
			cols = append(cols, c)
		}
	}
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	return cols, nil
}

func parseIndex(s string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 31)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
