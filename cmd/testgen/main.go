// Command testgen prints random delimited numeric data for exercising kmeans.
//
// Usage:
//
//	testgen [-seed n] rows cols
//
// Every value is the product of a uniform [0,1) and a uniform [0,10) number.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/hupe1980/kmeans/testutil"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("testgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: testgen [-seed n] <rows> <cols>\n")
		fs.PrintDefaults()
	}
	seed := fs.Int64("seed", 0, "random seed (0 uses the wall clock)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return 1
	}

	rows, err := parseCount(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "testgen: could not parse rows amount from %q: %v\n", fs.Arg(0), err)
		return 1
	}
	cols, err := parseCount(fs.Arg(1))
	if err != nil || cols == 0 {
		fmt.Fprintf(stderr, "testgen: could not parse columns amount from %q\n", fs.Arg(1))
		return 1
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	if err := generate(stdout, testutil.NewRNG(s), rows, cols); err != nil {
		fmt.Fprintf(stderr, "testgen: %v\n", err)
		return 1
	}
	return 0
}

func parseCount(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 31)
	return int(n), err
}

func generate(w io.Writer, rng *testutil.RNG, rows, cols int) error {
	bw := bufio.NewWriter(w)
	row := make([]float64, cols)
	var buf []byte
	for range rows {
		rng.FillProduct(row)
		buf = buf[:0]
		for j, v := range row {
			if j > 0 {
				buf = append(buf, ',')
			}
			buf = strconv.AppendFloat(buf, v, 'f', 6, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
