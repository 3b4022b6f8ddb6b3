// Command kmeans clusters the selected numeric columns of delimited text and
// prints the kernel index of every input row.
//
// Usage:
//
//	kmeans [flags] columns|ranges...
//
// Columns are 0-based field indices; "2-5" selects fields 2 through 5.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/codec"
	"github.com/hupe1980/kmeans/distance"
	"github.com/hupe1980/kmeans/ingest"
	"github.com/hupe1980/kmeans/internal/source"
	"github.com/hupe1980/kmeans/report"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type config struct {
	k          int
	quantile   bool
	skipHeader bool
	failOnErr  bool
	fieldSep   string
	decimalSep string
	maxIter    int
	tolerance  float64
	seed       int64
	format     string
	logLevel   string
	logJSON    bool
	input      string
	columns    []string
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}

	fs := flag.NewFlagSet("kmeans", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: kmeans [flags] columns|ranges...\n\nFlags may appear before or after the columns; arguments after -- are always columns.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	fs.IntVar(&cfg.k, "k", 2, "number of clusters")
	fs.BoolVar(&cfg.quantile, "g", false, "seed kernels from per-column quantiles instead of random rows")
	fs.BoolVar(&cfg.skipHeader, "i", false, "skip the first line of input")
	fs.BoolVar(&cfg.failOnErr, "e", false, "fail on malformed rows instead of skipping them")
	fs.StringVar(&cfg.fieldSep, "f", ",", "field separator")
	fs.StringVar(&cfg.decimalSep, "n", ".", "decimal separator (single character)")
	fs.IntVar(&cfg.maxIter, "max-iter", kmeans.DefaultMaxIterations, "maximum number of iterations")
	fs.Float64Var(&cfg.tolerance, "tolerance", kmeans.DefaultTolerance, "stop once total kernel movement falls below this value")
	fs.Int64Var(&cfg.seed, "seed", 0, "random seed (0 uses the wall clock)")
	fs.StringVar(&cfg.format, "format", "text", "output format: text or json")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.BoolVar(&cfg.logJSON, "log-json", false, "emit logs as JSON")
	fs.StringVar(&cfg.input, "in", "-", "input file, s3://bucket/key or minio://host/bucket/key (- for stdin)")

	if err := fs.Parse(permute(fs, args)); err != nil {
		return nil, err
	}

	cfg.columns = fs.Args()
	if len(cfg.columns) == 0 {
		fs.Usage()
		return nil, ingest.ErrNoColumns
	}
	return cfg, nil
}

// permute moves flags ahead of positional arguments so that flags may follow
// column arguments, as with getopt. Everything after "--" stays positional.
func permute(fs *flag.FlagSet, args []string) []string {
	flags := make([]string, 0, len(args))
	var positional []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			positional = append(positional, arg)
			continue
		}

		flags = append(flags, arg)
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			continue
		}
		if i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}

	return append(append(flags, "--"), positional...)
}

func newLogger(cfg *config, stderr io.Writer) (*kmeans.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.logLevel, err)
	}

	hopts := &slog.HandlerOptions{Level: level}
	if cfg.logJSON {
		return kmeans.NewLogger(slog.NewJSONHandler(stderr, hopts)), nil
	}
	return kmeans.NewLogger(slog.NewTextHandler(stderr, hopts)), nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 1
	}

	logger, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "kmeans: %v\n", err)
		return 1
	}

	if err := cluster(ctx, cfg, logger, stdin, stdout); err != nil {
		logger.ErrorContext(ctx, "kmeans failed", "error", err)
		var de *distance.DegeneracyError
		if errors.As(err, &de) {
			fmt.Fprintf(stderr, "%+v\n", err)
		}
		return 1
	}
	return 0
}

func cluster(ctx context.Context, cfg *config, logger *kmeans.Logger, stdin io.Reader, stdout io.Writer) error {
	if cfg.format != "text" && cfg.format != "json" {
		return fmt.Errorf("unknown output format %q", cfg.format)
	}

	columns, err := ingest.ParseColumns(cfg.columns)
	if err != nil {
		return err
	}

	if cfg.decimalSep == "" {
		return fmt.Errorf("%w: empty decimal separator", ingest.ErrInvalidSeparator)
	}
	if len(cfg.decimalSep) > 1 {
		logger.WarnContext(ctx, "decimal separator longer than one character, using the first",
			"separator", cfg.decimalSep,
			"using", cfg.decimalSep[:1],
		)
	}

	in, err := source.Open(ctx, cfg.input, source.WithStdin(stdin))
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	data, stats, err := ingest.Read(ctx, in, ingest.Options{
		FieldSeparator:   cfg.fieldSep,
		DecimalSeparator: cfg.decimalSep[0],
		SkipHeader:       cfg.skipHeader,
		FailOnError:      cfg.failOnErr,
		Columns:          columns,
		Logger:           logger.Logger,
	})
	if err != nil {
		return err
	}
	if stats.Skipped > 0 {
		logger.WarnContext(ctx, "skipped malformed rows", "skipped", stats.Skipped, "rows", stats.Rows)
	}

	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	metrics := &kmeans.BasicMetricsCollector{}
	opts := []kmeans.Option{
		kmeans.WithMaxIterations(cfg.maxIter),
		kmeans.WithTolerance(cfg.tolerance),
		kmeans.WithRand(rand.New(rand.NewSource(seed))),
		kmeans.WithLogger(logger),
		kmeans.WithMetricsCollector(metrics),
	}
	if cfg.quantile {
		opts = append(opts, kmeans.WithQuantileSeeding())
	}

	res, err := kmeans.Cluster(data, cfg.k, opts...)
	if err != nil {
		return err
	}

	st := metrics.GetStats()
	logger.DebugContext(ctx, "run metrics",
		"iterations", st.IterationCount,
		"iteration_avg", time.Duration(st.IterationAvgNanos),
		"run", time.Duration(st.RunAvgNanos),
		"seed", seed,
	)

	if cfg.format == "json" {
		return report.WriteJSON(stdout, codec.Default, res)
	}

	header := ""
	if cfg.skipHeader {
		header = cfg.fieldSep + "kernel"
	}
	return report.WriteAssignments(stdout, res.Assignments, header)
}
