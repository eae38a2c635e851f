// Command ratparse converts numeric literals to exact reduced fractions.
//
// Literals are taken from the arguments or, when none are given and stdin
// is not a terminal, one per line from stdin:
//
//	$ ratparse 1.25 -47e-2 3/-4
//	1.25	5/4
//	-47e-2	-47/100
//	3/-4	-3/4
//
// The command exits with status 1 if any literal fails to parse.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/govalues/rational"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

// CLI defines the command-line interface for ratparse.
var CLI struct {
	Bits     string   `help:"Width of the numerator and denominator in bits." enum:"8,16,32,64" default:"64"`
	Raw      bool     `help:"Print the unreduced pair instead of the fraction in lowest terms."`
	Verbose  bool     `short:"v" help:"Enable debug logging to stderr."`
	Literals []string `arg:"" optional:"" help:"Literals to parse. Read from stdin when omitted."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("ratparse"),
		kong.Description("Parse fractions, decimals and scientific literals into exact rationals"),
		kong.UsageOnError(),
	)

	log, err := newLogger(CLI.Verbose)
	ctx.FatalIfErrorf(err)
	defer log.Sync()

	literals := CLI.Literals
	if len(literals) == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			ctx.Fatalf("no literals given")
		}
		literals, err = readLiterals(os.Stdin)
		ctx.FatalIfErrorf(err)
	}

	failed, err := run(os.Stdout, log, CLI.Bits, CLI.Raw, literals)
	ctx.FatalIfErrorf(err)
	if code := exitCode(log, failed, len(literals)); code != 0 {
		os.Exit(code)
	}
}

// exitCode returns the process status for a run with the given number of
// failed literals. The logger is flushed before a non-zero status is
// returned, since os.Exit does not run deferred calls.
func exitCode(log *zap.SugaredLogger, failed, total int) int {
	if failed == 0 {
		return 0
	}
	log.Debugw("some literals failed", "failed", failed, "total", total)
	log.Sync()
	return 1
}

// newLogger returns a production logger writing to stderr.
// Only warnings and errors are logged unless verbose is set.
func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.Sugar(), nil
}

// readLiterals reads one literal per line, skipping blank lines.
func readLiterals(r io.Reader) ([]string, error) {
	var literals []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		literals = append(literals, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading literals: %w", err)
	}
	return literals, nil
}

// run converts every literal and writes one line per literal to w.
// It returns the number of literals that failed to parse.
func run(w io.Writer, log *zap.SugaredLogger, bits string, raw bool, literals []string) (int, error) {
	var conv func(string, bool) (string, error)
	switch bits {
	case "8":
		conv = convert[int8]
	case "16":
		conv = convert[int16]
	case "32":
		conv = convert[int32]
	case "64":
		conv = convert[int64]
	default:
		return 0, fmt.Errorf("unsupported width %q", bits)
	}

	failed := 0
	for _, lit := range literals {
		res, err := conv(lit, raw)
		if err != nil {
			failed++
			log.Debugw("parse failed", "literal", lit, "error", err)
			res = "error: " + err.Error()
		} else {
			log.Debugw("parsed", "literal", lit, "result", res, "bits", bits)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", lit, res); err != nil {
			return failed, fmt.Errorf("writing result: %w", err)
		}
	}
	return failed, nil
}

// convert parses s as a rational over T and formats the result.
func convert[T rational.Integer](s string, raw bool) (string, error) {
	if raw {
		num, den, err := rational.ParseFlexible[T](s)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%v/%v", num, den), nil
	}
	r, err := rational.Parse[T](s)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}
