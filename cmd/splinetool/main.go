// Command splinetool inspects and edits animation curves stored as TOML.
//
// Usage:
//
//	splinetool [options]
//
// Without -in, the tool starts from the default ramp from (0, 0) to (1, 1).
// Edits are applied in the order insertions, then removals. The resulting
// curve is written to -o, or to standard output if neither -samples nor
// -frame is given.
//
// Examples:
//
//	splinetool -insert 0.25 -insert 0.75 -o curve.toml
//	splinetool -in curve.toml -remove 1 -samples 16
//	splinetool -in curve.toml -frame -height 300
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"

	"honnef.co/go/spline"
	"honnef.co/go/spline/edit"
)

const (
	// Viewer defaults, matching the curve editor.
	defaultHeight = 200
	defaultMargin = 1.1
)

type options struct {
	in      string
	out     string
	inserts []float64
	removes []int
	samples int
	frame   bool
	height  float64
	margin  float64
	verbose bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("splinetool", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.in, "in", "", "Read the curve from this TOML file")
	fs.StringVar(&opts.out, "o", "", "Write the resulting curve to this TOML file")
	fs.Func("insert", "Insert a point at `x` (repeatable)", func(s string) error {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		opts.inserts = append(opts.inserts, x)
		return nil
	})
	fs.Func("remove", "Remove the point at `index` (repeatable)", func(s string) error {
		i, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		opts.removes = append(opts.removes, i)
		return nil
	})
	fs.IntVar(&opts.samples, "samples", 0, "Print the curve sampled at `n` steps per segment")
	fs.BoolVar(&opts.frame, "frame", false, "Print the zoom and offset that fit the curve into the plot")
	fs.Float64Var(&opts.height, "height", defaultHeight, "Plot height in pixels, for -frame")
	fs.Float64Var(&opts.margin, "margin", defaultMargin, "Relative margin around the curve, for -frame")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if opts.verbose {
		spline.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer spline.SetLogger(nil)
	}

	s := spline.DefaultHermiteSpline()
	if opts.in != "" {
		f, err := os.Open(opts.in)
		if err != nil {
			return err
		}
		s, err = readSpline(f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", opts.in, err)
		}
	}

	s, err = applyEdits(s, opts)
	if err != nil {
		return err
	}

	if opts.samples > 0 {
		for p := range s.Samples(opts.samples) {
			fmt.Fprintf(stdout, "%g\t%g\n", p.X, p.Y)
		}
	}
	if opts.frame {
		b := s.Bounds()
		m := edit.NewMapper(0, spline.Sz(1, opts.height))
		m.Fit(b.Y0, b.Y1, opts.margin)
		fmt.Fprintf(stdout, "min %g max %g zoom %g offset %g\n", b.Y0, b.Y1, m.ZoomY, m.OffsetY)
	}

	switch {
	case opts.out != "":
		f, err := os.Create(opts.out)
		if err != nil {
			return err
		}
		if err := writeSpline(f, s); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	case opts.samples == 0 && !opts.frame:
		return writeSpline(stdout, s)
	}
	return nil
}

func applyEdits(s spline.HermiteSpline, opts options) (spline.HermiteSpline, error) {
	for _, x := range opts.inserts {
		next, ok := s.InsertPoint(x)
		if !ok {
			return s, fmt.Errorf("cannot insert a point at x = %g", x)
		}
		spline.Logger().Info("inserted point", "x", x, "count", next.Count())
		s = next
	}
	for _, i := range opts.removes {
		next, ok := s.RemovePoint(i)
		if !ok {
			return s, fmt.Errorf("cannot remove point %d of %d", i, s.Count())
		}
		spline.Logger().Info("removed point", "index", i, "count", next.Count())
		s = next
	}
	return s, nil
}
