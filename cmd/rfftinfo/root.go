package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-realfft/dsp/realfft"
)

type options struct {
	backend   string
	precision int
	check     bool
	format    string
	evenOnly  bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "rfftinfo [flags] length...",
		Short: "Inspect real FFT plans",
		Long: `rfftinfo builds a forward and an inverse real FFT for each length and
prints how the transform is executed: the packed even path or the odd path,
the number of spectrum bins, twiddles and scratch elements.

With --check it also transforms a deterministic noise signal and reports the
largest deviation from a full complex FFT and of the round trip.

Examples:
  rfftinfo 1024
  rfftinfo --check 1000 1023 1024
  rfftinfo --backend gonum --precision 32 --format yaml 480`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.backend, "backend", "algofft", "complex FFT backend (algofft, gonum)")
	f.IntVar(&opts.precision, "precision", 64, "floating point precision (64, 32)")
	f.BoolVar(&opts.check, "check", false, "measure forward and round-trip error")
	f.StringVar(&opts.format, "format", "table", "output format (table, yaml)")
	f.BoolVar(&opts.evenOnly, "even-only", false, "reject odd lengths")

	return cmd
}

func run(out io.Writer, opts options, args []string) error {
	backend, err := realfft.ParseBackend(opts.backend)
	if err != nil {
		return err
	}
	if opts.format != "table" && opts.format != "yaml" {
		return fmt.Errorf("unknown format %q", opts.format)
	}

	rfftOpts := []realfft.Option{realfft.WithBackend(backend)}
	if opts.evenOnly {
		rfftOpts = append(rfftOpts, realfft.WithEvenOnly())
	}

	reports := make([]report, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid length %q", arg)
		}

		var r report
		switch opts.precision {
		case 64:
			r, err = inspect[float64, complex128](n, opts.check, rfftOpts)
		case 32:
			r, err = inspect[float32, complex64](n, opts.check, rfftOpts)
		default:
			return fmt.Errorf("unsupported precision %d", opts.precision)
		}
		if err != nil {
			return err
		}
		reports = append(reports, r)
	}

	if opts.format == "yaml" {
		return writeYAML(out, reports)
	}
	return writeTable(out, reports, opts.check)
}

func writeYAML(out io.Writer, reports []report) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

func writeTable(out io.Writer, reports []report, check bool) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	header := "Length\tPath\tBins\tTwiddles\tScratch Fwd\tScratch Inv\tBackend\tPrecision"
	if check {
		header += "\tForward Err\tRound-trip Err"
	}
	if _, err := fmt.Fprintln(tw, header); err != nil {
		return err
	}

	for _, r := range reports {
		line := fmt.Sprintf("%d\t%s\t%d\t%d\t%d\t%d\t%s\t%d",
			r.Length, r.Path, r.Bins, r.Twiddles, r.ScratchForward, r.ScratchInverse, r.Backend, r.Precision)
		if check {
			line += fmt.Sprintf("\t%.3e\t%.3e", *r.ForwardError, *r.RoundTripError)
		}
		if _, err := fmt.Fprintln(tw, line); err != nil {
			return err
		}
	}
	return tw.Flush()
}
