package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/respwin/internal/response"
)

// HistogramOptions holds flags for the histogram command.
type HistogramOptions struct {
	InputOptions
	BinWidth int64
}

// HistogramResult is the output of the histogram command.
type HistogramResult struct {
	Source   string  `json:"source"`
	BinWidth int64   `json:"bin_width"`
	Counts   []int   `json:"counts"`
	Edges    []int64 `json:"edges"`
}

// NewHistogramCommand creates the histogram command.
func NewHistogramCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistogramOptions{InputOptions: InputOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "histogram",
		Short: "Bin the latencies admitted by the response windows",
		Long: `Build a latency histogram from the response windows of a record set.

Every latency a window admits, from end-start_max to end-start_min in steps of
the bin width, is counted. Fails with INVALID_RECORDS (exit code 1) when the
records resolve into no window.

Examples:
  respwin histogram --file callbacks.yaml --bin-width 1000
  respwin histogram --trace callbacks --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistogram(opts, cmd)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().Int64Var(&opts.BinWidth, "bin-width", 0, "histogram bin width (default from config, 1000000)")

	return cmd
}

func runHistogram(opts *HistogramOptions, cmd *cobra.Command) error {
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}
	log := opts.Logger(cmd)
	formatter := opts.Formatter(cmd)

	in, err := opts.load(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	h, err := response.New(in.Records).Histogram(cfg.BinWidth)
	if err != nil {
		return reportAnalysisError(formatter, err)
	}
	log.Debug("histogram built", "source", in.Source, "bin_width", cfg.BinWidth, "bins", len(h.Counts), "samples", h.Total())

	result := HistogramResult{Source: in.Source, BinWidth: cfg.BinWidth, Counts: h.Counts, Edges: h.Edges}
	return formatter.Success(result, func(w io.Writer) error {
		rows := make([][]string, len(h.Counts))
		for i, c := range h.Counts {
			rows[i] = []string{
				strconv.FormatInt(h.Edges[i], 10),
				strconv.FormatInt(h.Edges[i+1], 10),
				strconv.Itoa(c),
			}
		}
		if err := renderTable(w, []string{"From", "To", "Count"}, rows); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "%d sample(s), bin width %d\n", h.Total(), cfg.BinWidth)
		return err
	})
}

// reportAnalysisError reports a reconstruction error and maps it to an exit
// code: INVALID_RECORDS is an analysis failure, anything else a command error.
func reportAnalysisError(formatter *OutputFormatter, err error) error {
	var re *response.Error
	if !errors.As(err, &re) {
		return WrapExitError(ExitCommandError, "analysis failed", err)
	}
	if formatter.Format == "json" {
		if outErr := formatter.Error(string(re.Code), re.Message, re.Details); outErr != nil {
			return outErr
		}
	}
	code := ExitCommandError
	if re.Code == response.ErrCodeInvalidRecords {
		code = ExitFailure
	}
	return WrapExitError(code, "analysis failed", err)
}
