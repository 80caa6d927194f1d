package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/respwin/internal/response"
)

// Latency cases.
const (
	CaseBest  = "best"
	CaseWorst = "worst"
)

// LatencyOptions holds flags for the latency command.
type LatencyOptions struct {
	InputOptions
	Case string
}

// LatencyResult is the output of the latency command.
type LatencyResult struct {
	Source    string                    `json:"source"`
	Case      string                    `json:"case"`
	Latencies []response.Latency[int64] `json:"latencies"`
}

// NewLatencyCommand creates the latency command.
func NewLatencyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LatencyOptions{InputOptions: InputOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "latency",
		Short: "Report best- or worst-case latency per response window",
		Long: `Report one latency per response window.

The best case is end - start_max, the shortest latency the timing allows.
The worst case is end - start_min, the longest.

Examples:
  respwin latency --file callbacks.yaml
  respwin latency --trace callbacks --case worst --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLatency(opts, cmd)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVar(&opts.Case, "case", CaseBest, "latency case (best|worst)")

	return cmd
}

func runLatency(opts *LatencyOptions, cmd *cobra.Command) error {
	if opts.Case != CaseBest && opts.Case != CaseWorst {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid case %q: must be %s or %s", opts.Case, CaseBest, CaseWorst))
	}

	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}
	log := opts.Logger(cmd)

	in, err := opts.load(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	r := response.New(in.Records)
	latencies := r.BestCase()
	if opts.Case == CaseWorst {
		latencies = r.WorstCase()
	}
	log.Debug("latencies derived", "source", in.Source, "case", opts.Case, "count", len(latencies))

	result := LatencyResult{Source: in.Source, Case: opts.Case, Latencies: latencies}
	return opts.Formatter(cmd).Success(result, func(w io.Writer) error {
		if len(latencies) == 0 {
			fmt.Fprintln(w, "No response windows")
			return nil
		}
		rows := make([][]string, len(latencies))
		for i, l := range latencies {
			rows[i] = []string{strconv.FormatInt(l.End, 10), strconv.FormatInt(l.Latency, 10)}
		}
		return renderTable(w, []string{"End", "Latency"}, rows)
	})
}
