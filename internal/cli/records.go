package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/respwin/internal/record"
	"github.com/roach88/respwin/internal/response"
)

// RecordsOptions holds flags for the records command.
type RecordsOptions struct {
	InputOptions
	All bool
}

// RecordsResult is the output of the records command.
type RecordsResult struct {
	Source string                     `json:"source"`
	All    bool                       `json:"all"`
	Pairs  []record.RecordPair[int64] `json:"pairs"`
}

// NewRecordsCommand creates the records command.
func NewRecordsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RecordsOptions{InputOptions: InputOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "records",
		Short: "Flatten response windows into (start, end) pairs",
		Long: `Flatten the response windows of a record set into (start, end) pairs.

Each window contributes its earliest and latest admissible start paired with
its end. With --all, every (start, end) pair consistent with the timing is
listed instead, sorted by start then end.

Examples:
  respwin records --file callbacks.yaml
  respwin records --trace callbacks --all --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecords(opts, cmd)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().BoolVar(&opts.All, "all", false, "list every admissible (start, end) pair")

	return cmd
}

func runRecords(opts *RecordsOptions, cmd *cobra.Command) error {
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
	pairs := r.Records()
	if opts.All {
		pairs = r.AllRecords()
	}
	log.Debug("records derived", "source", in.Source, "all", opts.All, "pairs", len(pairs))

	result := RecordsResult{Source: in.Source, All: opts.All, Pairs: pairs}
	return opts.Formatter(cmd).Success(result, func(w io.Writer) error {
		if len(pairs) == 0 {
			fmt.Fprintln(w, "No response windows")
			return nil
		}
		rows := make([][]string, len(pairs))
		for i, p := range pairs {
			rows[i] = []string{
				strconv.FormatInt(p.Start, 10),
				strconv.FormatInt(p.End, 10),
				strconv.FormatInt(p.End-p.Start, 10),
			}
		}
		return renderTable(w, []string{"Start", "End", "Latency"}, rows)
	})
}
