package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/respwin/internal/record"
	"github.com/roach88/respwin/internal/response"
)

// WindowsResult is the output of the windows command.
type WindowsResult struct {
	Source  string                         `json:"source"`
	Windows []record.ResponseWindow[int64] `json:"windows"`
}

// NewWindowsCommand creates the windows command.
func NewWindowsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InputOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "windows",
		Short: "Reconstruct response windows",
		Long: `Reconstruct the response windows of a record set.

A window [start_min, start_max] -> end states that the effect observed at end
was caused by some start in that range.

Examples:
  respwin windows --file callbacks.yaml
  respwin windows --trace 0192f0c4-8f2e-7c3a-9d41-2b6f1e0a5c77 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindows(opts, cmd)
		},
	}

	opts.addFlags(cmd)

	return cmd
}

func runWindows(opts *InputOptions, cmd *cobra.Command) error {
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}
	log := opts.Logger(cmd)

	in, err := opts.load(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	windows := response.New(in.Records).Windows()
	log.Debug("windows reconstructed", "source", in.Source, "records", len(in.Records), "windows", len(windows))

	result := WindowsResult{Source: in.Source, Windows: windows}
	return opts.Formatter(cmd).Success(result, func(w io.Writer) error {
		if len(windows) == 0 {
			fmt.Fprintln(w, "No response windows")
			return nil
		}
		rows := make([][]string, len(windows))
		for i, win := range windows {
			rows[i] = []string{
				strconv.FormatInt(win.StartMin, 10),
				strconv.FormatInt(win.StartMax, 10),
				strconv.FormatInt(win.End, 10),
				strconv.FormatInt(win.End-win.StartMax, 10),
				strconv.FormatInt(win.End-win.StartMin, 10),
			}
		}
		return renderTable(w, []string{"Start Min", "Start Max", "End", "Best", "Worst"}, rows)
	})
}
