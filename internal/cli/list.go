package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/respwin/internal/store"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Database string
}

// ListResult is the output of the list command.
type ListResult struct {
	Traces []store.Trace `json:"traces"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List imported traces",
		Long: `List the traces stored in the database in import order.

Examples:
  respwin list
  respwin list --db ./traces.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (default from config, respwin.db)")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}

	log := opts.Logger(cmd)

	st, err := openExistingStore(cfg.Database, log)
	if err != nil {
		return err
	}
	defer st.Close()

	traces, err := st.ListTraces(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list traces", err)
	}
	log.Debug("traces listed", "db", cfg.Database, "count", len(traces))

	return opts.Formatter(cmd).Success(ListResult{Traces: traces}, func(w io.Writer) error {
		if len(traces) == 0 {
			fmt.Fprintln(w, "No traces imported")
			return nil
		}
		rows := make([][]string, len(traces))
		for i, t := range traces {
			rows[i] = []string{
				strconv.FormatInt(t.Seq, 10),
				t.ID,
				t.Name,
				strconv.Itoa(t.RecordCount),
				shortDigest(t.Digest),
			}
		}
		return renderTable(w, []string{"Seq", "ID", "Name", "Records", "Digest"}, rows)
	})
}

// shortDigest trims a hex digest for display.
func shortDigest(d string) string {
	if len(d) > 12 {
		return d[:12]
	}
	return d
}
