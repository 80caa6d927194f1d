package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/respwin/internal/config"
	"github.com/roach88/respwin/internal/record"
	"github.com/roach88/respwin/internal/source"
	"github.com/roach88/respwin/internal/store"
)

// InputOptions selects the record set an analysis command works on: a
// record file or a previously imported trace.
type InputOptions struct {
	*RootOptions
	File        string
	Trace       string
	Database    string
	StartColumn string
	EndColumn   string
}

// Input is a loaded record set.
type Input struct {
	// Source is the file path or trace ID the records came from.
	Source  string
	Records []record.FlowRecord[int64]
}

func (o *InputOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.File, "file", "f", "", "record file (.yaml, .json or .cue)")
	cmd.Flags().StringVarP(&o.Trace, "trace", "t", "", "imported trace ID or name")
	cmd.Flags().StringVar(&o.Database, "db", "", "path to SQLite database (default from config, respwin.db)")
	cmd.Flags().StringVar(&o.StartColumn, "start-column", "", "start column name in the record file")
	cmd.Flags().StringVar(&o.EndColumn, "end-column", "", "end column name in the record file")
	cmd.MarkFlagsMutuallyExclusive("file", "trace")
	cmd.MarkFlagsOneRequired("file", "trace")
}

// load reads the selected record set.
func (o *InputOptions) load(ctx context.Context, cfg config.Config, log *slog.Logger) (*Input, error) {
	if o.File != "" {
		set, err := source.Load(o.File, source.Columns{Start: cfg.StartColumn, End: cfg.EndColumn})
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to load records", err)
		}
		log.Debug("records loaded",
			"file", o.File,
			"records", len(set.Records),
			"skipped", set.Skipped,
			"start_column", set.StartColumn,
			"end_column", set.EndColumn,
		)
		return &Input{Source: o.File, Records: set.Records}, nil
	}

	st, err := openExistingStore(cfg.Database, log)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	trace, err := st.ReadTrace(ctx, o.Trace)
	if err != nil {
		if errors.Is(err, store.ErrTraceNotFound) {
			return nil, WrapExitError(ExitCommandError, "trace not found", err)
		}
		return nil, WrapExitError(ExitCommandError, "failed to read trace", err)
	}
	records, err := st.ReadFlowRecords(ctx, trace.ID)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to read records", err)
	}
	log.Debug("records loaded", "db", cfg.Database, "trace", trace.ID, "records", len(records))
	return &Input{Source: trace.ID, Records: records}, nil
}

// openExistingStore opens path, refusing to create a new database.
func openExistingStore(path string, log *slog.Logger) (*store.Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, WrapExitError(ExitCommandError, "database not found", err)
	}
	st, err := store.Open(path, store.WithLogger(log))
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	return st, nil
}
