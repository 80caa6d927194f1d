package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/respwin/internal/source"
	"github.com/roach88/respwin/internal/store"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	Database    string
	Name        string
	StartColumn string
	EndColumn   string

	// IDGenerator assigns trace IDs. Defaults to UUIDv7.
	IDGenerator store.IDGenerator
}

// ImportResult is the output of the import command.
type ImportResult struct {
	Trace   store.Trace `json:"trace"`
	Created bool        `json:"created"`
	Skipped int         `json:"skipped"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	return newImportCommand(&ImportOptions{RootOptions: rootOpts})
}

func newImportCommand(opts *ImportOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a record file into the database",
		Long: `Import a record set from a YAML, JSON or CUE file as a new trace.

Records are stored in file order. Importing a record set that is already
stored returns the existing trace instead of creating a duplicate.

Examples:
  respwin import callbacks.yaml
  respwin import callbacks.json --db ./traces.db --name callbacks
  respwin import raw.cue --start-column t_in --end-column t_out`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (default from config, respwin.db)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "trace name (default: document name or file name)")
	cmd.Flags().StringVar(&opts.StartColumn, "start-column", "", "start column name in the record file")
	cmd.Flags().StringVar(&opts.EndColumn, "end-column", "", "end column name in the record file")

	return cmd
}

func runImport(opts *ImportOptions, cmd *cobra.Command, path string) error {
	ctx := cmd.Context()
	log := opts.Logger(cmd)

	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}

	set, err := source.Load(path, source.Columns{Start: cfg.StartColumn, End: cfg.EndColumn})
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load records", err)
	}
	if set.Skipped > 0 {
		log.Warn("records without start or end column skipped", "file", path, "skipped", set.Skipped)
	}

	name := opts.Name
	if name == "" {
		name = set.Name
	}

	st, err := store.Open(cfg.Database, store.WithLogger(log))
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()

	gen := opts.IDGenerator
	if gen == nil {
		gen = store.UUIDv7Generator{}
	}

	trace, created, err := st.WriteTrace(ctx, gen.Generate(), name, set.Records)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to write trace", err)
	}
	if created {
		log.Info("trace imported", "trace", trace.ID, "name", trace.Name, "records", trace.RecordCount, "db", cfg.Database)
	} else {
		log.Info("record set already imported", "trace", trace.ID, "digest", trace.Digest)
	}

	result := ImportResult{Trace: trace, Created: created, Skipped: set.Skipped}
	return opts.Formatter(cmd).Success(result, func(w io.Writer) error {
		if created {
			fmt.Fprintf(w, "Imported %d record(s) as trace %s (%s)\n", trace.RecordCount, trace.ID, trace.Name)
		} else {
			fmt.Fprintf(w, "Already imported as trace %s (%s)\n", trace.ID, trace.Name)
		}
		if set.Skipped > 0 {
			fmt.Fprintf(w, "Skipped %d record(s) missing %s or %s\n", set.Skipped, set.StartColumn, set.EndColumn)
		}
		return nil
	})
}
