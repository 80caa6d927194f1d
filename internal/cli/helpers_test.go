package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/roach88/respwin/internal/testutil"
)

// doubleFlow resolves into one window {0..2 -> 3}.
const doubleFlow = `name: double_flow
records:
  - {start: 0, end: 1}
  - {start: 2, end: 3}
`

// isolateEnv keeps user config files and RESPWIN_* variables out of a test.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, name := range []string{"RESPWIN_DB", "RESPWIN_BIN_WIDTH", "RESPWIN_START_COLUMN", "RESPWIN_END_COLUMN"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs cmd with args and returns stdout and stderr.
func execute(cmd *cobra.Command, args ...string) (string, string, error) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// importFile imports path into dbPath as trace-1.
func importFile(t *testing.T, dbPath, path string) {
	t.Helper()
	cmd := newImportCommand(&ImportOptions{
		RootOptions: &RootOptions{Format: "text"},
		IDGenerator: testutil.NewSequenceIDGenerator("trace"),
	})
	_, _, err := execute(cmd, path, "--db", dbPath)
	require.NoError(t, err)
}

// decodeData decodes a successful CLIResponse payload.
func decodeData[T any](t *testing.T, out string) T {
	t.Helper()
	var resp struct {
		Status string `json:"status"`
		Data   T      `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	require.Equal(t, "ok", resp.Status)
	return resp.Data
}
