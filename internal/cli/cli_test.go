package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	yangerrors "github.com/jacoelho/yang/errors"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand(os.Stdout, os.Stderr)
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "check")
	assert.Contains(t, names, "format")
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand(os.Stdout, os.Stderr)
	assert.Equal(t, "dev", root.Version)
}

func TestCheckCommandFlags(t *testing.T) {
	cmd := newCheckCommand()
	for _, name := range []string{"yin", "all-features", "feature", "validate-paths"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestFormatCommandFlags(t *testing.T) {
	cmd := newFormatCommand()
	assert.NotNil(t, cmd.Flags().Lookup("from"))
	assert.NotNil(t, cmd.Flags().Lookup("to"))
}

// ---------- End-to-end Execute tests ----------

const validModule = `module m {
  namespace "urn:m";
  prefix m;
  leaf port {
    type int8;
  }
}
`

func writeTempModule(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestExecuteCheckSucceedsOnValidModule(t *testing.T) {
	path := writeTempModule(t, "m.yang", validModule)
	var stdout, stderr bytes.Buffer
	code := Execute([]string{"check", path}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "m: ok")
}

func TestExecuteCheckFailsOnSyntaxError(t *testing.T) {
	path := writeTempModule(t, "bad.yang", "module m { namespace")
	var stdout, stderr bytes.Buffer
	code := Execute([]string{"check", path}, &stdout, &stderr)
	assert.Equal(t, 2, code)
}

func TestExecuteFormatRoundTripsCompact(t *testing.T) {
	path := writeTempModule(t, "m.yang", validModule)
	var stdout, stderr bytes.Buffer
	code := Execute([]string{"format", path}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "module m {")
}

func TestExecuteFormatCompactToYIN(t *testing.T) {
	path := writeTempModule(t, "m.yang", validModule)
	var stdout, stderr bytes.Buffer
	code := Execute([]string{"format", "--to", "yin", path}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), `name="m"`)
}

// ---------- Helper function tests ----------

func TestResolveBool(t *testing.T) {
	assert.True(t, resolveBool(nil, true, "test_key", "test-flag"))
	assert.False(t, resolveBool(nil, false, "test_key", "test-flag"))
}

func TestResolveStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, resolveStrings(nil, []string{"a", "b"}, "test_key", "test-flag"))
}

func TestFlagChanged(t *testing.T) {
	assert.False(t, flagChanged(nil, "anything"))

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	assert.False(t, flagChanged(cmd, "myflag"))
	assert.False(t, flagChanged(cmd, "nonexistent"))
}

func TestFlagChangedAfterSet(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	require.NoError(t, cmd.Flags().Set("myflag", "val"))
	assert.True(t, flagChanged(cmd, "myflag"))
}

// ---------- Exit code tests ----------

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"syntax", yangerrors.New(yangerrors.Syntax, "bad"), 2},
		{"validation", yangerrors.New(yangerrors.Validation, "bad"), 3},
		{"unresolved", yangerrors.New(yangerrors.Unresolved, "bad"), 3},
		{"denied", yangerrors.New(yangerrors.Denied, "bad"), 3},
		{"internal", yangerrors.New(yangerrors.Internal, "bad"), 4},
		{"memory", yangerrors.New(yangerrors.Memory, "bad"), 4},
		{"unknown error", assert.AnError, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exitCodeForError(tt.err))
		})
	}
}

func TestExitCodeForErrorList(t *testing.T) {
	list := yangerrors.List{
		yangerrors.New(yangerrors.Syntax, "a"),
		yangerrors.New(yangerrors.Internal, "b"),
	}
	assert.Equal(t, 2, exitCodeForError(list))
}
