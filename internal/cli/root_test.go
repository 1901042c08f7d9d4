package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deadlyengineer/seqquery/internal/catalogue"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func writeFixture(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "seqquery", cmd.Use)
	assert.Contains(t, cmd.Long, "SEQQUERY_")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"list", "run"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	dataFlag := cmd.PersistentFlags().Lookup("data")
	require.NotNil(t, dataFlag)
	assert.Equal(t, "", dataFlag.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "list", "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestUnknownFlag(t *testing.T) {
	_, _, err := execute(t, "run", "--nope")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestList(t *testing.T) {
	stdout, _, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 43)
	assert.True(t, strings.HasPrefix(lines[0], "query-syntax "))
	assert.Contains(t, lines[0], "filter names containing a substring")
	assert.True(t, strings.HasPrefix(lines[42], "todictionary "))
}

func TestList_JSON(t *testing.T) {
	stdout, _, err := execute(t, "list", "--format", "json")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 43)
	assert.JSONEq(t, `{"name":"where","description":"filter students that are teenagers"}`, lines[2])
}

func TestRun(t *testing.T) {
	stdout, stderr, err := execute(t, "run", "take", "takewhile")
	require.NoError(t, err)
	assert.Equal(t, "# take\nOne\nTwo\n\n# takewhile\nThree\n", stdout)
	assert.Empty(t, stderr)
}

func TestRun_All(t *testing.T) {
	stdout, _, err := execute(t, "run")
	require.NoError(t, err)
	assert.Equal(t, 43, strings.Count(stdout, "# "))
}

func TestRun_JSON(t *testing.T) {
	stdout, _, err := execute(t, "run", "take", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"take","lines":["One","Two"]}`, stdout)
}

func TestRun_UnknownDemo(t *testing.T) {
	stdout, _, err := execute(t, "run", "take", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.True(t, errors.Is(err, catalogue.ErrUnknownDemo))
	assert.Empty(t, stdout)
}

func TestRun_DemoFails(t *testing.T) {
	path := writeFixture(t, "names: [name1, name2]\n")

	stdout, _, err := execute(t, "run", "query-syntax", "where", "--data", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.True(t, errors.Is(err, catalogue.ErrMissingData))
	assert.Equal(t, "# query-syntax\nresult of query syntax: name1\n", stdout)
}

func TestRun_Data(t *testing.T) {
	path := writeFixture(t, "words:\n  counting: [uno, dos, tres]\n")

	stdout, _, err := execute(t, "run", "take", "--data", path)
	require.NoError(t, err)
	assert.Equal(t, "# take\nuno\ndos\n", stdout)
}

func TestRun_MissingDataFile(t *testing.T) {
	_, _, err := execute(t, "run", "--data", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRun_Verbose(t *testing.T) {
	_, stderr, err := execute(t, "run", "take", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, `msg="running demo" name=take`)
	assert.Contains(t, stderr, `msg="demo finished" name=take lines=2`)
}

func TestRun_Env(t *testing.T) {
	t.Setenv("SEQQUERY_FORMAT", "json")
	t.Setenv("SEQQUERY_VERBOSE", "true")
	t.Setenv("SEQQUERY_LOG_FORMAT", "json")

	stdout, stderr, err := execute(t, "run", "take")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"take","lines":["One","Two"]}`, stdout)
	assert.Contains(t, stderr, `"msg":"running demo"`)

	stdout, _, err = execute(t, "run", "take", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "# take\nOne\nTwo\n", stdout)
}

func TestRun_EnvInvalidFormat(t *testing.T) {
	t.Setenv("SEQQUERY_FORMAT", "yaml")

	_, _, err := execute(t, "run", "take")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("SEQQUERY_DATA", "/tmp/fixture.yaml")
	t.Setenv("SEQQUERY_VERBOSE", "1")
	t.Setenv("SEQQUERY_LOG_LEVEL", "WARN")

	cfg, err := LoadConfig(EnvPrefix)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/fixture.yaml", cfg.Data)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "WARN", cfg.Log.Level)
	assert.Equal(t, "", cfg.Format)
}

func TestNewLogger(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		cfg     LogConfig
		verbose bool
		enabled slog.Level
		blocked slog.Level
	}{
		{name: "default", cfg: LogConfig{}, enabled: slog.LevelInfo, blocked: slog.LevelDebug},
		{name: "warn", cfg: LogConfig{Level: "WARN"}, enabled: slog.LevelWarn, blocked: slog.LevelInfo},
		{name: "error", cfg: LogConfig{Level: "error"}, enabled: slog.LevelError, blocked: slog.LevelWarn},
		{name: "verbose", cfg: LogConfig{Level: "ERROR"}, verbose: true, enabled: slog.LevelDebug, blocked: slog.LevelDebug - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := newLogger(&bytes.Buffer{}, tt.cfg, tt.verbose)
			assert.True(t, logger.Enabled(ctx, tt.enabled))
			assert.False(t, logger.Enabled(ctx, tt.blocked))
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	newLogger(buf, LogConfig{Format: "json"}, false).Info("hello", "n", 1)

	assert.JSONEq(t, `{"level":"INFO","msg":"hello","n":1}`, removeTime(t, buf.String()))
}

func removeTime(t *testing.T, line string) string {
	t.Helper()

	start := strings.Index(line, `"time":`)
	require.GreaterOrEqual(t, start, 0)

	end := strings.Index(line[start:], ",")
	require.Greater(t, end, 0)

	return line[:start] + line[start+end+1:]
}

func TestExitError(t *testing.T) {
	inner := errors.New("boom")

	err := WrapExitError(ExitCommandError, "failed", inner)
	assert.Equal(t, "failed: boom", err.Error())
	assert.ErrorIs(t, err, inner)

	assert.Equal(t, "plain", NewExitError(ExitFailure, "plain").Error())
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("other")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))
	assert.Equal(t, ExitCommandError, GetExitCode(fmt.Errorf("wrapped: %w", NewExitError(ExitCommandError, "bad"))))
}
