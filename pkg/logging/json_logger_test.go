package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitNonEmpty(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

func TestJSONLogger_File(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "nested", "run.log")

	logger, err := NewJSONLogger(LoggerConfig{
		OutputPath: logPath,
		Level:      LevelDebug,
		Fields:     map[string]any{"run": "r1"},
	})
	require.NoError(t, err)

	logger.Info("hello", LogField("key", "val"))
	logger.Debug("debug msg")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	lines := splitNonEmpty(string(data))
	require.Len(t, lines, 2)

	var entry LogEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "hello", entry.Message)
	assert.Equal(t, "val", entry.Fields["key"])
	assert.Equal(t, "r1", entry.Fields["run"])
}

func TestJSONLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriterLogger(&buf, LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown")

	assert.Len(t, splitNonEmpty(buf.String()), 2)
}

func TestJSONLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	base := NewJSONWriterLogger(&buf, LevelInfo)

	child := base.WithFields(ScenarioField("s1"))
	child.Info("from child")
	base.Info("from base")

	lines := splitNonEmpty(buf.String())
	require.Len(t, lines, 2)

	var first, second LogEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "s1", first.Fields["scenario"])
	assert.NotContains(t, second.Fields, "scenario")
}

func TestJSONLogger_LogVerdict(t *testing.T) {
	dir := t.TempDir()
	verdictPath := filepath.Join(dir, "verdicts.log")
	var out bytes.Buffer

	logger, err := NewJSONLogger(LoggerConfig{
		VerdictPath: verdictPath,
		Level:       LevelInfo,
	})
	require.NoError(t, err)
	logger.output = &out

	logger.LogVerdict(VerdictLog{
		Scenario: "s", Matcher: "m", Passed: true, Expected: true,
	})
	logger.LogVerdict(VerdictLog{
		Scenario: "s", Matcher: "m", Passed: false, Expected: true,
		Reason: "key_not_found",
	})
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(verdictPath)
	require.NoError(t, err)
	lines := splitNonEmpty(string(data))
	require.Len(t, lines, 2)

	var v VerdictLog
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &v))
	assert.Equal(t, "key_not_found", v.Reason)
	assert.NotEmpty(t, v.Timestamp)

	warnings := splitNonEmpty(out.String())
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "unexpected verdict")
}

func TestJSONLogger_ClosedDropsEntries(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriterLogger(&buf, LevelInfo)
	child := logger.WithFields(LogField("a", 1))

	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())
	child.Info("dropped")

	assert.Empty(t, buf.String())
}

func TestNewJSONLogger_VerdictPathFailureClosesOutput(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	var opened []*os.File
	orig := openLogFile
	openLogFile = func(path string) (*os.File, error) {
		f, err := orig(path)
		if f != nil {
			opened = append(opened, f)
		}
		return f, err
	}
	t.Cleanup(func() { openLogFile = orig })

	_, err := NewJSONLogger(LoggerConfig{
		OutputPath:  filepath.Join(dir, "run.log"),
		VerdictPath: filepath.Join(blocker, "verdicts.log"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open verdict log")

	require.Len(t, opened, 1)
	_, err = opened[0].WriteString("late")
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestSetupLogging(t *testing.T) {
	dir := t.TempDir()

	logger, err := SetupLogging(dir, LevelDebug)
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, logger.level)

	logger.Debug("visible")
	require.NoError(t, logger.Close())

	assert.FileExists(t, filepath.Join(dir, "run.log"))
	assert.FileExists(t, filepath.Join(dir, "verdicts.log"))
}
