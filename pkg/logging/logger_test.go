package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel("ERROR"))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelInfo, ParseLevel("bogus"))
}

func TestVerdictLog_OK(t *testing.T) {
	assert.True(t, VerdictLog{Passed: true, Expected: true}.OK())
	assert.True(t, VerdictLog{Passed: false, Expected: false}.OK())
	assert.False(t, VerdictLog{Passed: true, Expected: false}.OK())
}

func TestFieldHelpers(t *testing.T) {
	assert.Equal(t, Field{Key: "k", Value: 1}, LogField("k", 1))
	assert.Equal(t, Field{Key: "s", Value: "v"}, StringField("s", "v"))
	assert.Equal(t, Field{Key: "n", Value: 3}, IntField("n", 3))
	assert.Equal(t, Field{Key: "b", Value: true}, BoolField("b", true))
	assert.Equal(t, Field{Key: "error", Value: "<nil>"}, ErrorField(nil))
	assert.Equal(t, Field{Key: "error", Value: "boom"},
		ErrorField(errors.New("boom")))
	assert.Equal(t, "scenario", ScenarioField("x").Key)
	assert.Equal(t, "matcher", MatcherField("x").Key)
}

func TestMergeFields_DoesNotAlias(t *testing.T) {
	base := map[string]any{"a": 1}
	merged := mergeFields(base, []Field{{Key: "b", Value: 2}})

	assert.Len(t, base, 1)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, merged)
}
