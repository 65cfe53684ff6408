package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogEntry represents a single JSON log entry.
type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// LoggerConfig configures the JSONLogger.
type LoggerConfig struct {
	// OutputPath is the log file. Empty means stdout.
	OutputPath string
	// VerdictPath receives one JSON line per verdict. Empty
	// disables the verdict log.
	VerdictPath string
	Level       LogLevel
	Fields      map[string]any
}

// JSONLogger implements Logger with JSON Lines output.
type JSONLogger struct {
	mu      *sync.Mutex
	output  io.Writer
	verdict io.Writer
	level   LogLevel
	fields  map[string]any
	closed  *bool
}

// NewJSONLogger creates a JSON logger from config.
func NewJSONLogger(config LoggerConfig) (*JSONLogger, error) {
	logger := &JSONLogger{
		mu:     &sync.Mutex{},
		output: os.Stdout,
		level:  config.Level,
		fields: mergeFields(config.Fields, nil),
		closed: new(bool),
	}

	if config.OutputPath != "" {
		f, err := openLogFile(config.OutputPath)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logger.output = f
	}

	if config.VerdictPath != "" {
		f, err := openLogFile(config.VerdictPath)
		if err != nil {
			if out, ok := logger.output.(*os.File); ok && out != os.Stdout {
				_ = out.Close()
			}
			return nil, fmt.Errorf("open verdict log: %w", err)
		}
		logger.verdict = f
	}

	return logger, nil
}

// NewJSONWriterLogger creates a JSON logger writing entries to w.
func NewJSONWriterLogger(w io.Writer, level LogLevel) *JSONLogger {
	return &JSONLogger{
		mu:     &sync.Mutex{},
		output: w,
		level:  level,
		fields: make(map[string]any),
		closed: new(bool),
	}
}

// openLogFile opens log files for NewJSONLogger.
var openLogFile = openAppend

func openAppend(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(
		path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644,
	)
}

func (l *JSONLogger) log(level LogLevel, msg string, fields ...Field) {
	if level < l.level {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Level:     level.String(),
		Message:   msg,
		Fields:    mergeFields(l.fields, fields),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if *l.closed {
		return
	}
	fmt.Fprintln(l.output, string(data))
}

// Info logs an informational message.
func (l *JSONLogger) Info(msg string, fields ...Field) {
	l.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message.
func (l *JSONLogger) Warn(msg string, fields ...Field) {
	l.log(LevelWarn, msg, fields...)
}

// Error logs an error message.
func (l *JSONLogger) Error(msg string, fields ...Field) {
	l.log(LevelError, msg, fields...)
}

// Debug logs a debug message.
func (l *JSONLogger) Debug(msg string, fields ...Field) {
	l.log(LevelDebug, msg, fields...)
}

// WithFields returns a logger sharing this logger's writers with
// additional default fields.
func (l *JSONLogger) WithFields(fields ...Field) Logger {
	return &JSONLogger{
		mu:      l.mu,
		output:  l.output,
		verdict: l.verdict,
		level:   l.level,
		fields:  mergeFields(l.fields, fields),
		closed:  l.closed,
	}
}

// LogVerdict writes the verdict to the verdict log when one is
// configured, and logs unexpected verdicts as warnings.
func (l *JSONLogger) LogVerdict(v VerdictLog) {
	if v.Timestamp == "" {
		v.Timestamp = time.Now().Format(time.RFC3339Nano)
	}
	if !v.OK() {
		l.Warn("unexpected verdict",
			ScenarioField(v.Scenario),
			MatcherField(v.Matcher),
			StringField("reason", v.Reason),
		)
	}
	if l.verdict == nil {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if *l.closed {
		return
	}
	fmt.Fprintln(l.verdict, string(data))
}

// Close closes any files opened by NewJSONLogger. Loggers
// derived through WithFields share the closed state.
func (l *JSONLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if *l.closed {
		return nil
	}
	*l.closed = true

	var firstErr error
	for _, w := range []io.Writer{l.output, l.verdict} {
		f, ok := w.(*os.File)
		if !ok || f == os.Stdout || f == os.Stderr {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// SetupLogging creates a JSON logger writing run.log and
// verdicts.log under logsDir.
func SetupLogging(logsDir string, level LogLevel) (*JSONLogger, error) {
	return NewJSONLogger(LoggerConfig{
		OutputPath:  filepath.Join(logsDir, "run.log"),
		VerdictPath: filepath.Join(logsDir, "verdicts.log"),
		Level:       level,
	})
}
