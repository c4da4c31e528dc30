package logs

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/afero"
)

const (
	EnvLog     = "GAPEDIT_LOG"
	EnvLogFile = "GAPEDIT_LOG_FILE"

	// DefaultFile is used when logging is enabled without a file name.
	DefaultFile = "gapedit.log"
)

// Logger writes JSON lines with a timestamp and event fields.
type Logger struct {
	mu      sync.Mutex
	w       *bufio.Writer
	f       afero.File
	enabled bool
	now     func() time.Time
}

// Disabled returns a logger that drops every event.
func Disabled() *Logger {
	return &Logger{}
}

// New opens path on fsys for appending. If the file cannot be opened the
// logger is disabled.
func New(fsys afero.Fs, path string) *Logger {
	f, err := fsys.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return Disabled()
	}
	return &Logger{w: bufio.NewWriter(f), f: f, enabled: true, now: time.Now}
}

// NewFromEnv returns a logger if GAPEDIT_LOG is set to a truthy value
// or if GAPEDIT_LOG_FILE is provided. Otherwise it returns a disabled logger.
// When enabled and no file is specified, it writes to ./gapedit.log.
func NewFromEnv() *Logger {
	return newFromLookup(afero.NewOsFs(), os.Getenv)
}

func newFromLookup(fsys afero.Fs, getenv func(string) string) *Logger {
	lf := getenv(EnvLogFile)
	enabled := lf != ""
	if v := getenv(EnvLog); v != "" && v != "0" && v != "false" {
		enabled = true
	}
	if !enabled {
		return Disabled()
	}
	if lf == "" {
		lf = filepath.Join(".", DefaultFile)
	}
	return New(fsys, lf)
}

// Enabled reports whether events are written anywhere.
func (l *Logger) Enabled() bool {
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

// Close flushes and closes the underlying file if enabled. Events logged
// after Close are dropped.
func (l *Logger) Close() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled {
		return
	}
	_ = l.w.Flush()
	_ = l.f.Close()
	l.enabled = false
}

// Event writes a JSON line with the event name and fields.
// Common fields: session, line, column, lines, key, action, file.
func (l *Logger) Event(event string, fields map[string]any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled {
		return
	}
	rec := map[string]any{
		"time":  l.now().Format(time.RFC3339Nano),
		"event": event,
	}
	for k, v := range fields {
		rec[k] = v
	}
	enc := json.NewEncoder(l.w)
	_ = enc.Encode(rec)
	_ = l.w.Flush()
}
