package logs

import (
	"bufio"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func readEvents(t *testing.T, fsys afero.Fs, path string) []map[string]any {
	t.Helper()
	f, err := fsys.Open(path)
	require.NoError(t, err)
	defer f.Close()
	var out []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		out = append(out, rec)
	}
	return out
}

func TestEventWritesJSONLines(t *testing.T) {
	mem := afero.NewMemMapFs()
	l := New(mem, "/log.jsonl")
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	l.Event("line.split", map[string]any{"line": 3})
	l.Event("save.success", nil)
	l.Close()

	events := readEvents(t, mem, "/log.jsonl")
	require.Len(t, events, 2)
	require.Equal(t, "line.split", events[0]["event"])
	require.Equal(t, float64(3), events[0]["line"])
	require.Equal(t, "2024-01-02T03:04:05Z", events[0]["time"])
	require.Equal(t, "save.success", events[1]["event"])
}

func TestDisabledLoggerIsNoop(t *testing.T) {
	l := Disabled()
	require.False(t, l.Enabled())
	l.Event("x", nil)
	l.Close()

	var nilLogger *Logger
	require.False(t, nilLogger.Enabled())
	nilLogger.Event("x", nil)
}

func TestEventAfterClose(t *testing.T) {
	mem := afero.NewMemMapFs()
	l := New(mem, "/a.log")
	l.Close()
	l.Event("late", nil)
	require.Empty(t, readEvents(t, mem, "/a.log"))
}

func TestConcurrentEventsAndClose(t *testing.T) {
	mem := afero.NewMemMapFs()
	l := New(mem, "/c.log")
	var wg sync.WaitGroup
	for g := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 50 {
				l.Event("tick", map[string]any{"g": g, "i": i})
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		l.Close()
	}()
	wg.Wait()

	require.False(t, l.Enabled())
	require.LessOrEqual(t, len(readEvents(t, mem, "/c.log")), 200)
}

func TestNewFromLookup(t *testing.T) {
	env := func(m map[string]string) func(string) string {
		return func(k string) string { return m[k] }
	}
	mem := afero.NewMemMapFs()

	require.False(t, newFromLookup(mem, env(nil)).Enabled())
	require.False(t, newFromLookup(mem, env(map[string]string{EnvLog: "false"})).Enabled())

	l := newFromLookup(mem, env(map[string]string{EnvLogFile: "/custom.log"}))
	require.True(t, l.Enabled())
	l.Close()
	ok, err := afero.Exists(mem, "/custom.log")
	require.NoError(t, err)
	require.True(t, ok)

	l = newFromLookup(mem, env(map[string]string{EnvLog: "1"}))
	require.True(t, l.Enabled())
	l.Close()
	ok, err = afero.Exists(mem, DefaultFile)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestNewUnwritableDisables(t *testing.T) {
	ro := afero.NewReadOnlyFs(afero.NewMemMapFs())
	require.False(t, New(ro, "/x.log").Enabled())
}
