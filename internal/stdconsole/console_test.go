package stdconsole

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/mailgun/timetools"
	"github.com/mattn/go-colorable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	console *Console
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	clock   *timetools.FreezedTime
}

func newFixture() *fixture {
	f := &fixture{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		clock:  &timetools.FreezedTime{CurrentTime: time.Date(2024, time.March, 5, 15, 4, 5, 0, time.UTC)},
	}
	f.console = New(Options{Stdout: f.stdout, Stderr: f.stderr, Clock: f.clock})
	return f
}

func TestConsole_StreamSelection(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.console.Log("log", 1))
	require.NoError(t, f.console.Info("info", true))
	require.NoError(t, f.console.Debug("debug"))
	require.NoError(t, f.console.DirXML("<xml/>"))
	require.NoError(t, f.console.Warn("warn"))
	require.NoError(t, f.console.Error("error", 2.5))

	assert.Equal(t, "log 1\ninfo true\ndebug\n<xml/>\n", f.stdout.String())
	assert.Equal(t, "warn\nerror 2.5\n", f.stderr.String())
}

func TestConsole_LogWithoutData(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.console.Log())
	assert.Equal(t, "\n", f.stdout.String())
}

func TestConsole_Assert(t *testing.T) {
	tests := []struct {
		name string
		cond bool
		data []any
		want string
	}{
		{name: "holds", cond: true, data: []any{"ignored"}, want: ""},
		{name: "no data", cond: false, want: "Assertion failed\n"},
		{name: "message", cond: false, data: []any{"x is %d", 3}, want: "Assertion failed: x is %d 3\n"},
		{name: "non string data", cond: false, data: []any{42}, want: "Assertion failed: 42\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			require.NoError(t, f.console.Assert(tt.cond, tt.data...))
			assert.Equal(t, tt.want, f.stderr.String())
			assert.Empty(t, f.stdout.String())
		})
	}
}

func TestConsole_GroupIndentation(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.console.Group("outer"))
	require.NoError(t, f.console.Log("one"))
	require.NoError(t, f.console.GroupCollapsed())
	require.NoError(t, f.console.Log("two\nlines"))
	require.NoError(t, f.console.GroupEnd())
	require.NoError(t, f.console.GroupEnd())
	require.NoError(t, f.console.GroupEnd())
	require.NoError(t, f.console.Log("three"))

	assert.Equal(t, "outer\n  one\n    two\n    lines\nthree\n", f.stdout.String())
}

func TestConsole_Count(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.console.Count(""))
	require.NoError(t, f.console.Count(""))
	require.NoError(t, f.console.Count("hits"))
	require.NoError(t, f.console.CountReset(""))
	require.NoError(t, f.console.Count("default"))
	require.NoError(t, f.console.CountReset("missing"))

	assert.Equal(t, "default: 1\ndefault: 2\nhits: 1\ndefault: 1\n", f.stdout.String())
	assert.Equal(t, "Count for 'missing' does not exist\n", f.stderr.String())
}

func TestConsole_Timers(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.console.Time("load"))
	require.NoError(t, f.console.Time("load"))

	f.clock.CurrentTime = f.clock.CurrentTime.Add(1500 * time.Microsecond)
	require.NoError(t, f.console.TimeLog("load", "halfway", 50))

	f.clock.CurrentTime = f.clock.CurrentTime.Add(2*time.Second + 500*time.Microsecond)
	require.NoError(t, f.console.TimeEnd("load"))
	require.NoError(t, f.console.TimeEnd("load"))
	require.NoError(t, f.console.TimeLog(""))

	assert.Equal(t, "load: 1.500ms halfway 50\nload: 2.002s\n", f.stdout.String())
	assert.Equal(t,
		"Label 'load' already exists for console.time()\n"+
			"No such label 'load' for console.timeEnd()\n"+
			"No such label 'default' for console.timeLog()\n",
		f.stderr.String())
}

func TestConsole_Trace(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.console.Trace("here", 1))

	assert.Empty(t, f.stdout.String())
	assert.Contains(t, f.stderr.String(), "Trace: here 1\n")
	assert.Contains(t, f.stderr.String(), "goroutine")
}

func TestConsole_Dir(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.console.Dir(map[string]int{"b": 2, "a": 1}))

	out := f.stdout.String()
	assert.Contains(t, out, `"a": (int) 1`)
	assert.Less(t, bytes.Index(f.stdout.Bytes(), []byte(`"a"`)), bytes.Index(f.stdout.Bytes(), []byte(`"b"`)))
}

func TestConsole_ClearIgnoresNonTerminal(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.console.Clear())
	assert.Empty(t, f.stdout.String())
}

func TestConsole_ClearIgnoresWrappedStdout(t *testing.T) {
	var out bytes.Buffer
	c := New(Options{Stdout: colorable.NewNonColorable(&out), Stderr: &bytes.Buffer{}})

	require.NoError(t, c.Clear())
	assert.Empty(t, out.String())
}

func TestConsole_ClearIgnoresRedirectedFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stdout")
	require.NoError(t, err)
	defer f.Close()

	c := New(Options{Stdout: f, Stderr: &bytes.Buffer{}})
	require.NoError(t, c.Clear())

	info, err := f.Stat()
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0.250ms", formatDuration(250*time.Microsecond))
	assert.Equal(t, "999.000ms", formatDuration(999*time.Millisecond))
	assert.Equal(t, "1.000s", formatDuration(time.Second))
}
