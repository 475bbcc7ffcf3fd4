package tsconsole

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/ar4ie13/tsconsole/internal/localtime"
	"github.com/ar4ie13/tsconsole/internal/mocks"
	"github.com/mailgun/timetools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var frozen = time.Date(2024, time.March, 5, 15, 4, 5, 0, time.UTC)

// utc24 pins the rendered time to "15:04:05" whatever the host zone is
var utc24 = FormatOptions{OptTimeZone: "UTC", OptHourCycle: "h23"}

type fixture struct {
	console *Console
	ops     *mocks.MockOperations
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()

	f := &fixture{
		ops:    mocks.NewMockOperations(gomock.NewController(t)),
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}

	base := []Option{
		WithConsole(f.ops),
		WithOutput(f.stdout, f.stderr),
		WithClock(&timetools.FreezedTime{CurrentTime: frozen}),
		WithLocale("en-US"),
		WithFormatOptions(utc24),
	}

	c, err := New(append(base, opts...)...)
	require.NoError(t, err)
	f.console = c

	return f
}

func TestConsole_OperationRouting(t *testing.T) {
	const stamp = "15:04:05 "

	tests := []struct {
		name   string
		expect func(m *mocks.MockOperationsMockRecorder)
		call   func(c *Console) error
		stdout string
		stderr string
	}{
		{
			name:   "assert failing",
			expect: func(m *mocks.MockOperationsMockRecorder) { m.Assert(false, "x") },
			call:   func(c *Console) error { return c.Assert(false, "x") },
			stderr: stamp,
		},
		{
			name:   "assert holding",
			expect: func(m *mocks.MockOperationsMockRecorder) { m.Assert(true, "x") },
			call:   func(c *Console) error { return c.Assert(true, "x") },
		},
		{
			name:   "debug",
			expect: func(m *mocks.MockOperationsMockRecorder) { m.Debug("a", 1) },
			call:   func(c *Console) error { return c.Debug("a", 1) },
			stdout: stamp,
		},
		{
			name:   "log",
			expect: func(m *mocks.MockOperationsMockRecorder) { m.Log("a") },
			call:   func(c *Console) error { return c.Log("a") },
			stdout: stamp,
		},
		{
			name:   "trace",
			expect: func(m *mocks.MockOperationsMockRecorder) { m.Trace("here") },
			call:   func(c *Console) error { return c.Trace("here") },
			stdout: stamp,
		},
		{
			name:   "dir",
			expect: func(m *mocks.MockOperationsMockRecorder) { m.Dir(map[string]int{"a": 1}) },
			call:   func(c *Console) error { return c.Dir(map[string]int{"a": 1}) },
			stdout: stamp,
		},
		{
			name:   "dirxml",
			expect: func(m *mocks.MockOperationsMockRecorder) { m.DirXML("<a/>") },
			call:   func(c *Console) error { return c.DirXML("<a/>") },
			stdout: stamp,
		},
		{
			name:   "timeLog",
			expect: func(m *mocks.MockOperationsMockRecorder) { m.TimeLog("t", "extra") },
			call:   func(c *Console) error { return c.TimeLog("t", "extra") },
			stdout: stamp,
		},
		{
			name:   "info",
			expect: func(m *mocks.MockOperationsMockRecorder) { m.Info("i") },
			call:   func(c *Console) error { return c.Info("i") },
			stdout: stamp,
		},
		{
			name:   "count",
			expect: func(m *mocks.MockOperationsMockRecorder) { m.Count("hits") },
			call:   func(c *Console) error { return c.Count("hits") },
			stdout: stamp,
		},
		{
			name:   "timeEnd",
			expect: func(m *mocks.MockOperationsMockRecorder) { m.TimeEnd("t") },
			call:   func(c *Console) error { return c.TimeEnd("t") },
			stdout: stamp,
		},
		{
			name:   "warn",
			expect: func(m *mocks.MockOperationsMockRecorder) { m.Warn("w") },
			call:   func(c *Console) error { return c.Warn("w") },
			stdout: stamp,
		},
		{
			name:   "error",
			expect: func(m *mocks.MockOperationsMockRecorder) { m.Error("e") },
			call:   func(c *Console) error { return c.Error("e") },
			stderr: stamp,
		},
		{
			name:   "table",
			expect: func(m *mocks.MockOperationsMockRecorder) { m.Table([]int{1}, "a") },
			call:   func(c *Console) error { return c.Table([]int{1}, "a") },
			stdout: "15:04:05\n",
		},
		{
			name:   "group with label",
			expect: func(m *mocks.MockOperationsMockRecorder) { m.Group("g", 2) },
			call:   func(c *Console) error { return c.Group("g", 2) },
			stdout: stamp,
		},
		{
			name:   "group without label",
			expect: func(m *mocks.MockOperationsMockRecorder) { m.Group() },
			call:   func(c *Console) error { return c.Group() },
		},
		{
			name:   "groupCollapsed with label",
			expect: func(m *mocks.MockOperationsMockRecorder) { m.GroupCollapsed("g") },
			call:   func(c *Console) error { return c.GroupCollapsed("g") },
			stdout: stamp,
		},
		{
			name:   "groupCollapsed without label",
			expect: func(m *mocks.MockOperationsMockRecorder) { m.GroupCollapsed() },
			call:   func(c *Console) error { return c.GroupCollapsed() },
		},
		{
			name:   "groupEnd",
			expect: func(m *mocks.MockOperationsMockRecorder) { m.GroupEnd() },
			call:   func(c *Console) error { return c.GroupEnd() },
		},
		{
			name:   "clear",
			expect: func(m *mocks.MockOperationsMockRecorder) { m.Clear() },
			call:   func(c *Console) error { return c.Clear() },
		},
		{
			name:   "countReset",
			expect: func(m *mocks.MockOperationsMockRecorder) { m.CountReset("hits") },
			call:   func(c *Console) error { return c.CountReset("hits") },
		},
		{
			name:   "time",
			expect: func(m *mocks.MockOperationsMockRecorder) { m.Time("t") },
			call:   func(c *Console) error { return c.Time("t") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.expect(f.ops.EXPECT())

			require.NoError(t, tt.call(f.console))
			assert.Equal(t, tt.stdout, f.stdout.String())
			assert.Equal(t, tt.stderr, f.stderr.String())
		})
	}
}

func TestConsole_StampPrecedesDelegation(t *testing.T) {
	f := newFixture(t)

	f.ops.EXPECT().Error("boom").DoAndReturn(func(data ...any) error {
		assert.Equal(t, "15:04:05 ", f.stderr.String())
		return nil
	})

	require.NoError(t, f.console.Error("boom"))
}

func TestConsole_SingleQuote(t *testing.T) {
	f := newFixture(t, WithQuote("*"))
	f.ops.EXPECT().Log("payload")

	require.NoError(t, f.console.Log("payload"))
	assert.Equal(t, "*15:04:05* ", f.stdout.String())
}

func TestConsole_QuotePair(t *testing.T) {
	f := newFixture(t, WithQuote("[", "]"))
	f.ops.EXPECT().Info("payload")

	require.NoError(t, f.console.Info("payload"))
	assert.Equal(t, "[15:04:05] ", f.stdout.String())
}

func TestConsole_TableIgnoresSeparator(t *testing.T) {
	f := newFixture(t, WithQuote("[", "]"), WithSeparator(" - "))
	f.ops.EXPECT().Table(gomock.Any())

	require.NoError(t, f.console.Table(map[string]int{"a": 1}))
	assert.Equal(t, "[15:04:05]\n", f.stdout.String())
}

func TestConsole_LocaleQuoteSeparatorScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	ops := mocks.NewMockOperations(ctrl)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	c, err := New(
		WithLocale("en-US"),
		WithQuote("[", "]"),
		WithSeparator(" - "),
		WithConsole(ops),
		WithOutput(stdout, stderr),
		WithClock(&timetools.FreezedTime{CurrentTime: frozen}),
	)
	require.NoError(t, err)

	want, err := localtime.Format(frozen.In(time.Local), "en-US", true, nil)
	require.NoError(t, err)

	ops.EXPECT().Log("Hello")
	require.NoError(t, c.Log("Hello"))

	assert.Equal(t, "["+want+"] - ", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestConsole_FormatterErrorStopsDelegation(t *testing.T) {
	f := newFixture(t, WithFormatOptions(FormatOptions{OptTimeStyle: "tiny"}))

	err := f.console.Log("never delegated")
	assert.ErrorIs(t, err, localtime.ErrInvalidOption)
	assert.Empty(t, f.stdout.String())
}

func TestConsole_InvalidLocaleSurfacesOnCall(t *testing.T) {
	f := newFixture(t, WithLocale("not a locale"))

	assert.ErrorIs(t, f.console.Info("x"), localtime.ErrInvalidLocale)
}

func TestConsole_UnderlyingErrorPropagates(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("boom")
	f.ops.EXPECT().Warn("w").Return(boom)

	assert.ErrorIs(t, f.console.Warn("w"), boom)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestConsole_StampWriteErrorStopsDelegation(t *testing.T) {
	f := newFixture(t, WithOutput(failingWriter{}, &bytes.Buffer{}))

	assert.EqualError(t, f.console.Log("x"), "closed pipe")
}

func TestConsole_DefaultUnderlyingConsole(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	c, err := New(
		WithOutput(stdout, stderr),
		WithClock(&timetools.FreezedTime{CurrentTime: frozen}),
		WithLocale("en-US"),
		WithFormatOptions(utc24),
		WithQuote("[", "]"),
	)
	require.NoError(t, err)

	require.NoError(t, c.Log("Hello", "world"))
	require.NoError(t, c.Warn("careful"))
	require.NoError(t, c.Group())
	require.NoError(t, c.Count(""))
	require.NoError(t, c.GroupEnd())
	require.NoError(t, c.Assert(false, "broken"))

	assert.Equal(t, "[15:04:05] Hello world\n[15:04:05] [15:04:05]   default: 1\n", stdout.String())
	assert.Equal(t, "careful\n[15:04:05] Assertion failed: broken\n", stderr.String())
}
