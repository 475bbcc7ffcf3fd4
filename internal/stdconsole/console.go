// Package stdconsole is a debugging console over a pair of writers with
// group indentation, labelled counters and labelled timers.
package stdconsole

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/mailgun/timetools"
	"github.com/mattn/go-isatty"
)

const (
	defaultLabel = "default"
	groupIndent  = 2
	clearScreen  = "\x1b[1;1H\x1b[0J"
)

// Options configures a Console
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	// Clock is used to measure timers, mocked in tests
	Clock timetools.TimeProvider
}

// Console writes log, info and debug output to Stdout and warnings,
// errors, assertions and traces to Stderr. It is safe for concurrent use.
type Console struct {
	mu      sync.Mutex
	options Options
	indent  int
	counts  map[string]int
	timers  map[string]time.Time
	dumper  *spew.ConfigState
}

// New constructs a Console, unset options fall back to the process streams
// and the real clock
func New(options Options) *Console {
	return &Console{
		options: setDefaults(options),
		counts:  make(map[string]int),
		timers:  make(map[string]time.Time),
		dumper: &spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		},
	}
}

func setDefaults(o Options) Options {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Clock == nil {
		o.Clock = &timetools.RealTime{}
	}
	return o
}

// Log writes data to stdout separated by spaces
func (c *Console) Log(data ...any) error {
	return c.print(c.options.Stdout, render(data))
}

// Info is an alias of Log
func (c *Console) Info(data ...any) error {
	return c.Log(data...)
}

// Debug is an alias of Log
func (c *Console) Debug(data ...any) error {
	return c.Log(data...)
}

// DirXML is an alias of Log
func (c *Console) DirXML(data ...any) error {
	return c.Log(data...)
}

// Warn writes data to stderr separated by spaces
func (c *Console) Warn(data ...any) error {
	return c.print(c.options.Stderr, render(data))
}

// Error is an alias of Warn
func (c *Console) Error(data ...any) error {
	return c.Warn(data...)
}

// Assert writes an "Assertion failed" message to stderr when cond is false
func (c *Console) Assert(cond bool, data ...any) error {
	if cond {
		return nil
	}

	switch {
	case len(data) == 0:
		data = []any{"Assertion failed"}
	default:
		if s, ok := data[0].(string); ok {
			data = append([]any{"Assertion failed: " + s}, data[1:]...)
		} else {
			data = append([]any{"Assertion failed:"}, data...)
		}
	}

	return c.Warn(data...)
}

// Trace writes data followed by the calling goroutine's stack to stderr
func (c *Console) Trace(data ...any) error {
	msg := "Trace"
	if len(data) > 0 {
		msg += ": " + render(data)
	}
	stack := strings.TrimRight(string(debug.Stack()), "\n")

	return c.print(c.options.Stderr, msg+"\n"+stack)
}

// Dir writes a structural dump of obj to stdout
func (c *Console) Dir(obj any) error {
	return c.print(c.options.Stdout, strings.TrimRight(c.dumper.Sdump(obj), "\n"))
}

// Group logs the label if any and indents subsequent output
func (c *Console) Group(label ...any) error {
	if len(label) > 0 {
		if err := c.Log(label...); err != nil {
			return err
		}
	}

	c.mu.Lock()
	c.indent += groupIndent
	c.mu.Unlock()

	return nil
}

// GroupCollapsed is an alias of Group, a terminal cannot collapse output
func (c *Console) GroupCollapsed(label ...any) error {
	return c.Group(label...)
}

// GroupEnd undoes one level of Group indentation
func (c *Console) GroupEnd() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.indent -= groupIndent
	if c.indent < 0 {
		c.indent = 0
	}

	return nil
}

// Count increments and prints the counter for label
func (c *Console) Count(label string) error {
	label = labelOrDefault(label)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.counts[label]++
	return c.writeLocked(c.options.Stdout, fmt.Sprintf("%s: %d", label, c.counts[label]))
}

// CountReset sets the counter for label back to zero
func (c *Console) CountReset(label string) error {
	label = labelOrDefault(label)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.counts[label]; !ok {
		return c.writeLocked(c.options.Stderr, fmt.Sprintf("Count for '%s' does not exist", label))
	}
	c.counts[label] = 0

	return nil
}

// Time starts a timer under label
func (c *Console) Time(label string) error {
	label = labelOrDefault(label)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.timers[label]; ok {
		return c.writeLocked(c.options.Stderr, fmt.Sprintf("Label '%s' already exists for console.time()", label))
	}
	c.timers[label] = c.options.Clock.UtcNow()

	return nil
}

// TimeLog prints the time elapsed since Time(label) followed by data
func (c *Console) TimeLog(label string, data ...any) error {
	return c.elapsed("console.timeLog()", labelOrDefault(label), false, data)
}

// TimeEnd prints the time elapsed since Time(label) and stops the timer
func (c *Console) TimeEnd(label string) error {
	return c.elapsed("console.timeEnd()", labelOrDefault(label), true, nil)
}

func (c *Console) elapsed(op, label string, stop bool, data []any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	start, ok := c.timers[label]
	if !ok {
		return c.writeLocked(c.options.Stderr, fmt.Sprintf("No such label '%s' for %s", label, op))
	}
	if stop {
		delete(c.timers, label)
	}

	msg := fmt.Sprintf("%s: %s", label, formatDuration(c.options.Clock.UtcNow().Sub(start)))
	if len(data) > 0 {
		msg += " " + render(data)
	}

	return c.writeLocked(c.options.Stdout, msg)
}

// Clear wipes the terminal when stdout is one, otherwise it does nothing.
// Stdout must expose Fd to be recognised as a terminal: writers wrapping
// a file, such as go-colorable's Windows writer, count as non-terminals.
func (c *Console) Clear() error {
	f, ok := c.options.Stdout.(interface{ Fd() uintptr })
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := io.WriteString(c.options.Stdout, clearScreen)
	return err
}

func (c *Console) print(w io.Writer, msg string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.writeLocked(w, msg)
}

// writeLocked indents every line of msg by the current group depth
func (c *Console) writeLocked(w io.Writer, msg string) error {
	if c.indent > 0 {
		pad := strings.Repeat(" ", c.indent)
		msg = pad + strings.ReplaceAll(msg, "\n", "\n"+pad)
	}

	_, err := io.WriteString(w, msg+"\n")
	return err
}

func render(data []any) string {
	parts := make([]string, len(data))
	for i, d := range data {
		parts[i] = fmt.Sprint(d)
	}
	return strings.Join(parts, " ")
}

func labelOrDefault(label string) string {
	if label == "" {
		return defaultLabel
	}
	return label
}

func formatDuration(d time.Duration) string {
	if d >= time.Second {
		return fmt.Sprintf("%.3fs", d.Seconds())
	}
	return fmt.Sprintf("%.3fms", float64(d)/float64(time.Millisecond))
}
