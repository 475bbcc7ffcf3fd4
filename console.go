// Package tsconsole decorates a debugging console so that every call is
// preceded by the current local time, formatted for a locale.
//
//	c, err := tsconsole.New(
//		tsconsole.WithLocale("en-US"),
//		tsconsole.WithQuote("[", "]"),
//		tsconsole.WithSeparator(" - "),
//	)
//	if err != nil {
//		return err
//	}
//	c.Log("Hello") // [3:04:05 PM] - Hello
//
// Configuration is validated once by New and never changes afterwards.
// Log, info and warn timestamps go to stdout, error timestamps to stderr.
// A Console holds no mutable state and takes no locks: concurrent calls may
// interleave a timestamp with another call's payload.
package tsconsole

import (
	"io"
	"os"

	"github.com/ar4ie13/tsconsole/internal/apperrors"
	"github.com/ar4ie13/tsconsole/internal/stdconsole"
	"github.com/mailgun/timetools"
)

var (
	// ErrInvalidArgument is returned when a Console is built from invalid settings
	ErrInvalidArgument = apperrors.ErrInvalidArgument
	// ErrInternal reports a defect in this package
	ErrInternal = apperrors.ErrInternal
)

// Console writes a timestamp before delegating each call to the
// underlying Operations with its arguments untouched
type Console struct {
	cfg     Config
	console Operations
	stdout  io.Writer
	stderr  io.Writer
	clock   timetools.TimeProvider
}

// New validates opts and builds a Console. On error no Console is returned
// and nothing has been written.
func New(opts ...Option) (*Console, error) {
	b := &builder{base: defaultConfig()}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	cfg, err := validate(b.base, b.in)
	if err != nil {
		return nil, err
	}

	if b.stdout == nil {
		b.stdout, b.stderr = os.Stdout, os.Stderr
	}
	if b.clock == nil {
		b.clock = &timetools.RealTime{}
	}
	if b.console == nil {
		b.console = stdconsole.New(stdconsole.Options{
			Stdout: b.stdout,
			Stderr: b.stderr,
			Clock:  b.clock,
		})
	}

	return &Console{
		cfg:     cfg,
		console: b.console,
		stdout:  b.stdout,
		stderr:  b.stderr,
		clock:   b.clock,
	}, nil
}

// Config returns the configuration the Console was built with
func (c *Console) Config() Config {
	return c.cfg
}

// Assert stamps stderr when cond is false, then delegates
func (c *Console) Assert(cond bool, data ...any) error {
	if !cond {
		if err := c.stamp(sevError); err != nil {
			return err
		}
	}
	return c.console.Assert(cond, data...)
}

// Clear delegates without a timestamp
func (c *Console) Clear() error {
	return c.console.Clear()
}

// Count stamps stdout, then delegates
func (c *Console) Count(label string) error {
	if err := c.stamp(sevInfo); err != nil {
		return err
	}
	return c.console.Count(label)
}

// CountReset delegates without a timestamp
func (c *Console) CountReset(label string) error {
	return c.console.CountReset(label)
}

// Debug stamps stdout, then delegates
func (c *Console) Debug(data ...any) error {
	if err := c.stamp(sevLog); err != nil {
		return err
	}
	return c.console.Debug(data...)
}

// Dir stamps stdout, then delegates
func (c *Console) Dir(obj any) error {
	if err := c.stamp(sevLog); err != nil {
		return err
	}
	return c.console.Dir(obj)
}

// DirXML stamps stdout, then delegates
func (c *Console) DirXML(data ...any) error {
	if err := c.stamp(sevLog); err != nil {
		return err
	}
	return c.console.DirXML(data...)
}

// Error stamps stderr, then delegates
func (c *Console) Error(data ...any) error {
	if err := c.stamp(sevError); err != nil {
		return err
	}
	return c.console.Error(data...)
}

// Group stamps stdout when a label is given, then delegates
func (c *Console) Group(label ...any) error {
	if len(label) > 0 {
		if err := c.stamp(sevLog); err != nil {
			return err
		}
	}
	return c.console.Group(label...)
}

// GroupCollapsed stamps stdout when a label is given, then delegates
func (c *Console) GroupCollapsed(label ...any) error {
	if len(label) > 0 {
		if err := c.stamp(sevLog); err != nil {
			return err
		}
	}
	return c.console.GroupCollapsed(label...)
}

// GroupEnd delegates without a timestamp
func (c *Console) GroupEnd() error {
	return c.console.GroupEnd()
}

// Info stamps stdout, then delegates
func (c *Console) Info(data ...any) error {
	if err := c.stamp(sevInfo); err != nil {
		return err
	}
	return c.console.Info(data...)
}

// Log stamps stdout, then delegates
func (c *Console) Log(data ...any) error {
	if err := c.stamp(sevLog); err != nil {
		return err
	}
	return c.console.Log(data...)
}

// Table stamps stdout on a line of its own so the table starts at the
// left margin, then delegates
func (c *Console) Table(data any, columns ...string) error {
	if err := c.stampLine(sevLog); err != nil {
		return err
	}
	return c.console.Table(data, columns...)
}

// Time delegates without a timestamp
func (c *Console) Time(label string) error {
	return c.console.Time(label)
}

// TimeEnd stamps stdout, then delegates
func (c *Console) TimeEnd(label string) error {
	if err := c.stamp(sevInfo); err != nil {
		return err
	}
	return c.console.TimeEnd(label)
}

// TimeLog stamps stdout, then delegates
func (c *Console) TimeLog(label string, data ...any) error {
	if err := c.stamp(sevLog); err != nil {
		return err
	}
	return c.console.TimeLog(label, data...)
}

// Trace stamps stdout, then delegates
func (c *Console) Trace(data ...any) error {
	if err := c.stamp(sevLog); err != nil {
		return err
	}
	return c.console.Trace(data...)
}

// Warn stamps stdout, then delegates
func (c *Console) Warn(data ...any) error {
	if err := c.stamp(sevWarn); err != nil {
		return err
	}
	return c.console.Warn(data...)
}
