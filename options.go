package tsconsole

import (
	"errors"
	"io"

	"github.com/ar4ie13/tsconsole/internal/apperrors"
	"github.com/mailgun/timetools"
)

// Option configures a Console under construction
type Option func(*builder) error

type builder struct {
	base    Config
	in      input
	console Operations
	stdout  io.Writer
	stderr  io.Writer
	clock   timetools.TimeProvider
}

// WithConfig starts from a Config returned by ParseConfig or Console.Config.
// A zero Config means the defaults. Formatting options passed after it
// take precedence.
func WithConfig(cfg Config) Option {
	return func(b *builder) error {
		if !cfg.valid {
			cfg = defaultConfig()
		}
		b.base = cfg
		b.in = input{}
		return nil
	}
}

// WithLocale sets the locale tag used to format the time, "en-US" for instance
func WithLocale(locale string) Option {
	return func(b *builder) error {
		b.in.locale = locale
		return nil
	}
}

// WithFormatOptions sets the options bag passed to the time formatter
func WithFormatOptions(opts FormatOptions) Option {
	return func(b *builder) error {
		b.in.format = opts
		return nil
	}
}

// WithQuote sets the text around the time. One value is used on both
// sides, two values are the opening and closing quote.
func WithQuote(quote ...string) Option {
	return func(b *builder) error {
		b.in.quote = quote
		return nil
	}
}

// WithSeparator sets the text between the closing quote and the payload
func WithSeparator(sep string) Option {
	return func(b *builder) error {
		b.in.separator = sep
		return nil
	}
}

// WithConsole sets the console the calls are delegated to
func WithConsole(console Operations) Option {
	return func(b *builder) error {
		if console == nil {
			return apperrors.Invalid(errors.New("console must not be nil"))
		}
		b.console = console
		return nil
	}
}

// WithOutput sets the streams timestamps are written to. The default
// console writes to the same streams.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(b *builder) error {
		if stdout == nil || stderr == nil {
			return apperrors.Invalid(errors.New("output streams must not be nil"))
		}
		b.stdout, b.stderr = stdout, stderr
		return nil
	}
}

// WithClock sets the time source, mocked in tests
func WithClock(clock timetools.TimeProvider) Option {
	return func(b *builder) error {
		if clock == nil {
			return apperrors.Invalid(errors.New("clock must not be nil"))
		}
		b.clock = clock
		return nil
	}
}
