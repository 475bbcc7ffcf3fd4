package tsconsole

import (
	"maps"

	"github.com/ar4ie13/tsconsole/internal/apperrors"
	"github.com/ar4ie13/tsconsole/internal/localtime"
)

// DefaultSeparator is written between the closing quote and the payload
const DefaultSeparator = " "

// Keys understood by ParseConfig
const (
	KeyLocales   = "locales"
	KeyOptions   = "options"
	KeyQuote     = "quote"
	KeySeparator = "separator"
)

// Option keys recognised by the time formatter. Other keys are accepted and ignored.
const (
	OptTimeZone               = localtime.OptTimeZone
	OptTimeStyle              = localtime.OptTimeStyle
	OptHour                   = localtime.OptHour
	OptMinute                 = localtime.OptMinute
	OptSecond                 = localtime.OptSecond
	OptHour12                 = localtime.OptHour12
	OptHourCycle              = localtime.OptHourCycle
	OptFractionalSecondDigits = localtime.OptFractionalSecondDigits
)

// FormatOptions is the open options bag handed to the time formatter
type FormatOptions map[string]any

// Config is the validated, immutable timestamp configuration. The zero
// value behaves like the defaults: no locale, no options, no quotes and
// DefaultSeparator.
type Config struct {
	// valid is set on every Config built by this package
	valid      bool
	locale     string
	hasLocale  bool
	format     FormatOptions
	openQuote  string
	closeQuote string
	separator  string
}

// Locale returns the configured locale and whether one was set
func (c Config) Locale() (string, bool) {
	return c.locale, c.hasLocale
}

// FormatOptions returns a copy of the configured options, nil when unset
func (c Config) FormatOptions() FormatOptions {
	return maps.Clone(c.format)
}

// Quotes returns the opening and closing quote
func (c Config) Quotes() (string, string) {
	return c.openQuote, c.closeQuote
}

// Separator returns the text written after the closing quote
func (c Config) Separator() string {
	if !c.valid {
		return DefaultSeparator
	}
	return c.separator
}

// input holds raw, not yet validated values, nil meaning not provided
type input struct {
	locale    any
	format    any
	quote     any
	separator any
}

// ParseConfig validates loosely typed settings such as those decoded from
// a YAML or JSON document. Unknown keys are ignored.
func ParseConfig(raw map[string]any) (Config, error) {
	return validate(defaultConfig(), input{
		locale:    raw[KeyLocales],
		format:    raw[KeyOptions],
		quote:     raw[KeyQuote],
		separator: raw[KeySeparator],
	})
}

func defaultConfig() Config {
	return Config{valid: true, separator: DefaultSeparator}
}

// validate applies in on top of base. Nothing is applied unless every value is valid.
func validate(base Config, in input) (Config, error) {
	cfg := base

	if in.locale != nil {
		locale, ok := in.locale.(string)
		if !ok {
			return Config{}, apperrors.Invalid(apperrors.ErrLocalesNotString)
		}
		cfg.locale, cfg.hasLocale = locale, true
	}

	if in.format != nil {
		format, ok := asObject(in.format)
		if !ok {
			return Config{}, apperrors.Invalid(apperrors.ErrOptionsNotObject)
		}
		cfg.format = format
	}

	if in.quote != nil {
		open, closing, err := quotePair(in.quote)
		if err != nil {
			return Config{}, err
		}
		cfg.openQuote, cfg.closeQuote = open, closing
	}

	if in.separator != nil {
		sep, ok := in.separator.(string)
		if !ok {
			return Config{}, apperrors.Invalid(apperrors.ErrSeparatorNotString)
		}
		cfg.separator = sep
	}

	return cfg, nil
}

// asObject accepts key/value shapes only, keys and values are not inspected
func asObject(v any) (FormatOptions, bool) {
	switch o := v.(type) {
	case FormatOptions:
		return maps.Clone(o), true
	case map[string]any:
		return maps.Clone(FormatOptions(o)), true
	case map[string]string:
		out := make(FormatOptions, len(o))
		for k, s := range o {
			out[k] = s
		}
		return out, true
	default:
		return nil, false
	}
}

func quotePair(v any) (string, string, error) {
	var elems []any
	switch q := v.(type) {
	case []string:
		for _, s := range q {
			elems = append(elems, s)
		}
	case []any:
		elems = q
	default:
		return "", "", apperrors.Invalid(apperrors.ErrQuoteLength)
	}

	if len(elems) != 1 && len(elems) != 2 {
		return "", "", apperrors.Invalid(apperrors.ErrQuoteLength)
	}

	quotes := make([]string, len(elems))
	for i, e := range elems {
		s, ok := e.(string)
		if !ok {
			return "", "", apperrors.Invalid(apperrors.ErrQuoteNotString)
		}
		quotes[i] = s
	}

	if len(quotes) == 1 {
		return quotes[0], quotes[0], nil
	}
	return quotes[0], quotes[1], nil
}
