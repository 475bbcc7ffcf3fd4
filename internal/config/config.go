package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/ar4ie13/tsconsole/internal/apperrors"
	logconf "github.com/ar4ie13/tsconsole/internal/logger/config"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

// Environment variables read by the CLI
const (
	EnvConfig    = "TSCONSOLE_CONFIG"
	EnvLocale    = "TSCONSOLE_LOCALE"
	EnvOptions   = "TSCONSOLE_OPTIONS"
	EnvQuote     = "TSCONSOLE_QUOTE"
	EnvSeparator = "TSCONSOLE_SEPARATOR"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFile   = "LOG_FILE"
)

// Flag names
const (
	FlagConfig    = "config"
	FlagLocale    = "locale"
	FlagOptions   = "options"
	FlagQuote     = "quote"
	FlagSeparator = "separator"
	FlagLogLevel  = "log-level"
	FlagLogFile   = "log-file"
	FlagLevel     = "level"
)

// Keys of the settings map, they match tsconsole.ParseConfig
const (
	keyLocales   = "locales"
	keyOptions   = "options"
	keyQuote     = "quote"
	keySeparator = "separator"
)

// Config is a main configuration object of the CLI
type Config struct {
	LogConf   logconf.LogConf
	File      string
	Locale    string
	Options   string `flag:"options" validate:"omitempty,json"`
	Quote     []string
	Separator string
	// Level names the console operation used for piped lines
	Level string `flag:"level" validate:"oneof=log info warn error debug"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("flag"); name != "" {
			return "--" + name
		}
		return f.Name
	})
	return v
}

// NewConfig creates Config with defaults applied
func NewConfig() *Config {
	c := &Config{Level: "log"}
	if err := c.LogConf.Level.Set(zerolog.WarnLevel.String()); err != nil {
		panic(err)
	}
	return c
}

// BindFlags registers configuration flags on fs
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.File, FlagConfig, "c", "", "YAML or JSON file with locales, options, quote and separator")
	fs.StringVarP(&c.Locale, FlagLocale, "L", "", "locale used to format the time, e.g. en-US")
	fs.StringVarP(&c.Options, FlagOptions, "o", "", `time format options as a JSON object, e.g. {"hourCycle":"h23"}`)
	fs.StringSliceVarP(&c.Quote, FlagQuote, "q", nil, "one quote for both sides or an opening and closing quote")
	fs.StringVarP(&c.Separator, FlagSeparator, "s", "", "text between the timestamp and the output")
	fs.Var(&c.LogConf.Level, FlagLogLevel, "diagnostics log level (debug, info, warn, error)")
	fs.StringVar(&c.LogConf.File, FlagLogFile, "", "write diagnostics to a rotated file instead of stderr")
}

// BindLevelFlag registers --level on fs
func (c *Config) BindLevelFlag(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Level, FlagLevel, "l", c.Level, "operation used for each line (log, info, warn, error, debug)")
}

// Validate checks flag values that have a fixed shape. Console settings
// are validated by tsconsole.ParseConfig.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fe := verrs[0]
	var reason string
	switch fe.Tag() {
	case "oneof":
		reason = "must be one of " + fe.Param()
	case "json":
		reason = "must be valid JSON"
	case "gte":
		reason = "must be at least " + fe.Param()
	default:
		reason = "fails " + fe.Tag()
	}

	return apperrors.Invalid(fmt.Errorf("%s %q %s", fe.Field(), fmt.Sprint(fe.Value()), reason))
}

// ApplyEnv lets environment variables override logging flags
func (c *Config) ApplyEnv() error {
	if level := os.Getenv(EnvLogLevel); level != "" {
		if err := c.LogConf.Level.Set(level); err != nil {
			return fmt.Errorf("failed to set log level from %s: %w", EnvLogLevel, err)
		}
	}
	if file := os.Getenv(EnvLogFile); file != "" {
		c.LogConf.File = file
	}
	return nil
}

// Settings layers the config file, flags set on fs and the environment,
// later sources winning, into a raw settings map. Values are decoded but
// not validated.
func (c *Config) Settings(fs *pflag.FlagSet, zlog zerolog.Logger) (map[string]any, error) {
	settings := make(map[string]any)

	path := c.File
	if env := os.Getenv(EnvConfig); path == "" && env != "" {
		path = env
	}
	if path != "" {
		fromFile, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		for k, v := range fromFile {
			settings[k] = v
		}
		zlog.Debug().Str("path", path).Int("keys", len(fromFile)).Msg("loaded config file")
	}

	if fs.Changed(FlagLocale) {
		settings[keyLocales] = c.Locale
	}
	if fs.Changed(FlagOptions) {
		opts, err := decodeOptions(c.Options)
		if err != nil {
			return nil, fmt.Errorf("cannot parse --%s: %w", FlagOptions, err)
		}
		settings[keyOptions] = opts
	}
	if fs.Changed(FlagQuote) {
		settings[keyQuote] = c.Quote
	}
	if fs.Changed(FlagSeparator) {
		settings[keySeparator] = c.Separator
	}

	if locale := os.Getenv(EnvLocale); locale != "" {
		settings[keyLocales] = locale
	}
	if raw := os.Getenv(EnvOptions); raw != "" {
		opts, err := decodeOptions(raw)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %s: %w", EnvOptions, err)
		}
		settings[keyOptions] = opts
	}
	if quote := os.Getenv(EnvQuote); quote != "" {
		settings[keyQuote] = strings.Split(quote, ",")
	}
	if sep, ok := os.LookupEnv(EnvSeparator); ok {
		settings[keySeparator] = sep
	}

	zlog.Debug().Interface("settings", settings).Msg("resolved console settings")

	return settings, nil
}

// LoadFile decodes a YAML (.yaml, .yml) or JSON (.json) settings file
func LoadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	settings := make(map[string]any)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &settings)
	case ".json":
		err = json.Unmarshal(data, &settings)
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	return settings, nil
}

// decodeOptions decodes JSON text without checking its shape, so that a
// list or a scalar is reported by the console validator
func decodeOptions(raw string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, err
	}
	return v, nil
}
