package localtime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/locales"
)

// Recognised option keys
const (
	OptTimeZone               = "timeZone"
	OptTimeStyle              = "timeStyle"
	OptHour                   = "hour"
	OptMinute                 = "minute"
	OptSecond                 = "second"
	OptHour12                 = "hour12"
	OptHourCycle              = "hourCycle"
	OptFractionalSecondDigits = "fractionalSecondDigits"
)

type style int

const (
	styleShort style = iota
	styleMedium
	styleLong
	styleFull
)

var styles = map[string]style{
	"short":  styleShort,
	"medium": styleMedium,
	"long":   styleLong,
	"full":   styleFull,
}

func (s style) render(tr locales.Translator, t time.Time) string {
	switch s {
	case styleShort:
		return tr.FmtTimeShort(t)
	case styleLong:
		return tr.FmtTimeLong(t)
	case styleFull:
		return tr.FmtTimeFull(t)
	default:
		return tr.FmtTimeMedium(t)
	}
}

type width int

const (
	absent width = iota
	numeric
	twoDigit
)

var widths = map[string]width{
	"numeric": numeric,
	"2-digit": twoDigit,
}

type cycle int

const (
	cycleLocale cycle = iota
	cycleH11
	cycleH12
	cycleH23
	cycleH24
)

var cycles = map[string]cycle{
	"h11": cycleH11,
	"h12": cycleH12,
	"h23": cycleH23,
	"h24": cycleH24,
}

type settings struct {
	loc      *time.Location
	style    style
	styled   bool
	hour     width
	minute   width
	second   width
	cycle    cycle
	fraction int
}

func parseSettings(opts map[string]any) (settings, error) {
	st := settings{style: styleMedium}

	if name, ok, err := stringOption(opts, OptTimeZone); err != nil {
		return st, err
	} else if ok {
		if name == "" {
			return st, fmt.Errorf("%w: invalid time zone %q", ErrInvalidOption, name)
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			return st, fmt.Errorf("%w: invalid time zone %q", ErrInvalidOption, name)
		}
		st.loc = loc
	}

	if v, ok, err := stringOption(opts, OptTimeStyle); err != nil {
		return st, err
	} else if ok {
		s, known := styles[v]
		if !known {
			return st, outOfRange(OptTimeStyle, v)
		}
		st.style, st.styled = s, true
	}

	for key, dst := range map[string]*width{OptHour: &st.hour, OptMinute: &st.minute, OptSecond: &st.second} {
		v, ok, err := stringOption(opts, key)
		if err != nil {
			return st, err
		}
		if !ok {
			continue
		}
		w, known := widths[v]
		if !known {
			return st, outOfRange(key, v)
		}
		*dst = w
	}

	if v, ok, err := stringOption(opts, OptHourCycle); err != nil {
		return st, err
	} else if ok {
		c, known := cycles[v]
		if !known {
			return st, outOfRange(OptHourCycle, v)
		}
		st.cycle = c
	}

	if raw, ok := opts[OptHour12]; ok && raw != nil {
		h12, isBool := raw.(bool)
		if !isBool {
			return st, outOfRange(OptHour12, raw)
		}
		st.cycle = cycleH23
		if h12 {
			st.cycle = cycleH12
		}
	}

	if raw, ok := opts[OptFractionalSecondDigits]; ok && raw != nil {
		n, isInt := intValue(raw)
		if !isInt || n < 1 || n > 3 {
			return st, outOfRange(OptFractionalSecondDigits, raw)
		}
		st.fraction = n
	}

	if st.styled && (st.hour != absent || st.minute != absent || st.second != absent || st.fraction > 0) {
		return st, fmt.Errorf("%w: %s cannot be combined with individual time fields", ErrInvalidOption, OptTimeStyle)
	}

	return st, nil
}

func (st settings) composed() bool {
	return st.hour != absent || st.minute != absent || st.second != absent ||
		st.cycle != cycleLocale || st.fraction > 0
}

// compose builds the time from individual fields when the CLDR patterns
// cannot express the requested shape
func (st settings) compose(tr locales.Translator, t time.Time) string {
	hour, minute, second := st.hour, st.minute, st.second
	if hour == absent && minute == absent && second == absent {
		hour, minute = numeric, twoDigit
		if st.style != styleShort {
			second = twoDigit
		}
	}
	if st.fraction > 0 && second == absent {
		second = twoDigit
	}

	cyc := st.cycle
	if cyc == cycleLocale {
		cyc = localeCycle(tr)
	}
	pat := clockPatternOf(tr)

	var b strings.Builder
	writeField := func(v int, w width) {
		if b.Len() > 0 {
			b.WriteString(pat.sep)
			w = twoDigit
		}
		if w == twoDigit && v < 10 {
			b.WriteByte('0')
		}
		b.WriteString(strconv.Itoa(v))
	}

	if hour != absent {
		writeField(clockHour(t.Hour(), cyc), hour)
	}
	if minute != absent {
		writeField(t.Minute(), minute)
	}
	if second != absent {
		writeField(t.Second(), second)
	}
	if st.fraction > 0 {
		b.WriteByte('.')
		b.WriteString(fmt.Sprintf("%09d", t.Nanosecond())[:st.fraction])
	}

	out := b.String()
	if hour != absent && (cyc == cycleH11 || cyc == cycleH12) {
		period := pat.am
		if t.Hour() >= 12 {
			period = pat.pm
		}
		out = period.prefix + out + period.suffix
	}

	if st.styled && st.style >= styleLong {
		out += " " + t.Format("MST")
	}

	return out
}

// affix is the day period text written around a 12-hour clock
type affix struct {
	prefix string
	suffix string
}

// clockPattern describes how a locale lays out a 12-hour clock
type clockPattern struct {
	sep string
	am  affix
	pm  affix
}

// fallbackPattern is used when the locale has no 12-hour pattern to learn from
var fallbackPattern = clockPattern{
	sep: ":",
	am:  affix{suffix: " AM"},
	pm:  affix{suffix: " PM"},
}

// clockPatternOf learns the field separator and the day period text and
// position from the short time pattern of tr
func clockPatternOf(tr locales.Translator) clockPattern {
	amProbe := tr.FmtTimeShort(time.Date(2000, time.January, 1, 1, 0, 0, 0, time.UTC))
	pmProbe := tr.FmtTimeShort(time.Date(2000, time.January, 1, 13, 0, 0, 0, time.UTC))

	pat := fallbackPattern
	if sep, ok := fieldSeparator(pmProbe); ok {
		pat.sep = sep
	}

	am, amOK := periodAffix(amProbe)
	pm, pmOK := periodAffix(pmProbe)
	if amOK && pmOK && am != pm {
		pat.am, pat.pm = am, pm
	}

	return pat
}

// clockSpan returns the byte range running from the first to the last digit of s
func clockSpan(s string) (int, int, bool) {
	first := strings.IndexFunc(s, unicode.IsDigit)
	if first < 0 {
		return 0, 0, false
	}
	last := strings.LastIndexFunc(s, unicode.IsDigit)
	_, size := utf8.DecodeRuneInString(s[last:])
	return first, last + size, true
}

func periodAffix(probe string) (affix, bool) {
	start, end, ok := clockSpan(probe)
	if !ok {
		return affix{}, false
	}
	a := affix{prefix: probe[:start], suffix: probe[end:]}
	if strings.TrimSpace(a.prefix+a.suffix) == "" {
		return affix{}, false
	}
	return a, true
}

func fieldSeparator(probe string) (string, bool) {
	start, end, ok := clockSpan(probe)
	if !ok {
		return "", false
	}
	clock := probe[start:end]
	i := strings.IndexFunc(clock, func(r rune) bool { return !unicode.IsDigit(r) })
	if i < 0 {
		return "", false
	}
	j := strings.IndexFunc(clock[i:], unicode.IsDigit)
	if j <= 0 {
		return "", false
	}
	return clock[i : i+j], true
}

// localeCycle probes the short pattern of tr for a 24-hour clock
func localeCycle(tr locales.Translator) cycle {
	probe := tr.FmtTimeShort(time.Date(2000, time.January, 1, 13, 0, 0, 0, time.UTC))
	if strings.Contains(probe, "13") {
		return cycleH23
	}
	return cycleH12
}

func clockHour(h int, c cycle) int {
	switch c {
	case cycleH11:
		return h % 12
	case cycleH12:
		if h%12 == 0 {
			return 12
		}
		return h % 12
	case cycleH24:
		if h == 0 {
			return 24
		}
		return h
	default:
		return h
	}
}

func stringOption(opts map[string]any, key string) (string, bool, error) {
	raw, ok := opts[key]
	if !ok || raw == nil {
		return "", false, nil
	}
	s, isString := raw.(string)
	if !isString {
		return "", false, outOfRange(key, raw)
	}
	return s, true, nil
}

// intValue accepts the numeric types produced by Go literals and by JSON and YAML decoders
func intValue(raw any) (int, bool) {
	switch n := raw.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func outOfRange(key string, v any) error {
	return fmt.Errorf("%w: value %v out of range for option %s", ErrInvalidOption, v, key)
}
