// Package localtime renders the wall-clock part of an instant the way a
// locale expects it, driven by an open key/value options bag.
//
// Locale identifiers are BCP 47 tags ("en-US", "de", "pt-BR"); POSIX forms
// such as "en_US" are accepted as well. Tags are resolved against the CLDR
// data bundled with github.com/go-playground/locales and fall back to
// English when no translator matches.
package localtime

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/ko"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pt_BR"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"golang.org/x/text/language"
)

// DefaultLocale is used when the host does not advertise a usable locale
const DefaultLocale = "en-US"

var (
	ErrInvalidLocale = errors.New("incorrect locale information provided")
	ErrInvalidOption = errors.New("invalid time format option")
)

var uni = ut.New(en.New(),
	en.New(), en_US.New(), en_GB.New(),
	de.New(), es.New(), fr.New(), it.New(), nl.New(), pt_BR.New(), ru.New(),
	ja.New(), ko.New(), zh.New(),
)

// Format renders t for locale using opts. When hasLocale is false the host
// locale is used. Keys of opts that are not recognised are ignored.
func Format(t time.Time, locale string, hasLocale bool, opts map[string]any) (string, error) {
	if !hasLocale {
		locale = HostLocale()
	}

	tr, err := Translator(locale)
	if err != nil {
		return "", err
	}

	st, err := parseSettings(opts)
	if err != nil {
		return "", err
	}

	if st.loc != nil {
		t = t.In(st.loc)
	}

	if !st.composed() {
		return st.style.render(tr, t), nil
	}

	return st.compose(tr, t), nil
}

// Translator resolves a locale tag to the closest bundled translator
func Translator(locale string) (locales.Translator, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocale, locale)
	}

	base, _ := tag.Base()
	candidates := make([]string, 0, 2)
	if region, conf := tag.Region(); conf == language.Exact {
		candidates = append(candidates, base.String()+"_"+region.String())
	}
	candidates = append(candidates, base.String())

	// FindTranslator hands back the fallback when nothing matches
	tr, _ := uni.FindTranslator(candidates...)

	return tr, nil
}

// HostLocale reads the locale advertised by the process environment
func HostLocale() string {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		if v == "" || v == "C" || v == "POSIX" {
			return DefaultLocale
		}
		if _, err := language.Parse(v); err != nil {
			return DefaultLocale
		}
		return v
	}

	return DefaultLocale
}
