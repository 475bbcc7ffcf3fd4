package tsconsole

import (
	"time"

	"github.com/ar4ie13/tsconsole/internal/localtime"
)

// fragment renders quote, local wall-clock time, quote and sep
func (c *Console) fragment(sep string) (string, error) {
	now := c.clock.UtcNow().In(time.Local)

	formatted, err := localtime.Format(now, c.cfg.locale, c.cfg.hasLocale, c.cfg.format)
	if err != nil {
		return "", err
	}

	return c.cfg.openQuote + formatted + c.cfg.closeQuote + sep, nil
}
