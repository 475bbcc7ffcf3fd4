package tsconsole

import (
	"fmt"
	"io"

	"github.com/ar4ie13/tsconsole/internal/apperrors"
)

// severity selects the stream a timestamp is written to
type severity int

const (
	sevLog severity = iota
	sevInfo
	sevWarn
	sevError
)

func (s severity) String() string {
	switch s {
	case sevLog:
		return "log"
	case sevInfo:
		return "info"
	case sevWarn:
		return "warn"
	case sevError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// route returns the stream for sev
func (c *Console) route(sev severity) (io.Writer, error) {
	switch sev {
	case sevLog, sevInfo, sevWarn:
		return c.stdout, nil
	case sevError:
		return c.stderr, nil
	default:
		return nil, apperrors.Internal(fmt.Errorf("%w %s", apperrors.ErrUndefinedSeverity, sev))
	}
}

// stamp writes a timestamp fragment ending with the configured separator
func (c *Console) stamp(sev severity) error {
	return c.writeStamp(sev, c.cfg.separator)
}

// stampLine writes a timestamp fragment ending with a newline
func (c *Console) stampLine(sev severity) error {
	return c.writeStamp(sev, "\n")
}

func (c *Console) writeStamp(sev severity, sep string) error {
	w, err := c.route(sev)
	if err != nil {
		return err
	}

	fragment, err := c.fragment(sep)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, fragment)
	return err
}
