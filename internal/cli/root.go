package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ar4ie13/tsconsole"
	"github.com/ar4ie13/tsconsole/internal/config"
	"github.com/ar4ie13/tsconsole/internal/logger"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// app carries state shared by the commands of one invocation
type app struct {
	cfg   *config.Config
	log   *logger.Logger
	runID string
}

// NewRootCmd builds the command tree. Input and output follow the
// command's In, Out and Err streams.
func NewRootCmd() *cobra.Command {
	a := &app{cfg: config.NewConfig()}

	root := &cobra.Command{
		Use:   "tsconsole",
		Short: "Prefix console output with the local time",
		Long: "tsconsole reads lines from stdin and writes each one through a console " +
			"operation, preceded by the current time formatted for a locale.",
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		RunE:              a.pipe,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	a.cfg.BindFlags(root.PersistentFlags())
	a.cfg.BindLevelFlag(root.Flags())

	root.AddCommand(newDemoCmd(a), newVersionCmd())

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.cfg.ApplyEnv(); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.runID = uuid.NewString()
	a.log = logger.NewFromConf(a.cfg.LogConf, cmd.ErrOrStderr())
	a.log.Logger = a.log.With().Str("run_id", a.runID).Str("command", cmd.Name()).Logger()
	a.log.Debug().Str("log_level", a.cfg.LogConf.Level.String()).Msg("starting")

	return nil
}

// console builds the timestamped console from the layered settings
func (a *app) console(cmd *cobra.Command) (*tsconsole.Console, error) {
	settings, err := a.cfg.Settings(cmd.Flags(), a.log.Logger)
	if err != nil {
		return nil, err
	}

	cfg, err := tsconsole.ParseConfig(settings)
	if err != nil {
		a.log.Error().Err(err).Msg("invalid console settings")
		return nil, err
	}

	c, err := tsconsole.New(
		tsconsole.WithConfig(cfg),
		tsconsole.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()),
	)
	if err != nil {
		return nil, err
	}

	locale, ok := cfg.Locale()
	if !ok {
		locale = "host default"
	}
	a.log.Info().Str("locale", locale).Msg("console ready")

	return c, nil
}

func (a *app) pipe(cmd *cobra.Command, _ []string) error {
	c, err := a.console(cmd)
	if err != nil {
		return err
	}

	emit, err := operation(c, a.cfg.Level)
	if err != nil {
		return err
	}

	lines := 0
	reader := bufio.NewReader(cmd.InOrStdin())
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("failed to read input: %w", readErr)
		}
		if line != "" {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if err = emit(line); err != nil {
				return fmt.Errorf("failed to write line %d: %w", lines+1, err)
			}
			lines++
		}
		if readErr != nil {
			break
		}
	}

	a.log.Debug().Int("lines", lines).Str("level", a.cfg.Level).Msg("input drained")

	return nil
}

// operation picks the console method for a --level value
func operation(c *tsconsole.Console, level string) (func(...any) error, error) {
	switch level {
	case "log":
		return c.Log, nil
	case "info":
		return c.Info, nil
	case "warn":
		return c.Warn, nil
	case "error":
		return c.Error, nil
	case "debug":
		return c.Debug, nil
	default:
		return nil, fmt.Errorf("%w: unknown level %q", tsconsole.ErrInvalidArgument, level)
	}
}
