package cli

import (
	"fmt"

	"github.com/ar4ie13/tsconsole"
	"github.com/spf13/cobra"
)

type route struct {
	Operation string
	Stream    string
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Call every console operation once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.console(cmd)
			if err != nil {
				return err
			}
			return a.demo(c)
		},
	}
}

func (a *app) demo(c *tsconsole.Console) error {
	steps := []struct {
		name string
		call func() error
	}{
		{"clear", c.Clear},
		{"log", func() error { return c.Log("Hello", "world") }},
		{"info", func() error { return c.Info("tsconsole", Version) }},
		{"debug", func() error { return c.Debug("run", a.runID) }},
		{"warn", func() error { return c.Warn("this is a warning") }},
		{"error", func() error { return c.Error("this is an error") }},
		{"assert", func() error { return c.Assert(a.runID == "", "run id is set") }},
		{"count", func() error { return c.Count("demo") }},
		{"count", func() error { return c.Count("demo") }},
		{"countReset", func() error { return c.CountReset("demo") }},
		{"dir", func() error { return c.Dir(c.Config().FormatOptions()) }},
		{"dirxml", func() error { return c.DirXML("<console/>") }},
		{"group", func() error { return c.Group("group") }},
		{"log", func() error { return c.Log("inside the group") }},
		{"groupCollapsed", func() error { return c.GroupCollapsed() }},
		{"info", func() error { return c.Info("nested without a label") }},
		{"groupEnd", c.GroupEnd},
		{"groupEnd", c.GroupEnd},
		{"table", func() error {
			return c.Table([]route{
				{"log", "stdout"},
				{"info", "stdout"},
				{"warn", "stdout"},
				{"error", "stderr"},
			})
		}},
		{"time", func() error { return c.Time("demo") }},
		{"timeLog", func() error { return c.TimeLog("demo", "halfway") }},
		{"timeEnd", func() error { return c.TimeEnd("demo") }},
		{"trace", func() error { return c.Trace("trace from the demo") }},
	}

	for _, step := range steps {
		if err := step.call(); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
		a.log.Debug().Str("operation", step.name).Msg("done")
	}

	return nil
}
