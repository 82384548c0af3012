package legacy

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/apfid/internal/cmd/base"
	"github.com/hashicorp-forge/apfid/pkg/apfid"
)

type Command struct {
	*base.Command

	flagConfig string
	flagFile   string
	output     base.OutputFlags
}

func (c *Command) Synopsis() string {
	return "Split identifiers the deprecated way"
}

func (c *Command) Help() string {
	return `Usage: apfid legacy [options] [identifiers...]

  This command builds identifiers by splitting on underscores without
  applying the grammar. It exists to reproduce identifiers produced by old
  tooling and is deprecated; use "apfid parse" instead.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("legacy", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to an apfid config file.")
	f.StringVar(&c.flagFile, "file", "",
		"Read identifiers from this file, one per line.")
	c.output.Register(f)

	return f
}

func (c *Command) Run(args []string) int {
	logger, ui := c.Log, c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	cfg, err := c.LoadConfig(c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing config file: %v", err))
		return 1
	}

	inputs, err := c.Inputs(flags.Args(), c.flagFile)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	if len(inputs) == 0 {
		ui.Error("at least one identifier is required")
		return 1
	}

	var (
		records []*apfid.APFID
		failed  bool
		warned  = map[string]bool{}
	)
	for _, s := range inputs {
		a, err := apfid.NewFromLegacyString(s, apfid.WithLogger(logger.Named("apfid")))
		if err != nil {
			ui.Error(fmt.Sprintf("%s: %v", s, err))
			failed = true
			continue
		}
		for _, w := range a.Warnings() {
			if !warned[w.Code] {
				ui.Warn(w.String())
				warned[w.Code] = true
			}
		}
		records = append(records, a)
	}

	if err := c.Render(c.output.Merge(cfg.Output), records); err != nil {
		ui.Error(fmt.Sprintf("error rendering identifiers: %v", err))
		return 1
	}

	if failed {
		return 1
	}
	return 0
}
