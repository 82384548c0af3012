package parse

import (
	"flag"
	"fmt"

	"github.com/hashicorp/go-multierror"

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
	return "Parse identifiers and print their canonical form"
}

func (c *Command) Help() string {
	return `Usage: apfid parse [options] [identifiers...]

  This command parses each identifier against the full grammar and prints
  it in canonical form. Identifiers are read from the arguments and, when
  -file is set, one per line from that file.

  Every identifier is attempted. The command exits 1 if any failed.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("parse", flag.ContinueOnError))

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

	records, parseErr := apfid.ParseAll(inputs, apfid.WithLogger(logger.Named("apfid")))
	if err := c.Render(c.output.Merge(cfg.Output), records); err != nil {
		ui.Error(fmt.Sprintf("error rendering identifiers: %v", err))
		return 1
	}

	if parseErr != nil {
		if merr, ok := parseErr.(*multierror.Error); ok {
			for _, e := range merr.Errors {
				ui.Error(e.Error())
			}
		} else {
			ui.Error(parseErr.Error())
		}
		logger.Debug("parse finished with errors",
			"total", len(inputs),
			"parsed", len(records),
		)
		return 1
	}

	return 0
}
