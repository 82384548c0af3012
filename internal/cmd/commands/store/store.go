package store

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/apfid/internal/cmd/base"
	"github.com/hashicorp-forge/apfid/pkg/apfid"
	"github.com/hashicorp-forge/apfid/pkg/models"
)

type Command struct {
	*base.Command

	flagConfig string
	flagFile   string
	flagDryRun bool
}

func (c *Command) Synopsis() string {
	return "Save identifiers to the fragment registry"
}

func (c *Command) Help() string {
	return `Usage: apfid store [options] [identifiers...]

  This command parses each identifier and saves it to the fragment registry
  configured in the database block of the config file. Identifiers that are
  already registered are left unchanged and their existing UUID is printed.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("store", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to an apfid config file.")
	f.StringVar(&c.flagFile, "file", "",
		"Read identifiers from this file, one per line.")
	f.BoolVar(&c.flagDryRun, "dry-run", false,
		"Only print what would be stored without making changes.")

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
	if parseErr != nil {
		ui.Error(fmt.Sprintf("error parsing identifiers: %v", parseErr))
		return 1
	}

	if c.flagDryRun {
		ui.Warn("DRY RUN mode enabled - no changes will be made")
		for _, a := range records {
			ui.Info(fmt.Sprintf("would store %s", a))
		}
		return 0
	}

	db, err := c.OpenRegistry(cfg.Database)
	if err != nil {
		ui.Error(fmt.Sprintf("error initializing database: %v", err))
		return 1
	}

	for _, a := range records {
		f, err := models.NewFragment(a)
		if err != nil {
			ui.Error(fmt.Sprintf("%s: %v", a, err))
			return 1
		}
		if err := f.FirstOrCreate(db); err != nil {
			ui.Error(fmt.Sprintf("error storing %s: %v", a, err))
			return 1
		}
		logger.Debug("stored fragment", "apfid", f.Key, "uuid", f.UUID)
		ui.Output(fmt.Sprintf("%s\t%s", f.UUID, f.Key))
	}

	return 0
}
