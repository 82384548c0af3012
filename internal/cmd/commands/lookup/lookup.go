package lookup

import (
	"errors"
	"flag"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hashicorp-forge/apfid/internal/cmd/base"
	"github.com/hashicorp-forge/apfid/pkg/apfid"
	"github.com/hashicorp-forge/apfid/pkg/models"
)

type Command struct {
	*base.Command

	flagConfig     string
	flagSource     string
	flagExperiment string
	output         base.OutputFlags
}

func (c *Command) Synopsis() string {
	return "Find identifiers in the fragment registry"
}

func (c *Command) Help() string {
	return `Usage: apfid lookup [options] [identifier or uuid]

  This command reads fragments back from the registry. Given an identifier
  or a fragment UUID it prints that fragment. With -source or -experiment it
  lists every matching fragment instead.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("lookup", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to an apfid config file.")
	f.StringVar(&c.flagSource, "source", "",
		"List fragments from this source: pdb, alpha_fold, user_upload or unknown.")
	f.StringVar(&c.flagExperiment, "experiment", "",
		"List fragments of this experiment identifier.")
	c.output.Register(f)

	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	listing := c.flagSource != "" || c.flagExperiment != ""
	switch {
	case listing && flags.NArg() > 0:
		ui.Error("an identifier cannot be combined with -source or -experiment")
		return 1
	case !listing && flags.NArg() != 1:
		ui.Error("exactly one identifier or uuid is required")
		return 1
	}

	cfg, err := c.LoadConfig(c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing config file: %v", err))
		return 1
	}

	db, err := c.OpenRegistry(cfg.Database)
	if err != nil {
		ui.Error(fmt.Sprintf("error initializing database: %v", err))
		return 1
	}

	fragments, err := c.find(db, flags.Args())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ui.Error("fragment not found")
		} else {
			ui.Error(fmt.Sprintf("error looking up fragments: %v", err))
		}
		return 1
	}

	records := make([]*apfid.APFID, 0, len(fragments))
	for _, f := range fragments {
		a, err := f.APFID()
		if err != nil {
			ui.Error(fmt.Sprintf("error rebuilding %s: %v", f.Key, err))
			return 1
		}
		records = append(records, a)
	}

	if err := c.Render(c.output.Merge(cfg.Output), records); err != nil {
		ui.Error(fmt.Sprintf("error rendering identifiers: %v", err))
		return 1
	}
	return 0
}

func (c *Command) find(db *gorm.DB, args []string) ([]models.Fragment, error) {
	switch {
	case c.flagSource != "":
		kind, err := apfid.ParseSourceKind(c.flagSource)
		if err != nil {
			return nil, err
		}
		return models.FindFragmentsBySource(db, kind)

	case c.flagExperiment != "":
		return models.FindFragmentsByExperiment(db, c.flagExperiment)
	}

	var f models.Fragment
	if _, err := uuid.Parse(args[0]); err == nil {
		if err := f.GetByUUID(db, args[0]); err != nil {
			return nil, err
		}
	} else if err := f.GetByAPFID(db, args[0]); err != nil {
		return nil, err
	}
	return []models.Fragment{f}, nil
}
