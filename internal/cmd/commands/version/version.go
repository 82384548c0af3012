package version

import (
	"github.com/hashicorp-forge/apfid/internal/cmd/base"
	"github.com/hashicorp-forge/apfid/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the apfid version"
}

func (c *Command) Help() string {
	return `Usage: apfid version

  This command prints the apfid version.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output("apfid v" + version.Version)
	return 0
}
