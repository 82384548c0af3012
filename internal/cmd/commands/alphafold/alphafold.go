package alphafold

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/apfid/internal/cmd/base"
	"github.com/hashicorp-forge/apfid/pkg/apfid"
)

const (
	formDisplay  = "display"
	formDownload = "download"
	formPSSKB    = "psskb"
)

type Command struct {
	*base.Command

	flagForm string
}

func (c *Command) Synopsis() string {
	return "Parse AlphaFold model identifiers"
}

func (c *Command) Help() string {
	return `Usage: apfid alphafold [options] identifiers...

  This command parses AlphaFold model identifiers such as
  AF-P69905-F1-model_v4 and prints them in the requested form:

    display   AF-P69905-F1-v4
    download  AF-P69905-F1-model_v4
    psskb     AF-P69905-F1-V4` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("alphafold", flag.ContinueOnError))

	f.StringVar(&c.flagForm, "form", formDisplay,
		"Output form: display, download or psskb.")

	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	var render func(apfid.AlphaFoldID) string
	switch c.flagForm {
	case formDisplay:
		render = apfid.AlphaFoldID.String
	case formDownload:
		render = apfid.AlphaFoldID.DownloadID
	case formPSSKB:
		render = apfid.AlphaFoldID.PSSKBID
	default:
		ui.Error(fmt.Sprintf("invalid form %q (valid: display, download, psskb)", c.flagForm))
		return 1
	}

	if flags.NArg() == 0 {
		ui.Error("at least one identifier is required")
		return 1
	}

	exit := 0
	for _, s := range flags.Args() {
		af, err := apfid.ParseAlphaFoldID(s)
		if err != nil {
			ui.Error(fmt.Sprintf("%s: %v", s, err))
			exit = 1
			continue
		}
		ui.Output(render(af))
	}
	return exit
}
