package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/apfid/internal/cmd/base"
	"github.com/hashicorp-forge/apfid/internal/cmd/commands/alphafold"
	"github.com/hashicorp-forge/apfid/internal/cmd/commands/build"
	"github.com/hashicorp-forge/apfid/internal/cmd/commands/legacy"
	"github.com/hashicorp-forge/apfid/internal/cmd/commands/lookup"
	"github.com/hashicorp-forge/apfid/internal/cmd/commands/parse"
	"github.com/hashicorp-forge/apfid/internal/cmd/commands/store"
	"github.com/hashicorp-forge/apfid/internal/cmd/commands/version"
)

// Commands is the mapping of all available apfid commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(log, ui)

	Commands = map[string]cli.CommandFactory{
		"alphafold": func() (cli.Command, error) {
			return &alphafold.Command{Command: b}, nil
		},
		"build": func() (cli.Command, error) {
			return &build.Command{Command: b}, nil
		},
		"legacy": func() (cli.Command, error) {
			return &legacy.Command{Command: b}, nil
		},
		"lookup": func() (cli.Command, error) {
			return &lookup.Command{Command: b}, nil
		},
		"parse": func() (cli.Command, error) {
			return &parse.Command{Command: b}, nil
		},
		"store": func() (cli.Command, error) {
			return &store.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
