package cmd

import (
	"sort"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommands(t *testing.T) {
	initCommands(hclog.NewNullLogger(), cli.NewMockUi())

	var names []string
	for name, factory := range Commands {
		names = append(names, name)

		c, err := factory()
		require.NoError(t, err, name)
		assert.NotEmpty(t, c.Synopsis(), name)
		assert.NotEmpty(t, c.Help(), name)
	}
	sort.Strings(names)

	assert.Equal(t, []string{
		"alphafold", "build", "legacy", "lookup", "parse", "store", "version",
	}, names)
}

func TestRunMain_Version(t *testing.T) {
	assert.Equal(t, 0, Main([]string{"apfid", "-version"}))
	assert.Equal(t, 0, Main([]string{"apfid", "version"}))
}

func TestRunMain_UnknownCommand(t *testing.T) {
	assert.Equal(t, 127, Main([]string{"apfid", "frobnicate"}))
}
