package parse

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/apfid/internal/cmd/base"
)

func newTestCommand(t *testing.T) (*Command, *cli.MockUi) {
	t.Helper()
	ui := cli.NewMockUi()
	return &Command{Command: &base.Command{
		Log: hclog.NewNullLogger(),
		UI:  ui,
		FS:  afero.NewMemMapFs(),
	}}, ui
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "chain only",
			args:     []string{"1abc_A"},
			expected: "1ABC_A\n",
		},
		{
			name:     "distinct second chain",
			args:     []string{"1YSI_A111-191"},
			expected: "1YSI_A\n",
		},
		{
			name:     "model",
			args:     []string{"1abc:2_A5_B20"},
			expected: "1ABC:2_A5_B20\n",
		},
		{
			name:     "lower",
			args:     []string{"-lower", "1ABC_A5_A20"},
			expected: "1abc_A5_A20\n",
		},
		{
			name:     "forced version",
			args:     []string{"-version", "1", "1abc:2_A5_B20"},
			expected: "1ABC_A5_A20\n",
		},
		{
			name:     "several",
			args:     []string{"1abc_A", "2xyz_B"},
			expected: "1ABC_A\n2XYZ_B\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ui := newTestCommand(t)
			code := c.Run(tt.args)
			require.Equal(t, 0, code, ui.ErrorWriter.String())
			assert.Equal(t, tt.expected, ui.OutputWriter.String())
		})
	}
}

func TestRun_File(t *testing.T) {
	c, ui := newTestCommand(t)
	require.NoError(t, afero.WriteFile(c.FS, "ids.txt", []byte("# input\n1abc_A\n2xyz_B5_B9\n"), 0o644))

	code := c.Run([]string{"-file", "ids.txt", "3def_C"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Equal(t, "3DEF_C\n1ABC_A\n2XYZ_B5_B9\n", ui.OutputWriter.String())
}

func TestRun_Config(t *testing.T) {
	c, ui := newTestCommand(t)
	require.NoError(t, afero.WriteFile(c.FS, "apfid.hcl", []byte(`
output {
  case   = "lower"
  format = "json"
}
`), 0o644))

	code := c.Run([]string{"-config", "apfid.hcl", "1ABC_A"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Contains(t, ui.OutputWriter.String(), `"apfid": "1abc_A"`)
	assert.Contains(t, ui.OutputWriter.String(), `"source": "PDB"`)
}

func TestRun_PartialFailure(t *testing.T) {
	c, ui := newTestCommand(t)

	code := c.Run([]string{"1abc_A", "not-an-id", "2xyz_B"})
	assert.Equal(t, 1, code)
	assert.Equal(t, "1ABC_A\n2XYZ_B\n", ui.OutputWriter.String())
	assert.Contains(t, ui.ErrorWriter.String(), "item 1")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no identifiers", args: nil},
		{name: "unknown flag", args: []string{"-nope", "1abc_A"}},
		{name: "missing config", args: []string{"-config", "missing.hcl", "1abc_A"}},
		{name: "missing file", args: []string{"-file", "missing.txt"}},
		{name: "bad format", args: []string{"-format", "xml", "1abc_A"}},
		{name: "bad version", args: []string{"-version", "3", "1abc_A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ui := newTestCommand(t)
			assert.Equal(t, 1, c.Run(tt.args))
			assert.NotEmpty(t, ui.ErrorWriter.String())
		})
	}
}

func TestHelp(t *testing.T) {
	c, _ := newTestCommand(t)
	assert.Contains(t, c.Help(), "Usage: apfid parse")
	assert.Contains(t, c.Help(), "-file")
	assert.NotEmpty(t, c.Synopsis())
}
