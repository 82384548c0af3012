package build

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
			args:     []string{"-experiment", "1abc", "-chain", "A"},
			expected: "1ABC_A\n",
		},
		{
			name:     "v1 range",
			args:     []string{"-experiment", "1abc", "-chain", "A", "-start", "5", "-end", "20"},
			expected: "1ABC_A5_A20\n",
		},
		{
			name: "v2 second chain",
			args: []string{"-experiment", "1abc", "-chain", "A", "-chain2", "B",
				"-start", "5", "-end", "20", "-version", "2"},
			expected: "1ABC_A5_B20\n",
		},
		{
			name:     "model forces v2",
			args:     []string{"-experiment", "1abc", "-chain", "A", "-model", "2", "-version", "1"},
			expected: "1ABC:2_A\n",
		},
		{
			name:     "empty range",
			args:     []string{"-experiment", "1abc", "-chain", "A", "-start", "7", "-end", "7"},
			expected: "1ABC_A\n",
		},
		{
			name:     "alphafold",
			args:     []string{"-experiment", "AF-P69905-F1-model_v4", "-chain", "A"},
			expected: "AF-P69905-F1-V4_A\n",
		},
		{
			name:     "lower",
			args:     []string{"-lower", "-experiment", "1ABC", "-chain", "A"},
			expected: "1abc_A\n",
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

func TestRun_RecordVersionWinsOverConfig(t *testing.T) {
	c, ui := newTestCommand(t)
	require.NoError(t, afero.WriteFile(c.FS, "apfid.hcl", []byte(`
output {
  version = 1
}
`), 0o644))

	code := c.Run([]string{"-config", "apfid.hcl", "-experiment", "1abc", "-chain", "A", "-model", "3"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Equal(t, "1ABC:3_A\n", ui.OutputWriter.String())
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing experiment", args: []string{"-chain", "A"}},
		{name: "missing chain", args: []string{"-experiment", "1abc"}},
		{name: "start without end", args: []string{"-experiment", "1abc", "-chain", "A", "-start", "5"}},
		{name: "unsupported version", args: []string{"-experiment", "1abc", "-chain", "A", "-version", "3"}},
		{name: "malformed alphafold", args: []string{"-experiment", "AFX123", "-chain", "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ui := newTestCommand(t)
			assert.Equal(t, 1, c.Run(tt.args))
			assert.NotEmpty(t, ui.ErrorWriter.String())
		})
	}
}
