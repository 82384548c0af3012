package base

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/apfid/internal/config"
)

// Command is embedded by every apfid subcommand.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// FS is the filesystem config and input files are read from.
	FS afero.Fs
}

// NewCommand returns a Command backed by the OS filesystem.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log: log,
		UI:  ui,
		FS:  afero.NewOsFs(),
	}
}

// LoadConfig reads the HCL config at path, or returns the defaults when
// path is empty.
func (c *Command) LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.NewConfig(c.FS, path)
	if err != nil {
		return nil, err
	}
	if cfg.LogLevel != "" {
		c.Log.SetLevel(hclog.LevelFromString(cfg.LogLevel))
	}
	return cfg, nil
}

// ReadLines returns the non-empty lines of path that are not comments.
func (c *Command) ReadLines(path string) ([]string, error) {
	f, err := c.FS.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer f.Close()
	return readLines(f)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// FlagSet wraps flag.FlagSet to render option help for cli.Command.Help.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet returns a FlagSet whose usage output is discarded; errors are
// reported through the command UI instead.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.SetOutput(io.Discard)
	return &FlagSet{FlagSet: f}
}

// Help returns the options section of a command's help text.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "\n  -%s", fl.Name)
		if fl.DefValue != "" && fl.DefValue != "false" {
			fmt.Fprintf(&b, "=%s", fl.DefValue)
		}
		fmt.Fprintf(&b, "\n      %s\n", fl.Usage)
	})
	return b.String()
}
