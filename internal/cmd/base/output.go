package base

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hashicorp-forge/apfid/internal/config"
	"github.com/hashicorp-forge/apfid/pkg/apfid"
)

// OutputFlags holds the rendering flags shared by commands that print
// identifiers. Zero values defer to the config file.
type OutputFlags struct {
	Lower   bool
	Version int
	Format  string
}

// Register adds the output flags to f.
func (o *OutputFlags) Register(f *FlagSet) {
	f.BoolVar(&o.Lower, "lower", false,
		"Render the experiment token in lower case.")
	f.IntVar(&o.Version, "version", 0,
		"Force grammar version 1 or 2. 0 keeps each identifier's own version.")
	f.StringVar(&o.Format, "format", "",
		"Output format: text, json or yaml. Defaults to the config value.")
}

// Merge overlays the flags on the configured output settings.
func (o *OutputFlags) Merge(cfg *config.Output) *config.Output {
	out := *cfg
	if o.Lower {
		out.Case = "lower"
	}
	if o.Version != 0 {
		out.Version = o.Version
	}
	if o.Format != "" {
		out.Format = o.Format
	}
	return &out
}

// Render writes records to the UI according to out.
func (c *Command) Render(out *config.Output, records []*apfid.APFID) error {
	if err := out.Validate(); err != nil {
		return fmt.Errorf("invalid output settings: %w", err)
	}
	cs, err := apfid.ParseCase(out.Case)
	if err != nil {
		return err
	}

	summaries := make([]apfid.Summary, 0, len(records))
	for _, a := range records {
		s := a.Summary(cs)
		if out.Version != 0 {
			if s.APFID, err = a.Format(cs, apfid.Version(out.Version)); err != nil {
				return err
			}
		}
		summaries = append(summaries, s)
	}

	switch strings.ToLower(out.Format) {
	case config.FormatJSON:
		b, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding json: %w", err)
		}
		c.UI.Output(string(b))

	case config.FormatYAML:
		b, err := yaml.Marshal(summaries)
		if err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		c.UI.Output(strings.TrimRight(string(b), "\n"))

	default:
		for _, s := range summaries {
			c.UI.Output(s.APFID)
		}
	}
	return nil
}

// Inputs returns args followed by the lines of file, if set.
func (c *Command) Inputs(args []string, file string) ([]string, error) {
	inputs := append([]string{}, args...)
	if file != "" {
		lines, err := c.ReadLines(file)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, lines...)
	}
	return inputs, nil
}
