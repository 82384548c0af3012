package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
)

// Config is the apfid CLI configuration.
type Config struct {
	// LogLevel is one of trace, debug, info, warn, error. Empty keeps the
	// level the logger was created with.
	LogLevel string `hcl:"log_level,optional"`

	// Output controls how identifiers are written.
	Output *Output `hcl:"output,block"`

	// Database configures the fragment registry.
	Database *Database `hcl:"database,block"`
}

// Output configures rendering of identifiers.
type Output struct {
	// Case of the experiment token: "upper" or "lower".
	Case string `hcl:"case,optional"`

	// Version forces a grammar version (1 or 2). 0 keeps each record's own.
	Version int `hcl:"version,optional"`

	// Format is one of text, json, yaml.
	Format string `hcl:"format,optional"`
}

// Database configures the fragment registry connection.
type Database struct {
	// Driver is "sqlite" or "postgres".
	Driver string `hcl:"driver,optional"`

	// Path is the SQLite database file.
	Path string `hcl:"path,optional"`

	// PostgreSQL settings.
	Host     string `hcl:"host,optional"`
	Port     int    `hcl:"port,optional"`
	User     string `hcl:"user,optional"`
	Password string `hcl:"password,optional"`
	DBName   string `hcl:"dbname,optional"`
	SSLMode  string `hcl:"sslmode,optional"`
}

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// NewConfig parses the HCL file at path on fs. An empty path returns the
// defaults.
func NewConfig(fs afero.Fs, path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := &Config{}
	if err := hclsimple.Decode(path, src, nil, cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) setDefaults() {

	if c.Output == nil {
		c.Output = &Output{}
	}
	if c.Output.Case == "" {
		c.Output.Case = "upper"
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}

	if c.Database == nil {
		c.Database = &Database{}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverSQLite
	}
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			c.Database.Path = "apfid.db"
		}
	case DriverPostgres:
		if c.Database.Port == 0 {
			c.Database.Port = 5432
		}
		if c.Database.SSLMode == "" {
			c.Database.SSLMode = "disable"
		}
	}
}

// Validate implements validation.Validatable.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel,
			validation.In("trace", "debug", "info", "warn", "error")),
		validation.Field(&c.Output),
		validation.Field(&c.Database),
	)
}

// Validate implements validation.Validatable.
func (o *Output) Validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.Case, validation.In("upper", "lower")),
		validation.Field(&o.Version, validation.In(0, 1, 2)),
		validation.Field(&o.Format, validation.In(FormatText, FormatJSON, FormatYAML)),
	)
}

// Validate implements validation.Validatable.
func (d *Database) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Driver, validation.Required,
			validation.In(DriverSQLite, DriverPostgres)),
		validation.Field(&d.Path,
			validation.When(d.Driver == DriverSQLite, validation.Required)),
		validation.Field(&d.Host,
			validation.When(d.Driver == DriverPostgres, validation.Required)),
		validation.Field(&d.DBName,
			validation.When(d.Driver == DriverPostgres, validation.Required)),
	)
}
