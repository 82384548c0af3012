package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, fs afero.Fs, path, body string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(body), 0o644))
}

func TestNewConfig(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := NewConfig(afero.NewMemMapFs(), "")
		require.NoError(t, err)

		assert.Empty(t, cfg.LogLevel)
		assert.Equal(t, "upper", cfg.Output.Case)
		assert.Equal(t, 0, cfg.Output.Version)
		assert.Equal(t, FormatText, cfg.Output.Format)
		assert.Equal(t, DriverSQLite, cfg.Database.Driver)
		assert.Equal(t, "apfid.db", cfg.Database.Path)
	})

	t.Run("full file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeConfig(t, fs, "apfid.hcl", `
log_level = "debug"

output {
  case    = "lower"
  version = 2
  format  = "json"
}

database {
  driver = "postgres"
  host   = "localhost"
  user   = "apfid"
  dbname = "fragments"
}
`)
		cfg, err := NewConfig(fs, "apfid.hcl")
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "lower", cfg.Output.Case)
		assert.Equal(t, 2, cfg.Output.Version)
		assert.Equal(t, FormatJSON, cfg.Output.Format)
		assert.Equal(t, DriverPostgres, cfg.Database.Driver)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
	})

	t.Run("partial file gets defaults", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeConfig(t, fs, "apfid.hcl", `
database {
  path = "/tmp/fragments.db"
}
`)
		cfg, err := NewConfig(fs, "apfid.hcl")
		require.NoError(t, err)

		assert.Equal(t, "upper", cfg.Output.Case)
		assert.Equal(t, DriverSQLite, cfg.Database.Driver)
		assert.Equal(t, "/tmp/fragments.db", cfg.Database.Path)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewConfig(afero.NewMemMapFs(), "missing.hcl")
		assert.Error(t, err)
	})

	t.Run("syntax error", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeConfig(t, fs, "apfid.hcl", `output {`)
		_, err := NewConfig(fs, "apfid.hcl")
		assert.Error(t, err)
	})
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad log level", body: `log_level = "loud"`},
		{name: "bad case", body: "output {\n  case = \"title\"\n}\n"},
		{name: "bad version", body: "output {\n  version = 3\n}\n"},
		{name: "bad format", body: "output {\n  format = \"xml\"\n}\n"},
		{name: "bad driver", body: "database {\n  driver = \"mysql\"\n}\n"},
		{name: "postgres without host", body: "database {\n  driver = \"postgres\"\n  dbname = \"x\"\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeConfig(t, fs, "apfid.hcl", tt.body)
			_, err := NewConfig(fs, "apfid.hcl")
			assert.Error(t, err)
		})
	}
}
