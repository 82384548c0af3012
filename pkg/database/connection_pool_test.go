package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/apfid/pkg/apfid"
	"github.com/hashicorp-forge/apfid/pkg/models"
)

// TestOpen_SQLiteDefaults tests that sqlite connections are limited to a single connection.
func TestOpen_SQLiteDefaults(t *testing.T) {
	db, err := Open(Config{Driver: "sqlite", Path: ":memory:"}, nil)
	require.NoError(t, err)

	stats, err := GetPoolStats(db)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MaxOpenConnections, "sqlite should use a single connection")
}

// TestOpen_CustomPoolSettings tests that custom connection pool settings are respected.
func TestOpen_CustomPoolSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apfid.db")
	db, err := Open(Config{
		Driver:          "sqlite",
		Path:            path,
		MaxIdleConns:    2,
		MaxOpenConns:    4,
		ConnMaxLifetime: time.Minute,
	}, hclog.NewNullLogger())
	require.NoError(t, err)

	stats, err := GetPoolStats(db)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.MaxOpenConnections)
}

// TestOpen_Migrates tests that the fragment table is usable right after Open.
func TestOpen_Migrates(t *testing.T) {
	db, err := Open(Config{Driver: "sqlite", Path: ":memory:"}, nil)
	require.NoError(t, err)

	f, err := models.NewFragment(apfid.MustParse("1abc_A"))
	require.NoError(t, err)
	require.NoError(t, f.Create(db))

	var got models.Fragment
	require.NoError(t, got.GetByAPFID(db, "1ABC_A"))
	assert.Equal(t, f.UUID, got.UUID)
}

func TestOpen_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "unsupported driver", cfg: Config{Driver: "mysql"}},
		{name: "sqlite without path", cfg: Config{Driver: "sqlite"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(tt.cfg, nil)
			assert.Error(t, err)
		})
	}
}

func TestGormLogger_LogMode(t *testing.T) {
	l := NewGormLogger(hclog.NewNullLogger())
	assert.NotNil(t, l.LogMode(0))
}
