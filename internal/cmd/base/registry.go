package base

import (
	"gorm.io/gorm"

	"github.com/hashicorp-forge/apfid/internal/config"
	"github.com/hashicorp-forge/apfid/pkg/database"
)

// OpenRegistry connects to the fragment registry described by cfg.
func (c *Command) OpenRegistry(cfg *config.Database) (*gorm.DB, error) {
	return database.Open(database.Config{
		Driver:   cfg.Driver,
		Path:     cfg.Path,
		Host:     cfg.Host,
		Port:     cfg.Port,
		User:     cfg.User,
		Password: cfg.Password,
		DBName:   cfg.DBName,
		SSLMode:  cfg.SSLMode,
	}, c.Log)
}
