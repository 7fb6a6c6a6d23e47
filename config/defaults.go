package config

import (
	"github.com/spf13/viper"
)

// Default file permissions for the user config directory
const DefaultDirPermissions = 0o755

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Database defaults
	v.SetDefault("database.path", "bastion.db")

	// Server defaults
	v.SetDefault("server.address", "127.0.0.1:3001")

	// Sync defaults
	v.SetDefault("sync.include_scoring", false)

	// Log defaults
	v.SetDefault("log.json", false)
}
