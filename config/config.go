// Package config loads the Bastion configuration from bastion.toml
// files and BASTION_* environment variables.
package config

// Config represents the core Bastion configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Sync     SyncConfig     `mapstructure:"sync"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig configures the SQLite database
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// ServerConfig configures the gRPC sync server
type ServerConfig struct {
	Address string `mapstructure:"address"` // host:port the server listens on
}

// AuthConfig configures admin authentication.
// Keys are bearer tokens; more than one key allows zero-downtime rotation.
type AuthConfig struct {
	APIKeys []string `mapstructure:"api_keys"`
}

// SyncConfig configures diff policy
type SyncConfig struct {
	// IncludeScoring makes the differ compare points and score_type.
	// Off by default: scoring usually belongs to the platform, not the
	// authored content.
	IncludeScoring bool `mapstructure:"include_scoring"`
}

// LogConfig configures log output
type LogConfig struct {
	JSON bool `mapstructure:"json"`
}
