package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, "bastion.db", cfg.Database.Path)
	assert.Equal(t, "127.0.0.1:3001", cfg.Server.Address)
	assert.False(t, cfg.Sync.IncludeScoring)
	assert.False(t, cfg.Log.JSON)
	assert.Empty(t, cfg.Auth.APIKeys)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bastion.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[database]
path = "/var/lib/bastion/bastion.db"

[server]
address = "0.0.0.0:3001"

[auth]
api_keys = ["primary", "rotation"]

[sync]
include_scoring = true
`), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/bastion/bastion.db", cfg.Database.Path)
	assert.Equal(t, "0.0.0.0:3001", cfg.Server.Address)
	assert.Equal(t, []string{"primary", "rotation"}, cfg.Auth.APIKeys)
	assert.True(t, cfg.Sync.IncludeScoring)
}

func TestLoadFromFilePartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bastion.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[auth]
api_keys = ["only"]
`), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"only"}, cfg.Auth.APIKeys)
	assert.Equal(t, "bastion.db", cfg.Database.Path)
	assert.Equal(t, "127.0.0.1:3001", cfg.Server.Address)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
