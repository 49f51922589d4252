package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, defaultServerPort, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, defaultMongoURI, cfg.Mongo.URI)
	assert.Equal(t, defaultMongoDatabase, cfg.Mongo.Database)
	assert.Equal(t, 2*time.Second, cfg.Mongo.PingTimeout)
	assert.Equal(t, defaultOpenAIEndpoint, cfg.OpenAI.Endpoint)
	assert.Equal(t, defaultOpenAIModel, cfg.OpenAI.Model)
}

func TestLoadYAMLValues(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
debug: true
server:
  port: 9000
  read_timeout: 5s
mongo:
  database: articles_test
openai:
  model: gpt-4o-mini
`))
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "articles_test", cfg.Mongo.Database)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
}

func TestEnvOverridesWin(t *testing.T) {
	t.Setenv("SERVER_PORT", "7777")
	t.Setenv("OPENAI_MODEL", "gpt-5")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")

	cfg, err := Load(writeConfig(t, `
server:
  port: 9000
openai:
  model: gpt-4o-mini
`))
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Server.Port)
	assert.Equal(t, "gpt-5", cfg.OpenAI.Model)
	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
}

func TestMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, defaultServerPort, cfg.Server.Port)
}

func TestGetConfigPath(t *testing.T) {
	assert.Equal(t, "config.yml", GetConfigPath("config.yml"))

	t.Setenv("CONFIG_PATH", "/etc/svc/config.yml")
	assert.Equal(t, "/etc/svc/config.yml", GetConfigPath("config.yml"))
}
