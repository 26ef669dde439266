package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SANDBOX_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Дефолты соответствуют миру 20x20 оригинального демо
	assert.Equal(t, 20, cfg.World.Width)
	assert.Equal(t, 20, cfg.World.Depth)
	assert.Equal(t, int64(3817), cfg.World.Seed)
	assert.Equal(t, 8, cfg.World.MaxHeight)
	assert.Equal(t, -1, cfg.World.BedrockY)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	data := []byte(`
world:
  width: 32
  depth: 16
  seed: 99
  scale: 0.1
  max_height: 12
  bedrock_y: 0
server:
  rest_port: 9090
eventbus:
  url: nats://localhost:4222
  stream: WORLD_EVENTS
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.World.Width)
	assert.Equal(t, 16, cfg.World.Depth)
	assert.Equal(t, int64(99), cfg.World.Seed)
	assert.Equal(t, 0.1, cfg.World.Scale)
	assert.Equal(t, 12, cfg.World.MaxHeight)
	assert.Equal(t, 0, cfg.World.BedrockY)
	assert.Equal(t, 9090, cfg.Server.GetRESTPort())
	assert.Equal(t, "nats://localhost:4222", cfg.EventBus.URL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yml")
	assert.Error(t, err)
}

func TestServerConfig_PortFallback(t *testing.T) {
	// Приоритет: config -> env -> default
	s := ServerConfig{RESTPort: 7000}
	assert.Equal(t, 7000, s.GetRESTPort())

	s = ServerConfig{}
	t.Setenv("SANDBOX_REST_PORT", "7100")
	assert.Equal(t, 7100, s.GetRESTPort())

	t.Setenv("SANDBOX_REST_PORT", "")
	assert.Equal(t, 8088, s.GetRESTPort())
}
