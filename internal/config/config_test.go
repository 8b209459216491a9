package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads the config file", func(t *testing.T) {
		// Given: a config file with every section filled in
		path := filepath.Join(t.TempDir(), "config.yml")
		content := `
log-level: debug
http-port: "8080"
socket-port: "8081"
redis:
  host: redis
  port: "6380"
  password: secret
  db: 2
game:
  session-ttl: 30m
  ai-think-delay: 250ms
telemetry:
  service-name: bot
  endpoint: http://collector:4318
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the values come from the file
		require.NoError(t, err)
		assert.Equal(t, &Config{
			LogLevel:   "debug",
			HTTPPort:   "8080",
			SocketPort: "8081",
			Redis:      Redis{Host: "redis", Port: "6380", Password: "secret", DB: 2},
			Game:       Game{SessionTTL: 30 * time.Minute, AIThinkDelay: 250 * time.Millisecond},
			Telemetry:  Telemetry{ServiceName: "bot", Endpoint: "http://collector:4318"},
		}, conf)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Falls back to the environment", func(t *testing.T) {
		// Given: no config file and a few variables set
		t.Setenv("REDIS_HOST", "cache")
		t.Setenv("GAME_AI_THINK_DELAY", "2s")

		// When: the config is loaded from a missing path
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: variables and defaults are applied
		require.NoError(t, err)
		assert.Equal(t, "cache", conf.Redis.Host)
		assert.Equal(t, "6379", conf.Redis.Port)
		assert.Equal(t, 2*time.Second, conf.Game.AIThinkDelay)
		assert.Equal(t, 24*time.Hour, conf.Game.SessionTTL)
		assert.Equal(t, "9090", conf.HTTPPort)
	})

	t.Run("Rejects a broken file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("game: [unterminated"), 0o600))

		_, err := Load(path)

		require.Error(t, err)
	})
}

func TestMustLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("log-level: [\n"), 0o600))

	assert.Panics(t, func() {
		MustLoad(path)
	})
}
