package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string    `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string    `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Redis      Redis     `yaml:"redis"`
	Game       Game      `yaml:"game"`
	Telemetry  Telemetry `yaml:"telemetry"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Game struct {
	// SessionTTL is how long an untouched session survives in storage.
	SessionTTL time.Duration `yaml:"session-ttl" env:"GAME_SESSION_TTL" env-default:"24h"`
	// AIThinkDelay is the pause the WebSocket transport takes before the AI replies.
	AIThinkDelay time.Duration `yaml:"ai-think-delay" env:"GAME_AI_THINK_DELAY" env-default:"1s"`
}

type Telemetry struct {
	ServiceName string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"tictactoe-minimax"`
	// Endpoint is an OTLP/HTTP URL; tracing is disabled when it is empty.
	Endpoint string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:""`
}

// MustLoad - load all configurations from the config file, or from the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
