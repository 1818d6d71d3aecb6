package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Logger  Logger  `yaml:"logger"`
	Auth    Auth    `yaml:"auth"`
	Session Session `yaml:"session"`
	Board   Board   `yaml:"board"`
}

type Logger struct {
	Level     string   `env-default:"info" yaml:"level"`
	Output    []string `yaml:"output"`
	ErrOutput []string `yaml:"errOutput"`
}

type Auth struct {
	TTL    time.Duration `env-default:"24h" yaml:"ttl"`
	Secret string        `env:"SECRET" env-default:"local-demo-secret" yaml:"secret"`
}

// Session selects where the single session slot lives. The file backend
// needs nothing running; redis keeps the slot out of the local filesystem.
type Session struct {
	Backend string       `env-default:"file"             yaml:"backend"`
	Path    string       `env-default:"qna_session.json" yaml:"path"`
	Redis   SessionRedis `yaml:"redis"`
}

type SessionRedis struct {
	Addr     string `env-default:"localhost:6379" yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type Board struct {
	PerPage int           `env-default:"5" yaml:"perPage"`
	Delay   time.Duration `yaml:"delay"`
}

func New(configPath string) (Config, error) {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("read env config error: %w", err)
		}

		return cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return Config{}, fmt.Errorf("read config error: %w", err)
	}

	return cfg, nil
}
