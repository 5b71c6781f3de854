package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings that may be supplied through the environment.
// Zero values mean "not set".
type Env struct {
	FPS        int    `env:"SNAKE_FPS"`
	DBPath     string `env:"SNAKE_DB"`
	Difficulty string `env:"SNAKE_DIFFICULTY"`
	ConfigPath string `env:"SNAKE_CONFIG"`
	LogFile    string `env:"SNAKE_LOG_FILE"`
	LogLevel   string `env:"SNAKE_LOG_LEVEL"`
	Mute       bool   `env:"SNAKE_MUTE"`
	SSHAddr    string `env:"SNAKE_SSH_ADDR"`
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}
