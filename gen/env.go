package gen

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvIconsDir is the environment variable naming the icons repository.
const EnvIconsDir = "MATERIAL_DESIGN_ICONS_DIR"

// Env is the environment configuration.
type Env struct {
	IconsDir string `env:"MATERIAL_DESIGN_ICONS_DIR"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
