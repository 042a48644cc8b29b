package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv overlays environment variables onto cfg. Only fields carrying an
// `env` tag are read.
func parseEnv(cfg any) error {
	if err := env.ParseWithOptions(cfg, env.Options{UseFieldNameByDefault: false}); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	return nil
}
