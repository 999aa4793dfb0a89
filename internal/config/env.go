package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables via caarlos0/env. The
// mapping comes from the `env` and `envPrefix` tags on [StructuredConfig]
// and its nested types; a value that cannot be converted to the target field
// type is an error.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("reading env configuration: %w", err)
	}

	return nil
}
