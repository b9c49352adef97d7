package lava

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config groups the environment-driven client settings. Values are taken
// from environment variables with the prefix "LAVA_".
// Example: LAVA_API_KEY=... LAVA_HTTP_TIMEOUT=10s .
type Config struct {
	APIKey      string        `envconfig:"API_KEY" required:"true"`
	BaseURL     string        `envconfig:"BASE_URL" default:"https://api.lava.ru"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	Debug       bool          `envconfig:"DEBUG" default:"false"`
}

// ConfigFromEnv populates Config from environment variables (prefix LAVA_).
func ConfigFromEnv() (Config, error) {
	var c Config
	return c, envconfig.Process("LAVA", &c)
}
