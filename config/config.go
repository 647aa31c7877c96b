package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Settings holds all process-wide configuration. It is built once at startup
// and passed by reference into the components that need it.
type Settings struct {
	DatabaseURL    string        `envconfig:"DATABASE_URL" required:"true"`
	SecretKey      string        `envconfig:"SECRET_KEY" required:"true"`
	Port           int           `envconfig:"PORT" default:"8000"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	TokenTTL       time.Duration `envconfig:"TOKEN_TTL" default:"168h"`
	AllowedOrigins []string      `envconfig:"ALLOWED_ORIGINS" default:"https://spill-zone.vercel.app,http://localhost:5173"`
	AllowedEmojis  []string      `envconfig:"ALLOWED_EMOJIS" default:"👀,👍,💀,☕"`
}

// Load reads settings from the environment, with a best-effort .env file for
// local development. Missing required values return an error.
func Load() (*Settings, error) {
	_ = godotenv.Load()

	var s Settings
	if err := envconfig.Process("", &s); err != nil {
		return nil, err
	}
	return &s, nil
}
