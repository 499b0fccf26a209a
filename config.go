package bintoken

import (
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries Service settings sourced from environment variables.
//
// Example:
//
//	TOKEN_SECRET=my-very-strong-secret
//	TOKEN_TTL=30m
//	TOKEN_ISSUER=myapp
type Config struct {
	Secret string        `env:"TOKEN_SECRET,required"`
	TTL    time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
	Issuer string        `env:"TOKEN_ISSUER"`
}

var dotenvOnce sync.Once

// LoadConfig parses Config from environment variables. On first call it also
// loads the default .env file if one is present; a missing file is not an
// error.
func LoadConfig() (Config, error) {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("bintoken: parse config: %w", err)
	}

	return cfg, nil
}
