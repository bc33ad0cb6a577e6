package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port             string `envconfig:"PORT" default:"3000"`
	MongoURI         string `envconfig:"MONGO_URI" required:"true"`
	DBName           string `envconfig:"DB_NAME" default:"pha12"`
	AuthPrivateKey   string `envconfig:"AUTH_PRIVATE_KEY" required:"true"`
	SecretPaymentKey string `envconfig:"SECRET_PAYMENT_KEY" required:"true"`
	AllowedOrigins   string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173"`
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	// missing .env is fine in deployment; env vars are set directly there
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}

// Origins returns the CORS allow-list.
func (c Config) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
