package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// DefaultSessionSecret só serve para desenvolvimento local
const DefaultSessionSecret = "changeme"

type Config struct {
	DBUrl      string `env:"DATABASE_URL, default=local.db"`
	ServerPort string `env:"SERVER_PORT, default=8080"`
	Timezone   string `env:"TIMEZONE, default=Local"`

	SessionSecret string        `env:"SESSION_SECRET, default=changeme"`
	SessionTTL    time.Duration `env:"SESSION_TTL, default=12h"`
	CookieSecure  bool          `env:"COOKIE_SECURE, default=false"`

	// vazio = revogação de sessão desativada
	RedisURL string `env:"REDIS_URL"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS"`

	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`
}

// Load lê o .env (se existir) e depois as variáveis de ambiente
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// UsesPostgres indica se DATABASE_URL aponta para um Postgres
func (c *Config) UsesPostgres() bool {
	return strings.HasPrefix(c.DBUrl, "postgres://") ||
		strings.HasPrefix(c.DBUrl, "postgresql://")
}
