package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Port    string `env:"PORT" env-default:"8080"`
	GinMode string `env:"GIN_MODE" env-default:"debug"`

	DBDriver   string `env:"DB_DRIVER" env-default:"sqlite"`
	DBPath     string `env:"DB_PATH" env-default:"todolist.db"`
	DBHost     string `env:"DB_HOST" env-default:"localhost"`
	DBPort     string `env:"DB_PORT" env-default:"3306"`
	DBUser     string `env:"DB_USER" env-default:"todouser"`
	DBPassword string `env:"DB_PASSWORD" env-default:"todopassword"`
	DBName     string `env:"DB_NAME" env-default:"todolist"`

	// JWTSecret has no default: tokens must never be signed with a key
	// that ships in the source.
	JWTSecret string        `env:"JWT_SECRET" env-required:"true"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" env-default:"12h"`

	CORSOrigins []string `env:"CORS_ORIGINS" env-separator:"," env-default:"*"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
