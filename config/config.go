package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"humorshub"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// RabbitURL and RedisAddr are optional. Empty disables the integration.
	RabbitURL string `envconfig:"RABBIT_URL"`

	RedisAddr           string        `envconfig:"REDIS_ADDR"`
	RedisPassword       string        `envconfig:"REDIS_PASSWORD"`
	RedisDB             int           `envconfig:"REDIS_DB" default:"0"`
	VenueStatusCacheTTL time.Duration `envconfig:"VENUE_STATUS_CACHE_TTL" default:"30s"`

	JWTSecret   string        `envconfig:"JWT_SECRET" required:"true"`
	JWTTTL      time.Duration `envconfig:"JWT_TTL" default:"24h"`
	AdminEmails []string      `envconfig:"ADMIN_EMAILS" default:"admin@humorshub.com"`

	VenueName                string `envconfig:"VENUE_NAME" default:"Humors Hub"`
	VenueCapacity            int    `envconfig:"VENUE_CAPACITY" default:"50"`
	TicketPolicy             string `envconfig:"TICKET_POLICY" default:"fixed:1"`
	EnforceCapacityOnApprove bool   `envconfig:"ENFORCE_CAPACITY_ON_APPROVE" default:"true"`
	UserDeletePolicy         string `envconfig:"USER_DELETE_POLICY" default:"forbid"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must not be empty")
	}
	if cfg.VenueCapacity < 1 {
		return nil, fmt.Errorf("VENUE_CAPACITY must be positive, got %d", cfg.VenueCapacity)
	}
	return &cfg, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}
