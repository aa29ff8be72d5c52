package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Addr               string
	TLSCert            string
	TLSKey             string
	DatabaseURL        string
	TokenKey           string
	LogLevel           string
	CatalogPath        string
	RequiredResistance float64
	RateLimit          float64
	RateBurst          int
}

// Load reads an optional .env file and then the process environment.
// envFiles default to ".env"; missing files are not an error.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("ADDR", ":443")
	v.SetDefault("TLS_CERT", "server.crt")
	v.SetDefault("TLS_KEY", "server.key")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REQUIRED_RESISTANCE", 2.99)
	v.SetDefault("RATE_LIMIT", 1.0)
	v.SetDefault("RATE_BURST", 3)

	cfg := Config{
		Addr:               v.GetString("ADDR"),
		TLSCert:            v.GetString("TLS_CERT"),
		TLSKey:             v.GetString("TLS_KEY"),
		DatabaseURL:        v.GetString("DATABASE_URL"),
		TokenKey:           v.GetString("TOKEN_KEY"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		CatalogPath:        v.GetString("CATALOG_PATH"),
		RequiredResistance: v.GetFloat64("REQUIRED_RESISTANCE"),
		RateLimit:          v.GetFloat64("RATE_LIMIT"),
		RateBurst:          v.GetInt("RATE_BURST"),
	}
	if cfg.RequiredResistance <= 0 {
		return Config{}, fmt.Errorf("REQUIRED_RESISTANCE must be positive, got %v", cfg.RequiredResistance)
	}
	return cfg, nil
}

// Validate checks what the HTTP server needs on top of Load.
func (c Config) Validate() error {
	if c.TokenKey == "" {
		return errors.New("TOKEN_KEY environment variable is not set")
	}
	if c.RateLimit <= 0 || c.RateBurst <= 0 {
		return errors.New("RATE_LIMIT and RATE_BURST must be positive")
	}
	return nil
}
