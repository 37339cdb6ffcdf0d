// Package config loads application configuration from environment variables
// and optional .env files.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing tagged structs:
//
//	type Config struct {
//		Addr     string        `env:"HTTP_ADDR" envDefault:":8080"`
//		Timeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
//		LogLevel string        `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg, config.WithPrefix("FORMVALID_"))
//
// Tests pass WithEnvironment to avoid touching the process environment.
// Failures wrap ErrParsingConfig or ErrLoadingEnvFile.
package config
