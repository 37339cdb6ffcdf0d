package demo

import (
	"github.com/dmitrymomot/formvalid/pkg/config"
	"github.com/dmitrymomot/formvalid/pkg/httpserver"
)

// EnvPrefix namespaces every variable of Config.
const EnvPrefix = "FORMVALID_"

// Config is the demo service configuration, read from FORMVALID_* variables.
type Config struct {
	Env       string `env:"ENV" envDefault:"development"`
	Service   string `env:"SERVICE" envDefault:"formvalid-demo"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
	// TrustedIPHeaders name the proxy headers carrying the client address.
	TrustedIPHeaders []string `env:"TRUSTED_IP_HEADERS" envSeparator:","`

	HTTP httpserver.Config
}

// LoadConfig reads Config from the environment and an optional .env file.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	opts = append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
