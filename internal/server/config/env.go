package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config for environment parsing. Pointers distinguish
// "unset" from "set to the zero value" so the overlay only touches fields
// that were actually provided.
type envConfig struct {
	EndpointAddr                *string        `env:"DIARY_ADDRESS"`
	DatabaseDSN                 *string        `env:"DIARY_DATABASE_DSN"`
	SecretKey                   *string        `env:"DIARY_SECRET_KEY"`
	AccessTokenValidityDuration *time.Duration `env:"DIARY_TOKEN_TTL"`
}

// parseEnv overlays environment variables onto the Config.
func parseEnv(config *Config) {
	c := envConfig{}
	if err := env.Parse(&c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != nil {
		config.EndpointAddr = *c.EndpointAddr
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = *c.AccessTokenValidityDuration
	}
}
