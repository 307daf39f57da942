// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct parsing and
// github.com/joho/godotenv for .env files. Each configuration type is parsed
// once per process; later calls copy the cached value.
//
//	type AppConfig struct {
//	    Env       string `env:"ENV" envDefault:"development"`
//	    LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg, config.WithPrefix("STRKIT_")); err != nil {
//	    // errors.Is(err, config.ErrParsingConfig)
//	}
//
// Failed loads are not cached, so a corrected environment can be retried.
// Reset clears the cache and is intended for tests.
package config
