package main

// envPrefix is prepended to every env tag of AppConfig and httpserver.Config.
const envPrefix = "STRKIT_"

// AppConfig holds process-wide settings.
type AppConfig struct {
	Env      string `env:"ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`
	Output   string `env:"OUTPUT" envDefault:"json"`
}
