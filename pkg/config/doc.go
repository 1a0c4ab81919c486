// Package config loads typed configuration from environment variables.
//
// Load fills a struct from its `env` tags using github.com/caarlos0/env and,
// on first use, reads an optional .env file from the working directory via
// github.com/joho/godotenv. Extra dotenv files can be requested with
// WithEnvFiles; values already present in the process environment take
// precedence over file contents.
//
//	type AppConfig struct {
//		Env      string `env:"APP_ENV" envDefault:"development"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	cfg, err := config.Load[AppConfig]()
//
// Tests can bypass the process environment entirely:
//
//	cfg, err := config.Load[AppConfig](config.WithEnvironment(map[string]string{
//		"APP_ENV": "production",
//	}))
//
// Parse failures wrap ErrParsingConfig; unreadable dotenv files wrap ErrEnvFile.
package config
