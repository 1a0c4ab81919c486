package main

import "github.com/dmitrymomot/simkit/pkg/httpserver"

type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT"`
	// EnforceReservedNames rejects names containing '[' or ']'.
	EnforceReservedNames bool `env:"SIM_ENFORCE_RESERVED_NAME_CHARS" envDefault:"false"`

	HTTP httpserver.Config
}
