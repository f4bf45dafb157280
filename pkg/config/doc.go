// Package config loads typed configuration from environment variables.
//
// Load parses `env` struct tags with github.com/caarlos0/env/v11. Values can
// additionally come from dotenv files read with github.com/joho/godotenv;
// variables already present in the environment win over file values.
//
//	type Config struct {
//		CoreModule string `env:"CORE_MODULE" envDefault:"Serilog"`
//		LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	cfg, err := config.Load[Config](
//		config.WithPrefix("SETTINGSEXPR_"),
//		config.WithFiles(".env"),
//	)
//
// Every call parses afresh; nothing is cached between calls.
//
// # Errors
//
// Parsing failures are joined with ErrParsingConfig and unreadable dotenv
// files with ErrReadingEnvFile, so callers can test for either with errors.Is.
// MustLoad panics instead of returning an error.
package config
