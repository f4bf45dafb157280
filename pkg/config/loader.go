package config

import (
	"errors"
	"fmt"
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*options)

type options struct {
	prefix  string
	files   []string
	environ map[string]string
}

// WithPrefix prepends prefix to every env tag, e.g. "SETTINGSEXPR_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithFiles reads dotenv files before parsing. Process environment variables
// take precedence over file values; later files override earlier ones.
func WithFiles(files ...string) Option {
	return func(o *options) { o.files = append(o.files, files...) }
}

// WithEnvironment replaces the process environment with environ.
func WithEnvironment(environ map[string]string) Option {
	return func(o *options) { o.environ = environ }
}

// Load parses the environment into a new T using `env` struct tags.
//
//	type Config struct {
//		CoreModule string `env:"CORE_MODULE" envDefault:"Serilog"`
//	}
//
//	cfg, err := config.Load[Config](config.WithPrefix("SETTINGSEXPR_"))
func Load[T any](opts ...Option) (T, error) {
	var zero T

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	environ := o.environ
	if environ == nil {
		environ = env.ToMap(os.Environ())
	}

	merged := make(map[string]string, len(environ))
	for _, file := range o.files {
		values, err := godotenv.Read(file)
		if err != nil {
			return zero, errors.Join(ErrReadingEnvFile, fmt.Errorf("%s: %w", file, err))
		}
		maps.Copy(merged, values)
	}
	maps.Copy(merged, environ)

	cfg, err := env.ParseAsWithOptions[T](env.Options{
		Environment: merged,
		Prefix:      o.prefix,
	})
	if err != nil {
		return zero, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics if loading fails.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}
