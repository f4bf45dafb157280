package settingsexpr

import (
	"errors"

	"github.com/dmitrymomot/settingsexpr/pkg/catalog"
	"github.com/dmitrymomot/settingsexpr/pkg/config"
	"github.com/dmitrymomot/settingsexpr/pkg/logger"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "SETTINGSEXPR_"

// Config is the environment configuration of a Serializer.
type Config struct {
	CoreModule string `env:"CORE_MODULE" envDefault:"Serilog"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"LOG_FORMAT" envDefault:"json"`
}

// LoadConfig reads Config from the environment. Extra options, such as
// config.WithFiles, are applied after the prefix.
func LoadConfig(opts ...config.Option) (Config, error) {
	return config.Load[Config](append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)...)
}

// NewFromConfig returns a serializer configured by cfg. Options are applied
// after cfg and may override it.
func NewFromConfig(cfg Config, opts ...Option) (*Serializer, error) {
	lvl, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	log := logger.New(
		logger.WithLevel(lvl),
		logger.WithFormat(format),
		logger.WithAttr(logger.Component("settingsexpr")),
	)

	coreModule := cfg.CoreModule
	if coreModule == "" {
		coreModule = catalog.CoreModule
	}

	return New(append([]Option{WithCoreModule(coreModule), WithLogger(log)}, opts...)...), nil
}

// NewFromEnv loads Config from the process environment and returns a
// serializer configured by it.
func NewFromEnv(opts ...Option) (*Serializer, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return NewFromConfig(cfg, opts...)
}
