package redis

import "time"

// Config holds the connection settings of the settings store.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
	// Key names the hash holding published settings.
	Key string `env:"REDIS_SETTINGS_KEY" envDefault:"settingsexpr:settings"`
	// Channel, when set, receives the settings key after every publish.
	Channel string `env:"REDIS_SETTINGS_CHANNEL"`
}
