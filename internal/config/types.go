package config

// SessionStoreType selects where per-browser view state is kept.
type SessionStoreType string

const (
	SessionStoreMemory SessionStoreType = "memory"
	SessionStoreRedis  SessionStoreType = "redis"
)

// LogFormat selects the zerolog writer.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// Config is the top-level zenmed configuration, corresponding to zenmed.yml.
type Config struct {
	Addr      string        `yaml:"addr" koanf:"addr"`
	Port      int           `yaml:"port" koanf:"port"`
	LogLevel  string        `yaml:"log_level" koanf:"log_level"`
	LogFormat LogFormat     `yaml:"log_format" koanf:"log_format"`
	Session   SessionConfig `yaml:"session" koanf:"session"`
	Redis     RedisConfig   `yaml:"redis" koanf:"redis"`
	Metrics   MetricsConfig `yaml:"metrics" koanf:"metrics"`
	CORS      CORSConfig    `yaml:"cors" koanf:"cors"`
}

// SessionConfig controls the view-state session cookie and its backing store.
type SessionConfig struct {
	Store        SessionStoreType `yaml:"store" koanf:"store"`
	TTLMinutes   int              `yaml:"ttl_minutes" koanf:"ttl_minutes"`
	CookieName   string           `yaml:"cookie_name" koanf:"cookie_name"`
	SecureCookie bool             `yaml:"secure_cookie" koanf:"secure_cookie"`
}

// RedisConfig holds connection settings for the redis session store.
type RedisConfig struct {
	Address  string `yaml:"address" koanf:"address"`
	Password string `yaml:"password" koanf:"password"`
	DB       int    `yaml:"db" koanf:"db"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled" koanf:"enabled"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"`
}
