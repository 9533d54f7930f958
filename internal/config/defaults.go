package config

import "time"

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "zenmed.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Addr:      "",
		Port:      8080,
		LogLevel:  "info",
		LogFormat: LogFormatConsole,
		Session: SessionConfig{
			Store:      SessionStoreMemory,
			TTLMinutes: 30,
			CookieName: "zenmed_session",
		},
		Redis: RedisConfig{
			Address: "localhost:6379",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// SessionTTL returns the idle lifetime of a session.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}
