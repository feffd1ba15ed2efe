package config

type LogConfig struct {
	LogLevel   string `env:"LOG_LEVEL"`
	LogHandler string `env:"LOG_HANDLER"`
}

func NewLogConfig() *LogConfig {
	return &LogConfig{
		LogLevel:   "info",
		LogHandler: "default",
	}
}

// ResolveLogConfig returns the defaults overridden by the process
// environment (and .env files, when present).
func ResolveLogConfig() (*LogConfig, error) {
	conf := NewLogConfig()
	return conf, resolveConfig(conf, false)
}
