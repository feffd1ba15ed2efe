package config

type MemoryConfig struct {
	SqliteEnabled bool   `env:"MEMORY_SQLITE_ENABLED"`
	SqlitePath    string `env:"MEMORY_SQLITE_PATH"`
}

func NewMemoryConfig() *MemoryConfig {
	return &MemoryConfig{
		SqliteEnabled: true,
		SqlitePath:    ".data/memory.db",
	}
}

func ResolveMemoryConfig() (*MemoryConfig, error) {
	conf := NewMemoryConfig()
	return conf, resolveConfig(conf, false)
}
