package config

type ServerConfig struct {
	Host string `env:"HOST"`
	Port int    `env:"PORT"`
	// DefaultUser attributes inbound agent-to-agent turns that carry no user
	// identity of their own.
	DefaultUser string `env:"A2A_SERVER_DEFAULT_USER"`
}

func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Host:        "0.0.0.0",
		Port:        8001,
		DefaultUser: "a2a_client",
	}
}

func ResolveServerConfig() (*ServerConfig, error) {
	conf := NewServerConfig()
	return conf, resolveConfig(conf, false)
}
