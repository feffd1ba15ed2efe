package config

import (
	"strings"
	"time"
)

// A2AConfig drives the remote-agent connection layer: which peers to probe,
// whether to probe them automatically, and how patient to be with each one.
type A2AConfig struct {
	// AgentURLs is a comma-separated list of candidate peer base URLs. When
	// empty, a built-in default list is used instead (see AgentURLList).
	AgentURLs string `env:"A2A_AGENT_URLS"`
	// DiscoveryEnabled controls whether the first use of the dispatch layer
	// probes the candidate list automatically.
	DiscoveryEnabled bool `env:"A2A_DISCOVERY_ENABLED"`
	// ConnectionTimeout bounds every discovery fetch and message/send call,
	// in seconds.
	ConnectionTimeout int `env:"A2A_CONNECTION_TIMEOUT"`
	// RetryAttempts bounds how many times a message/send is attempted
	// against an established peer before giving up.
	RetryAttempts int `env:"A2A_RETRY_ATTEMPTS"`
	// ExternalURL is this process's own externally-reachable base URL. It is
	// advertised in our agent card and included in the default candidate
	// list so a fresh deployment can talk to itself.
	ExternalURL string `env:"A2A_EXTERNAL_URL"`
}

func NewA2AConfig() *A2AConfig {
	return &A2AConfig{
		DiscoveryEnabled:  true,
		ConnectionTimeout: 30,
		RetryAttempts:     3,
	}
}

func ResolveA2AConfig() (*A2AConfig, error) {
	conf := NewA2AConfig()
	return conf, resolveConfig(conf, false)
}

// AgentURLList splits the configured candidate addresses, falling back to the
// built-in defaults when none are configured.
func (c *A2AConfig) AgentURLList() []string {
	if c.AgentURLs != "" {
		var urls []string
		for _, url := range strings.Split(c.AgentURLs, ",") {
			if url = strings.TrimSpace(url); url != "" {
				urls = append(urls, url)
			}
		}
		return urls
	}

	var urls []string
	if c.ExternalURL != "" {
		urls = append(urls, c.ExternalURL)
	}
	return append(urls,
		"http://localhost:10002",
		"http://localhost:10004",
		"http://localhost:10005",
	)
}

// Timeout returns the connection timeout as a duration.
func (c *A2AConfig) Timeout() time.Duration {
	return time.Duration(c.ConnectionTimeout) * time.Second
}
