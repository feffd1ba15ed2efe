package config_test

import (
	"testing"
	"time"

	"github.com/NIHAAL084/ultimate-ai-assistant/config"
	"github.com/stretchr/testify/require"
)

func TestA2AConfigDefaults(t *testing.T) {
	conf := config.NewA2AConfig()
	require.True(t, conf.DiscoveryEnabled)
	require.Equal(t, 30*time.Second, conf.Timeout())
	require.Equal(t, 3, conf.RetryAttempts)
}

func TestAgentURLList(t *testing.T) {
	t.Run("configured list is split and trimmed", func(t *testing.T) {
		conf := config.NewA2AConfig()
		conf.AgentURLs = "http://a:1, http://b:2 ,,http://c:3"
		require.Equal(t, []string{"http://a:1", "http://b:2", "http://c:3"}, conf.AgentURLList())
	})

	t.Run("defaults apply when nothing is configured", func(t *testing.T) {
		conf := config.NewA2AConfig()
		require.Equal(t, []string{
			"http://localhost:10002",
			"http://localhost:10004",
			"http://localhost:10005",
		}, conf.AgentURLList())
	})

	t.Run("external url joins the default list first", func(t *testing.T) {
		conf := config.NewA2AConfig()
		conf.ExternalURL = "http://zora.example.com"
		urls := conf.AgentURLList()
		require.Len(t, urls, 4)
		require.Equal(t, "http://zora.example.com", urls[0])
	})
}

func TestResolveA2AConfigReadsEnvironment(t *testing.T) {
	t.Setenv("A2A_AGENT_URLS", "http://peer:9999")
	t.Setenv("A2A_CONNECTION_TIMEOUT", "5")
	t.Setenv("A2A_RETRY_ATTEMPTS", "1")
	t.Setenv("A2A_DISCOVERY_ENABLED", "false")

	conf, err := config.ResolveA2AConfig()
	require.NoError(t, err)
	require.Equal(t, []string{"http://peer:9999"}, conf.AgentURLList())
	require.Equal(t, 5*time.Second, conf.Timeout())
	require.Equal(t, 1, conf.RetryAttempts)
	require.False(t, conf.DiscoveryEnabled)
}
