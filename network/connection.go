// Package network is the remote-agent connection and dispatch layer: it
// discovers peers from candidate addresses, keeps one connection per
// discovered identity, and routes conversational turns to the right peer with
// per-address failure isolation.
package network

import (
	"context"
	"net/http"
	"time"

	"github.com/NIHAAL084/ultimate-ai-assistant/a2a"
	"github.com/NIHAAL084/ultimate-ai-assistant/entity"
)

type (
	// Connection is one live channel to one remote agent. The registry owns
	// every connection it hands out; callers must not Close one themselves.
	Connection interface {
		Card() *entity.AgentCard
		SendMessage(ctx context.Context, req *a2a.SendMessageRequest) (*a2a.SendMessageResponse, error)
		Close() error
	}

	remoteConnection struct {
		card       *entity.AgentCard
		baseURL    string
		httpClient *http.Client
		client     *a2a.Client
	}
)

var (
	_ Connection = (*remoteConnection)(nil)
)

// NewRemoteConnection binds a transport to the given base URL. Every call
// through the connection carries the given timeout.
func NewRemoteConnection(card *entity.AgentCard, baseURL string, timeout time.Duration) Connection {
	httpClient := &http.Client{Timeout: timeout}
	return &remoteConnection{
		card:       card,
		baseURL:    baseURL,
		httpClient: httpClient,
		client:     a2a.NewClient(baseURL, httpClient),
	}
}

func (c *remoteConnection) Card() *entity.AgentCard {
	return c.card
}

// SendMessage forwards the envelope verbatim and returns the decoded reply.
// No retries happen here; retry policy belongs to the caller.
func (c *remoteConnection) SendMessage(ctx context.Context, req *a2a.SendMessageRequest) (*a2a.SendMessageResponse, error) {
	return c.client.SendMessage(ctx, req)
}

// Close releases the transport. Safe to call more than once, or never.
func (c *remoteConnection) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
