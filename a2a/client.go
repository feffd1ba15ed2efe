package a2a

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/NIHAAL084/ultimate-ai-assistant/entity"
	"github.com/NIHAAL084/ultimate-ai-assistant/errors"
	"github.com/ybbus/jsonrpc/v3"
)

// CardResolver fetches an agent card from the well-known path under a base
// URL.
type CardResolver struct {
	httpClient *http.Client
	baseURL    string
}

func NewCardResolver(httpClient *http.Client, baseURL string) *CardResolver {
	return &CardResolver{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// GetAgentCard retrieves and decodes the card. The returned card's name is
// the identity the registry keys connections by.
func (r *CardResolver) GetAgentCard(ctx context.Context) (*entity.AgentCard, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+WellKnownAgentCardPath, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build agent card request for %s", r.baseURL)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch agent card from %s", r.baseURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(errors.ErrInvalidRequest, "agent card fetch from %s returned %s", r.baseURL, resp.Status)
	}

	var card entity.AgentCard
	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		return nil, errors.Wrapf(err, "failed to decode agent card from %s", r.baseURL)
	}
	if card.Name == "" {
		return nil, errors.Wrapf(errors.ErrInvalidRequest, "agent card from %s has no name", r.baseURL)
	}

	return &card, nil
}

// Client performs message/send exchanges with one remote agent over JSON-RPC.
type Client struct {
	rpc jsonrpc.RPCClient
}

func NewClient(url string, httpClient *http.Client) *Client {
	return &Client{
		rpc: jsonrpc.NewClientWithOpts(url, &jsonrpc.RPCClientOpts{
			HTTPClient: httpClient,
		}),
	}
}

// SendMessage forwards the envelope and returns the decoded reply. An error
// return means the transport failed; a peer-reported failure comes back as
// SendMessageResponse.Error. The result payload is not interpreted here.
func (c *Client) SendMessage(ctx context.Context, req *SendMessageRequest) (*SendMessageResponse, error) {
	resp, err := c.rpc.Call(ctx, MethodMessageSend, &req.Params)
	if err != nil {
		return nil, errors.Wrapf(err, "message/send call failed (request %s)", req.ID)
	}

	if resp.Error != nil {
		return &SendMessageResponse{
			Error: &ResponseError{
				Code:    resp.Error.Code,
				Message: resp.Error.Message,
				Data:    resp.Error.Data,
			},
		}, nil
	}

	return &SendMessageResponse{Result: resp.Result}, nil
}
