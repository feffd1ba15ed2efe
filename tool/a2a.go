package tool

import (
	"context"
	"fmt"

	"github.com/NIHAAL084/ultimate-ai-assistant/errors"
	"github.com/NIHAAL084/ultimate-ai-assistant/internal/mylog"
	"github.com/NIHAAL084/ultimate-ai-assistant/network"
)

type (
	ListAvailableAgentsRequest struct{}

	SendMessageToAgentRequest struct {
		AgentName string `json:"agent_name" jsonschema:"required,description=The name of the agent to send the message to"`
		Message   string `json:"message" jsonschema:"required,description=The message content to send"`
		ContextID string `json:"context_id,omitempty" jsonschema:"description=Conversation context id for continuing a multi-turn exchange"`
		TaskID    string `json:"task_id,omitempty" jsonschema:"description=Task id of an exchange being continued"`
	}

	GetAgentCapabilitiesRequest struct {
		AgentName string `json:"agent_name" jsonschema:"required,description=The name of the agent to get information about"`
	}

	DiscoverNewAgentsRequest struct {
		AgentURLs []string `json:"agent_urls" jsonschema:"required,description=Base URLs where A2A agents might be running"`
	}
)

// registerA2ATools exposes the dispatch facade's four operations to the agent
// loop. Only PeerNotFoundError crosses the facade boundary as an error; it is
// folded into the result text here so the calling agent can read the valid
// names and retry.
func (m *manager) registerA2ATools() {
	registerLocalTool(m, "list_available_agents",
		"List all available A2A agents that ZORA can communicate with, including their descriptions and skills.",
		func(ctx context.Context, _ ListAvailableAgentsRequest) (string, error) {
			return m.networkService.ListAgents(ctx), nil
		})

	registerLocalTool(m, "send_message_to_agent",
		"Send a message to another A2A agent and get their response.",
		func(ctx context.Context, req SendMessageToAgentRequest) (string, error) {
			var opts *network.SendOptions
			if req.ContextID != "" || req.TaskID != "" {
				opts = &network.SendOptions{ContextID: req.ContextID, TaskID: req.TaskID}
			}

			res, err := m.networkService.SendMessage(ctx, req.AgentName, req.Message, opts)
			if err != nil {
				var notFound *network.PeerNotFoundError
				if errors.As(err, &notFound) {
					return notFound.Error(), nil
				}
				m.logger.Error("send_message_to_agent failed", "agent", req.AgentName, mylog.Err(err))
				return fmt.Sprintf("Error communicating with %s: %v", req.AgentName, err), nil
			}
			// Attribute the reply so the calling agent knows who answered.
			return fmt.Sprintf("Response from %s:\n\n%s", req.AgentName, res), nil
		})

	registerLocalTool(m, "get_agent_capabilities",
		"Get detailed information about a specific A2A agent's capabilities and skills.",
		func(ctx context.Context, req GetAgentCapabilitiesRequest) (string, error) {
			return m.networkService.GetCapabilities(ctx, req.AgentName), nil
		})

	registerLocalTool(m, "discover_new_agents",
		"Discover and connect to new A2A agents at the specified URLs.",
		func(ctx context.Context, req DiscoverNewAgentsRequest) (string, error) {
			return m.networkService.DiscoverAgents(ctx, req.AgentURLs), nil
		})
}
