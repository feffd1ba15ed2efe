package network

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/NIHAAL084/ultimate-ai-assistant/a2a"
	"github.com/NIHAAL084/ultimate-ai-assistant/config"
	"github.com/NIHAAL084/ultimate-ai-assistant/errors"
	"github.com/NIHAAL084/ultimate-ai-assistant/internal/mylog"
	"github.com/google/uuid"
)

// MsgNoAgentsAvailable is the ListAgents reply when the registry is empty.
const MsgNoAgentsAvailable = "No A2A agents are currently available for communication."

type (
	// Service is the single entry point used by the tool-call adapters.
	// Every operation hands back user-facing text; only SendMessage can
	// return an error, and only a *PeerNotFoundError, so the adapter can
	// word a correction prompt for the calling agent. Transport and decode
	// failures never escape as errors.
	Service interface {
		ListAgents(ctx context.Context) string
		SendMessage(ctx context.Context, agentName, message string, opts *SendOptions) (string, error)
		GetCapabilities(ctx context.Context, agentName string) string
		DiscoverAgents(ctx context.Context, urls []string) string
		Close()
	}

	// SendOptions threads a multi-turn exchange together. Zero values mean
	// "start fresh": a missing context id is generated per request.
	SendOptions struct {
		ContextID string
		TaskID    string
	}

	service struct {
		logger   *mylog.Logger
		conf     *config.A2AConfig
		registry *Registry

		// initOnce runs the initial discovery the first time any operation
		// is used. The transition is one-way for the process lifetime.
		initOnce sync.Once
	}
)

var (
	_ Service = (*service)(nil)
)

// PeerNotFoundError reports an unknown peer name along with every name that
// would have been valid, so an LLM caller can self-correct.
type PeerNotFoundError struct {
	Name      string
	Available []string
}

func (e *PeerNotFoundError) Error() string {
	return fmt.Sprintf("agent %q not found. Available agents: %s", e.Name, strings.Join(e.Available, ", "))
}

// NewService builds the dispatch facade. The registry starts empty; the
// configured candidate list is probed lazily on first use when discovery is
// enabled.
func NewService(logger *mylog.Logger, conf *config.A2AConfig) Service {
	return &service{
		logger:   logger,
		conf:     conf,
		registry: NewRegistry(logger, conf.Timeout()),
	}
}

// NewServiceWithRegistry injects a pre-built registry. Used by tests and by
// callers that manage discovery themselves; lazy first-use discovery still
// applies.
func NewServiceWithRegistry(logger *mylog.Logger, conf *config.A2AConfig, registry *Registry) Service {
	return &service{
		logger:   logger,
		conf:     conf,
		registry: registry,
	}
}

func (s *service) ensureInitialized(ctx context.Context) {
	s.initOnce.Do(func() {
		if !s.conf.DiscoveryEnabled {
			s.logger.Info("automatic agent discovery is disabled")
			return
		}
		// Discovery failures are logged inside Discover; the service is
		// initialized either way, possibly with zero known peers.
		s.registry.Discover(ctx, s.conf.AgentURLList())
	})
}

func (s *service) ListAgents(ctx context.Context) string {
	s.ensureInitialized(ctx)

	names := s.registry.AgentNames()
	if len(names) == 0 {
		return MsgNoAgentsAvailable
	}

	return fmt.Sprintf("Available A2A agents (%d):\n\n%s", len(names), s.registry.DescribeAgents())
}

func (s *service) SendMessage(ctx context.Context, agentName, message string, opts *SendOptions) (string, error) {
	s.ensureInitialized(ctx)

	conn, ok := s.registry.GetConnection(agentName)
	if !ok {
		return "", errors.WithStack(&PeerNotFoundError{
			Name:      agentName,
			Available: s.registry.AgentNames(),
		})
	}

	req, err := newSendMessageRequest(message, opts)
	if err != nil {
		s.logger.Error("failed to encode outbound message", "agent", agentName, mylog.Err(err))
		return fmt.Sprintf("Error communicating with %s: %v", agentName, err), nil
	}
	s.logger.Info("sending message to remote agent",
		"agent", agentName,
		"requestId", req.ID,
		"contextId", req.Params.Message.ContextID,
	)

	resp, err := s.sendWithRetry(ctx, agentName, conn, req)
	if err != nil {
		s.logger.Error("failed to send message to remote agent", "agent", agentName, mylog.Err(err))
		return fmt.Sprintf("Error communicating with %s: %v", agentName, err), nil
	}
	if resp.Error != nil {
		s.logger.Error("remote agent reported an error",
			"agent", agentName,
			"code", resp.Error.Code,
			"message", resp.Error.Message,
		)
		return fmt.Sprintf("Error communicating with %s: %s", agentName, resp.Error.Message), nil
	}

	task, ok := a2a.NormalizeTask(resp.Result)
	if !ok {
		s.logger.Warn("received a non-task response", "agent", agentName)
		return fmt.Sprintf("No response received from %s.", agentName), nil
	}

	text := extractTaskText(task)
	if text == "" {
		return fmt.Sprintf("Received response from %s but it contained no text content.", agentName), nil
	}

	s.logger.Info("received response from remote agent", "agent", agentName, "task", task.ID)
	return text, nil
}

func (s *service) GetCapabilities(ctx context.Context, agentName string) string {
	s.ensureInitialized(ctx)

	card, ok := s.registry.GetCard(agentName)
	if !ok {
		return fmt.Sprintf("Agent %q not found. Available agents: %s",
			agentName, strings.Join(s.registry.AgentNames(), ", "))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Agent: %s\n", card.Name)
	fmt.Fprintf(&b, "Description: %s\n", card.Description)
	fmt.Fprintf(&b, "URL: %s\n", card.URL)
	fmt.Fprintf(&b, "Version: %s\n", card.Version)
	fmt.Fprintf(&b, "Capabilities: Streaming=%t\n", card.Capabilities.Streaming)

	if len(card.Skills) > 0 {
		fmt.Fprintf(&b, "\nSkills (%d):\n", len(card.Skills))
		for _, skill := range card.Skills {
			fmt.Fprintf(&b, "  - %s: %s\n", skill.Name, skill.Description)
			if len(skill.Examples) > 0 {
				fmt.Fprintf(&b, "    Examples: %s\n", strings.Join(skill.Examples, ", "))
			}
		}
	}

	return b.String()
}

func (s *service) DiscoverAgents(ctx context.Context, urls []string) string {
	s.ensureInitialized(ctx)

	before := s.registry.Len()
	s.registry.Discover(ctx, urls)
	after := s.registry.Len()

	if newAgents := after - before; newAgents > 0 {
		return fmt.Sprintf("Successfully discovered %d new agents. Now connected to %d total agents: %s",
			newAgents, after, strings.Join(s.registry.AgentNames(), ", "))
	}
	return fmt.Sprintf("No new agents found at the provided URLs. Still connected to %d agents.", after)
}

// Close tears down every peer connection and empties the registry.
func (s *service) Close() {
	s.registry.CloseAll()
}

// sendWithRetry bounds the transport call by the configured attempt count.
// Peer-reported errors are replies, not transport failures, and are returned
// untouched without another attempt.
func (s *service) sendWithRetry(ctx context.Context, agentName string, conn Connection, req *a2a.SendMessageRequest) (resp *a2a.SendMessageResponse, err error) {
	attempts := s.conf.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		resp, err = conn.SendMessage(ctx, req)
		if err == nil {
			return resp, nil
		}
		s.logger.Warn("message/send attempt failed",
			"agent", agentName,
			"attempt", attempt,
			"maxAttempts", attempts,
			mylog.Err(err),
		)
		if ctx.Err() != nil {
			break
		}
	}

	return nil, err
}

func newSendMessageRequest(message string, opts *SendOptions) (*a2a.SendMessageRequest, error) {
	var contextID, taskID string
	if opts != nil {
		contextID = opts.ContextID
		taskID = opts.TaskID
	}
	if contextID == "" {
		contextID = uuid.NewString()
	}

	parts, err := a2a.ConvertContentPartsToA2A([]a2a.ContentPart{
		a2a.NewTextContentPart(message),
	})
	if err != nil {
		return nil, err
	}

	return &a2a.SendMessageRequest{
		ID: uuid.NewString(),
		Params: a2a.MessageSendParams{
			Message: a2a.Message{
				Role:      a2a.RoleUser,
				Parts:     parts,
				MessageID: uuid.NewString(),
				ContextID: contextID,
				TaskID:    taskID,
			},
		},
	}, nil
}

// extractTaskText flattens every part of every artifact into one newline
// joined string. The task has been through NormalizeTask, so its parts are
// typed even when the reply arrived as raw maps.
func extractTaskText(task *a2a.Task) string {
	var texts []string
	for _, artifact := range task.Artifacts {
		for _, part := range artifact.Parts {
			if part.Text != "" {
				texts = append(texts, part.Text)
			}
		}
	}
	return strings.TrimSpace(strings.Join(texts, "\n"))
}
