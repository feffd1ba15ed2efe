// Package zora assembles the ZORA assistant: the remote-agent dispatch layer,
// the tool adapters exposed to the agent engine, the conversation memory
// store, and the inbound agent-to-agent endpoint.
package zora

import (
	"context"
	"fmt"
	"net/http"

	"github.com/NIHAAL084/ultimate-ai-assistant/a2aserver"
	"github.com/NIHAAL084/ultimate-ai-assistant/config"
	"github.com/NIHAAL084/ultimate-ai-assistant/entity"
	"github.com/NIHAAL084/ultimate-ai-assistant/errors"
	"github.com/NIHAAL084/ultimate-ai-assistant/internal/mylog"
	"github.com/NIHAAL084/ultimate-ai-assistant/memory"
	"github.com/NIHAAL084/ultimate-ai-assistant/network"
	"github.com/NIHAAL084/ultimate-ai-assistant/tool"
	"github.com/firebase/genkit/go/genkit"
)

type (
	Zora struct {
		logger *mylog.Logger

		logConfig    *config.LogConfig
		a2aConfig    *config.A2AConfig
		serverConfig *config.ServerConfig
		memoryConfig *config.MemoryConfig

		card   *entity.AgentCard
		runner a2aserver.Runner

		networkService network.Service
		memoryService  memory.Service
		toolManager    tool.Manager
	}

	Option func(*Zora)
)

func WithLogger(logger *mylog.Logger) Option {
	return func(z *Zora) { z.logger = logger }
}

func WithLogConfig(conf *config.LogConfig) Option {
	return func(z *Zora) { z.logConfig = conf }
}

func WithA2AConfig(conf *config.A2AConfig) Option {
	return func(z *Zora) { z.a2aConfig = conf }
}

func WithServerConfig(conf *config.ServerConfig) Option {
	return func(z *Zora) { z.serverConfig = conf }
}

func WithMemoryConfig(conf *config.MemoryConfig) Option {
	return func(z *Zora) { z.memoryConfig = conf }
}

func WithAgentCard(card *entity.AgentCard) Option {
	return func(z *Zora) { z.card = card }
}

func WithRunner(runner a2aserver.Runner) Option {
	return func(z *Zora) { z.runner = runner }
}

func WithMemoryService(service memory.Service) Option {
	return func(z *Zora) { z.memoryService = service }
}

// New wires the assistant together. Construction is explicit: every service
// is built once here and injected downward, so there is no process-global
// state to reset between tests.
func New(ctx context.Context, optionFuncs ...Option) (*Zora, error) {
	z := &Zora{}
	for _, f := range optionFuncs {
		f(z)
	}

	var err error
	if z.logConfig == nil {
		if z.logConfig, err = config.ResolveLogConfig(); err != nil {
			return nil, err
		}
	}
	if z.a2aConfig == nil {
		if z.a2aConfig, err = config.ResolveA2AConfig(); err != nil {
			return nil, err
		}
	}
	if z.serverConfig == nil {
		if z.serverConfig, err = config.ResolveServerConfig(); err != nil {
			return nil, err
		}
	}
	if z.memoryConfig == nil {
		if z.memoryConfig, err = config.ResolveMemoryConfig(); err != nil {
			return nil, err
		}
	}

	if z.logger == nil {
		z.logger = mylog.NewLogger(z.logConfig.LogLevel, z.logConfig.LogHandler)
	}
	if z.card == nil {
		z.card = DefaultAgentCard(z.a2aConfig.ExternalURL)
	}
	if z.runner == nil {
		z.logger.Warn("no agent engine attached, inbound turns will be echoed")
		z.runner = a2aserver.EchoRunner()
	}

	z.networkService = network.NewService(z.logger, z.a2aConfig)

	if z.memoryService == nil && z.memoryConfig.SqliteEnabled {
		service, err := memory.NewSqliteService(z.memoryConfig, z.logger)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create memory service")
		}
		z.memoryService = service
	}

	g, err := genkit.Init(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to init genkit")
	}

	z.toolManager, err = tool.NewToolManager(ctx, z.logger, g, z.networkService)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create tool manager")
	}

	return z, nil
}

func (z *Zora) Card() *entity.AgentCard {
	return z.card
}

func (z *Zora) NetworkService() network.Service {
	return z.networkService
}

func (z *Zora) MemoryService() memory.Service {
	return z.memoryService
}

func (z *Zora) ToolManager() tool.Manager {
	return z.toolManager
}

// Handler returns the inbound A2A endpoint serving this assistant's card and
// message/send.
func (z *Zora) Handler() http.Handler {
	executor := a2aserver.NewExecutor(z.logger, z.runner, z.serverConfig.DefaultUser)
	return a2aserver.NewHandler(z.logger, z.card, executor)
}

func (z *Zora) Close() {
	if z.toolManager != nil {
		z.toolManager.Close()
	}
	if z.networkService != nil {
		z.networkService.Close()
	}
	if z.memoryService != nil {
		if err := z.memoryService.Close(); err != nil {
			z.logger.Warn("failed to close memory service", mylog.Err(err))
		}
	}
}

// DefaultAgentCard describes this assistant to other agents when no card file
// is supplied.
func DefaultAgentCard(externalURL string) *entity.AgentCard {
	url := externalURL
	if url == "" {
		url = fmt.Sprintf("http://localhost:%d", config.NewServerConfig().Port)
	}

	return &entity.AgentCard{
		Name:        "ZORA",
		Description: "A voice and text AI assistant that coordinates calendar, email and task agents.",
		URL:         url,
		Version:     "1.0.0",
		Capabilities: entity.AgentCapabilities{
			Streaming: true,
		},
		DefaultInputModes:  []string{"text/plain"},
		DefaultOutputModes: []string{"text/plain"},
		Skills: []entity.AgentSkill{
			{
				ID:          "general_assistance",
				Name:        "General Assistance",
				Description: "Answer questions and coordinate work across connected remote agents.",
				Tags:        []string{"assistant", "coordination"},
				Examples:    []string{"What's on my calendar today?", "Summarize my unread email."},
			},
		},
	}
}
