package tool

import (
	"context"

	"github.com/NIHAAL084/ultimate-ai-assistant/internal/mylog"
	"github.com/NIHAAL084/ultimate-ai-assistant/network"
	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
)

type (
	// Manager owns the invocable actions exposed to the agent-execution
	// runtime. Every registered tool returns a string and never an error:
	// a peer-communication failure must not crash the surrounding agent
	// turn.
	Manager interface {
		GetTool(toolName string) ai.Tool
		Close()
	}

	manager struct {
		logger         *mylog.Logger
		genkit         *genkit.Genkit
		networkService network.Service
	}
)

var (
	_ Manager = (*manager)(nil)
)

func NewToolManager(ctx context.Context, logger *mylog.Logger, g *genkit.Genkit, networkService network.Service) (Manager, error) {
	m := &manager{
		logger:         logger,
		genkit:         g,
		networkService: networkService,
	}

	m.registerA2ATools()

	return m, nil
}

func (m *manager) GetTool(toolName string) ai.Tool {
	return genkit.LookupTool(m.genkit, toolName)
}

func (m *manager) Close() {}
