package tool

import (
	"context"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
)

func registerLocalTool[In any, Out any](m *manager, name, description string, fn func(ctx context.Context, input In) (Out, error)) ai.Tool {
	return genkit.DefineTool(
		m.genkit,
		name,
		description,
		func(ctx *ai.ToolContext, input In) (Out, error) {
			return fn(ctx, input)
		},
	)
}
