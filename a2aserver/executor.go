// Package a2aserver publishes ZORA itself as an A2A peer: an agent card at
// the well-known path and a JSON-RPC message/send endpoint that feeds inbound
// turns to the agent engine.
package a2aserver

import (
	"context"
	"time"

	"github.com/NIHAAL084/ultimate-ai-assistant/a2a"
	"github.com/NIHAAL084/ultimate-ai-assistant/errors"
	"github.com/NIHAAL084/ultimate-ai-assistant/internal/mylog"
	"github.com/google/uuid"
)

// fallbackResponseText is returned when the engine produced no parts at all,
// so a peer always gets something readable back.
const fallbackResponseText = "I'm sorry, I couldn't generate a proper response. Please try again."

type (
	// Runner is the opaque agent-execution capability: one user turn in,
	// the response parts out. The LLM loop behind it is not this package's
	// concern.
	Runner interface {
		Run(ctx context.Context, req *RunRequest) (*RunResponse, error)
	}

	// RunnerFunc adapts a plain function to the Runner interface.
	RunnerFunc func(ctx context.Context, req *RunRequest) (*RunResponse, error)

	RunRequest struct {
		UserID    string
		ContextID string
		Parts     []a2a.ContentPart
	}

	RunResponse struct {
		Parts []a2a.ContentPart
	}

	// Executor bridges one inbound wire message to the Runner and wraps the
	// reply in a completed task.
	Executor struct {
		logger *mylog.Logger
		runner Runner
		// userID attributes inbound turns that carry no identity.
		userID string
	}
)

func (f RunnerFunc) Run(ctx context.Context, req *RunRequest) (*RunResponse, error) {
	return f(ctx, req)
}

// EchoRunner answers every turn with the inbound text parts unchanged. It
// stands in wherever no agent engine has been attached, including tests.
func EchoRunner() Runner {
	return RunnerFunc(func(_ context.Context, req *RunRequest) (*RunResponse, error) {
		resp := &RunResponse{}
		for _, part := range req.Parts {
			if part.Text != "" {
				resp.Parts = append(resp.Parts, a2a.NewTextContentPart(part.Text))
			}
		}
		return resp, nil
	})
}

func NewExecutor(logger *mylog.Logger, runner Runner, userID string) *Executor {
	return &Executor{
		logger: logger,
		runner: runner,
		userID: userID,
	}
}

// Execute converts the inbound message to engine content, runs one turn, and
// returns the completed task carrying the converted reply as one artifact.
func (e *Executor) Execute(ctx context.Context, msg *a2a.Message) (*a2a.Task, error) {
	parts, err := a2a.ConvertA2APartsToContent(msg.Parts)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidRequest, "failed to convert message parts: %v", err)
	}

	contextID := msg.ContextID
	if contextID == "" {
		contextID = uuid.NewString()
	}

	e.logger.Info("executing inbound turn",
		"contextId", contextID,
		"messageId", msg.MessageID,
		"parts", len(parts),
	)

	resp, err := e.runner.Run(ctx, &RunRequest{
		UserID:    e.userID,
		ContextID: contextID,
		Parts:     parts,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "agent run failed")
	}

	out, err := a2a.ConvertContentPartsToA2A(resp.Parts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to convert response parts")
	}
	if len(out) == 0 {
		e.logger.Warn("engine produced no response parts, using fallback", "contextId", contextID)
		out = []a2a.Part{a2a.NewTextPart(fallbackResponseText)}
	}

	taskID := msg.TaskID
	if taskID == "" {
		taskID = uuid.NewString()
	}

	return &a2a.Task{
		ID:        taskID,
		ContextID: contextID,
		Kind:      a2a.KindTask,
		Status: a2a.TaskStatus{
			State:     a2a.TaskStateCompleted,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
		Artifacts: []a2a.Artifact{{
			ArtifactID: uuid.NewString(),
			Parts:      out,
		}},
	}, nil
}
