package a2a_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NIHAAL084/ultimate-ai-assistant/a2a"
	"github.com/NIHAAL084/ultimate-ai-assistant/entity"
	"github.com/stretchr/testify/require"
)

func newPeerServer(t *testing.T, card *entity.AgentCard, handleSend func(params a2a.MessageSendParams) a2a.Response) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc(a2a.WellKnownAgentCardPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(card))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		var req a2a.Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, a2a.MethodMessageSend, req.Method)

		var params a2a.MessageSendParams
		require.NoError(t, json.Unmarshal(req.Params, &params))

		resp := handleSend(params)
		resp.JSONRPC = "2.0"
		resp.ID = req.ID
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestCardResolver(t *testing.T) {
	t.Run("fetches and decodes the card", func(t *testing.T) {
		server := newPeerServer(t, &entity.AgentCard{Name: "calendar", Description: "Calendar agent"}, nil)

		card, err := a2a.NewCardResolver(server.Client(), server.URL).GetAgentCard(context.TODO())
		require.NoError(t, err)
		require.Equal(t, "calendar", card.Name)
		require.Equal(t, "Calendar agent", card.Description)
	})

	t.Run("trailing slash on the base url is tolerated", func(t *testing.T) {
		server := newPeerServer(t, &entity.AgentCard{Name: "calendar"}, nil)

		card, err := a2a.NewCardResolver(server.Client(), server.URL+"/").GetAgentCard(context.TODO())
		require.NoError(t, err)
		require.Equal(t, "calendar", card.Name)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		_, err := a2a.NewCardResolver(server.Client(), server.URL).GetAgentCard(context.TODO())
		require.Error(t, err)
	})

	t.Run("nameless card is an error", func(t *testing.T) {
		server := newPeerServer(t, &entity.AgentCard{Description: "anonymous"}, nil)

		_, err := a2a.NewCardResolver(server.Client(), server.URL).GetAgentCard(context.TODO())
		require.Error(t, err)
	})
}

func TestClientSendMessage(t *testing.T) {
	t.Run("successful exchange returns the task result", func(t *testing.T) {
		server := newPeerServer(t, &entity.AgentCard{Name: "calendar"}, func(params a2a.MessageSendParams) a2a.Response {
			require.Equal(t, a2a.RoleUser, params.Message.Role)
			require.Len(t, params.Message.Parts, 1)
			require.Equal(t, "what's today?", params.Message.Parts[0].Text)

			return a2a.Response{Result: &a2a.Task{
				ID:   "t1",
				Kind: a2a.KindTask,
				Status: a2a.TaskStatus{
					State: a2a.TaskStateCompleted,
				},
				Artifacts: []a2a.Artifact{{
					Parts: []a2a.Part{a2a.NewTextPart("nothing scheduled")},
				}},
			}}
		})

		client := a2a.NewClient(server.URL, server.Client())
		resp, err := client.SendMessage(context.TODO(), &a2a.SendMessageRequest{
			ID: "req-1",
			Params: a2a.MessageSendParams{
				Message: a2a.Message{
					Role:      a2a.RoleUser,
					Parts:     []a2a.Part{a2a.NewTextPart("what's today?")},
					MessageID: "m1",
				},
			},
		})
		require.NoError(t, err)
		require.Nil(t, resp.Error)

		task, ok := a2a.NormalizeTask(resp.Result)
		require.True(t, ok)
		require.Equal(t, "t1", task.ID)
		require.Equal(t, "nothing scheduled", task.Artifacts[0].Parts[0].Text)
	})

	t.Run("peer error comes back as a response error", func(t *testing.T) {
		server := newPeerServer(t, &entity.AgentCard{Name: "calendar"}, func(a2a.MessageSendParams) a2a.Response {
			return a2a.Response{Error: &a2a.ResponseError{
				Code:    a2a.CodeInternalError,
				Message: "model unavailable",
			}}
		})

		client := a2a.NewClient(server.URL, server.Client())
		resp, err := client.SendMessage(context.TODO(), &a2a.SendMessageRequest{ID: "req-2"})
		require.NoError(t, err)
		require.NotNil(t, resp.Error)
		require.Equal(t, a2a.CodeInternalError, resp.Error.Code)
		require.Equal(t, "model unavailable", resp.Error.Message)
	})

	t.Run("unreachable peer is a transport error", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		client := a2a.NewClient(url, &http.Client{})
		_, err := client.SendMessage(context.TODO(), &a2a.SendMessageRequest{ID: "req-3"})
		require.Error(t, err)
	})
}
