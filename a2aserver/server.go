package a2aserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/NIHAAL084/ultimate-ai-assistant/a2a"
	"github.com/NIHAAL084/ultimate-ai-assistant/entity"
	"github.com/NIHAAL084/ultimate-ai-assistant/errors"
	"github.com/NIHAAL084/ultimate-ai-assistant/internal/mylog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type server struct {
	logger   *mylog.Logger
	card     *entity.AgentCard
	executor *Executor
}

// NewHandler serves the agent card at the well-known path, message/send at
// the root, and a health probe. Panics in the executor are recovered and
// logged rather than tearing the listener down.
func NewHandler(logger *mylog.Logger, card *entity.AgentCard, executor *Executor) http.Handler {
	s := &server{
		logger:   logger,
		card:     card,
		executor: executor,
	}

	router := mux.NewRouter()
	router.HandleFunc(a2a.WellKnownAgentCardPath, s.handleAgentCard).Methods(http.MethodGet)
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/", s.handleJSONRPC).Methods(http.MethodPost)

	return newRecoveryHandler(logger)(router)
}

func newRecoveryHandler(logger *mylog.Logger) func(http.Handler) http.Handler {
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError)),
		handlers.PrintRecoveryStack(true),
	)
}

func (s *server) handleAgentCard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.card); err != nil {
		s.logger.Warn("failed to write agent card", mylog.Err(err))
	}
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		s.logger.Warn("failed to write health response", mylog.Err(err))
	}
}

func (s *server) handleJSONRPC(w http.ResponseWriter, r *http.Request) {
	var req a2a.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, nil, a2a.CodeParseError, "failed to parse request")
		return
	}

	if req.Method != a2a.MethodMessageSend {
		s.writeError(w, req.ID, a2a.CodeMethodNotFound, "method not found: "+req.Method)
		return
	}

	var params a2a.MessageSendParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		s.writeError(w, req.ID, a2a.CodeInvalidParams, "invalid message/send params")
		return
	}

	task, err := s.executor.Execute(r.Context(), &params.Message)
	if err != nil {
		s.logger.Error("message/send failed", "method", req.Method, mylog.Err(err))
		if errors.Is(err, errors.ErrInvalidRequest) {
			s.writeError(w, req.ID, a2a.CodeInvalidRequest, err.Error())
		} else {
			s.writeError(w, req.ID, a2a.CodeInternalError, err.Error())
		}
		return
	}

	s.writeResponse(w, a2a.Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  task,
	})
}

func (s *server) writeError(w http.ResponseWriter, id any, code int, message string) {
	s.writeResponse(w, a2a.Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &a2a.ResponseError{
			Code:    code,
			Message: message,
		},
	})
}

func (s *server) writeResponse(w http.ResponseWriter, resp a2a.Response) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Warn("failed to write jsonrpc response", mylog.Err(err))
	}
}
