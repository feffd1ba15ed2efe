package a2aserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NIHAAL084/ultimate-ai-assistant/a2a"
	"github.com/NIHAAL084/ultimate-ai-assistant/a2aserver"
	"github.com/NIHAAL084/ultimate-ai-assistant/entity"
	"github.com/NIHAAL084/ultimate-ai-assistant/errors"
	"github.com/NIHAAL084/ultimate-ai-assistant/internal/mylog"
	"github.com/stretchr/testify/suite"
)

type ServerTestSuite struct {
	suite.Suite
	context.Context

	card   *entity.AgentCard
	server *httptest.Server
}

func (s *ServerTestSuite) SetupTest() {
	s.Context = context.TODO()

	logger := mylog.NewLogger("error", "text")
	s.card = &entity.AgentCard{
		Name:        "zora",
		Description: "Test assistant",
		Version:     "1.0.0",
	}
	executor := a2aserver.NewExecutor(logger, a2aserver.EchoRunner(), "a2a_client")
	s.server = httptest.NewServer(a2aserver.NewHandler(logger, s.card, executor))
}

func (s *ServerTestSuite) TearDownTest() {
	s.server.Close()
}

func TestServer(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) call(req a2a.Request) a2a.Response {
	body, err := json.Marshal(req)
	s.Require().NoError(err)

	httpResp, err := s.server.Client().Post(s.server.URL+"/", "application/json", bytes.NewReader(body))
	s.Require().NoError(err)
	defer httpResp.Body.Close()

	var resp a2a.Response
	s.Require().NoError(json.NewDecoder(httpResp.Body).Decode(&resp))
	return resp
}

func (s *ServerTestSuite) sendMessage(msg a2a.Message) a2a.Response {
	params, err := json.Marshal(a2a.MessageSendParams{Message: msg})
	s.Require().NoError(err)

	return s.call(a2a.Request{
		JSONRPC: "2.0",
		ID:      float64(1),
		Method:  a2a.MethodMessageSend,
		Params:  params,
	})
}

func (s *ServerTestSuite) TestAgentCard() {
	resp, err := s.server.Client().Get(s.server.URL + a2a.WellKnownAgentCardPath)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var card entity.AgentCard
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&card))
	s.Require().Equal("zora", card.Name)
	s.Require().Equal("Test assistant", card.Description)
}

func (s *ServerTestSuite) TestHealth() {
	resp, err := s.server.Client().Get(s.server.URL + "/health")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)
}

func (s *ServerTestSuite) TestMessageSendEchoesText() {
	resp := s.sendMessage(a2a.Message{
		Role:      a2a.RoleUser,
		Parts:     []a2a.Part{a2a.NewTextPart("ping")},
		MessageID: "m1",
		ContextID: "c1",
	})
	s.Require().Nil(resp.Error)

	task, ok := a2a.NormalizeTask(resp.Result)
	s.Require().True(ok)
	s.Require().Equal("c1", task.ContextID)
	s.Require().Equal(a2a.TaskStateCompleted, task.Status.State)
	s.Require().Len(task.Artifacts, 1)
	s.Require().Equal("ping", task.Artifacts[0].Parts[0].Text)
}

func (s *ServerTestSuite) TestMessageSendWithoutTextGetsFallback() {
	resp := s.sendMessage(a2a.Message{
		Role:      a2a.RoleUser,
		MessageID: "m2",
	})
	s.Require().Nil(resp.Error)

	task, ok := a2a.NormalizeTask(resp.Result)
	s.Require().True(ok)
	s.Require().Len(task.Artifacts, 1)
	s.Require().NotEmpty(task.Artifacts[0].Parts[0].Text)
}

func (s *ServerTestSuite) TestUnknownMethod() {
	resp := s.call(a2a.Request{
		JSONRPC: "2.0",
		ID:      float64(2),
		Method:  "message/stream",
	})
	s.Require().NotNil(resp.Error)
	s.Require().Equal(a2a.CodeMethodNotFound, resp.Error.Code)
}

func (s *ServerTestSuite) TestMalformedBody() {
	httpResp, err := s.server.Client().Post(s.server.URL+"/", "application/json", bytes.NewReader([]byte("{not json")))
	s.Require().NoError(err)
	defer httpResp.Body.Close()

	var resp a2a.Response
	s.Require().NoError(json.NewDecoder(httpResp.Body).Decode(&resp))
	s.Require().NotNil(resp.Error)
	s.Require().Equal(a2a.CodeParseError, resp.Error.Code)
}

func (s *ServerTestSuite) TestRunnerFailureIsInternalError() {
	logger := mylog.NewLogger("error", "text")
	failing := a2aserver.RunnerFunc(func(context.Context, *a2aserver.RunRequest) (*a2aserver.RunResponse, error) {
		return nil, errors.New("engine down")
	})
	executor := a2aserver.NewExecutor(logger, failing, "a2a_client")
	server := httptest.NewServer(a2aserver.NewHandler(logger, s.card, executor))
	defer server.Close()

	params, err := json.Marshal(a2a.MessageSendParams{Message: a2a.Message{
		Role:  a2a.RoleUser,
		Parts: []a2a.Part{a2a.NewTextPart("hi")},
	}})
	s.Require().NoError(err)
	body, err := json.Marshal(a2a.Request{JSONRPC: "2.0", ID: float64(3), Method: a2a.MethodMessageSend, Params: params})
	s.Require().NoError(err)

	httpResp, err := server.Client().Post(server.URL+"/", "application/json", bytes.NewReader(body))
	s.Require().NoError(err)
	defer httpResp.Body.Close()

	var resp a2a.Response
	s.Require().NoError(json.NewDecoder(httpResp.Body).Decode(&resp))
	s.Require().NotNil(resp.Error)
	s.Require().Equal(a2a.CodeInternalError, resp.Error.Code)
}
