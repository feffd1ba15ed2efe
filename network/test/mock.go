package networktest

import (
	"context"

	"github.com/NIHAAL084/ultimate-ai-assistant/a2a"
	"github.com/NIHAAL084/ultimate-ai-assistant/entity"
	"github.com/NIHAAL084/ultimate-ai-assistant/network"
	"github.com/stretchr/testify/mock"
)

type ConnectionMock struct {
	mock.Mock

	AgentCard *entity.AgentCard
}

// Card implements network.Connection.
func (m *ConnectionMock) Card() *entity.AgentCard {
	return m.AgentCard
}

// SendMessage implements network.Connection.
func (m *ConnectionMock) SendMessage(ctx context.Context, req *a2a.SendMessageRequest) (*a2a.SendMessageResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*a2a.SendMessageResponse), args.Error(1)
}

// Close implements network.Connection.
func (m *ConnectionMock) Close() error {
	args := m.Called()
	return args.Error(0)
}

var (
	_ network.Connection = (*ConnectionMock)(nil)
)
