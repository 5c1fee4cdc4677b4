//go:build !production

package testutil

import (
	"github.com/stretchr/testify/mock"

	"github.com/raccoonfox/hide-and-seek/internal/protocol"
)

// MockClient 实现 types.ClientInterface 的 mock
type MockClient struct {
	mock.Mock
}

func (m *MockClient) GetID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) GetNickname() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) GetRoom() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) SetRoom(roomNumber string) {
	m.Called(roomNumber)
}

func (m *MockClient) SendMessage(msg *protocol.Message) {
	m.Called(msg)
}

func (m *MockClient) Close() {
	m.Called()
}

// SimpleClient 简单的 mock 客户端，不使用 testify（用于不需要断言的测试）
type SimpleClient struct {
	ID         string
	Nickname   string
	RoomNumber string
	Messages   []*protocol.Message
}

func (m *SimpleClient) GetID() string                     { return m.ID }
func (m *SimpleClient) GetNickname() string               { return m.Nickname }
func (m *SimpleClient) GetRoom() string                   { return m.RoomNumber }
func (m *SimpleClient) SetRoom(roomNumber string)         { m.RoomNumber = roomNumber }
func (m *SimpleClient) SendMessage(msg *protocol.Message) { m.Messages = append(m.Messages, msg) }
func (m *SimpleClient) Close()                            {}

// MessagesOfType 按类型筛选已收到的消息
func (m *SimpleClient) MessagesOfType(msgType protocol.MessageType) []*protocol.Message {
	var out []*protocol.Message
	for _, msg := range m.Messages {
		if msg.Type == msgType {
			out = append(out, msg)
		}
	}
	return out
}
