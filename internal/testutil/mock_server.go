//go:build !production

package testutil

import (
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/raccoonfox/hide-and-seek/internal/types"
)

// MockServer 实现 types.ServerInterface 的 mock
type MockServer struct {
	mock.Mock
}

func (m *MockServer) GetOnlineCount() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockServer) GetClientByID(id string) types.ClientInterface {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(types.ClientInterface)
}

func (m *MockServer) RegisterClient(id string, client types.ClientInterface) {
	m.Called(id, client)
}

func (m *MockServer) UnregisterClient(id string) {
	m.Called(id)
}

func (m *MockServer) Subscribe(topic string, client types.ClientInterface) {
	m.Called(topic, client)
}

func (m *MockServer) Unsubscribe(topic, clientID string) {
	m.Called(topic, clientID)
}

// SimpleServer 简单的服务器 mock，维护真实的订阅表并将广播投递给订阅者
type SimpleServer struct {
	mu      sync.RWMutex
	clients map[string]types.ClientInterface
	topics  map[string]map[string]types.ClientInterface
}

func NewSimpleServer() *SimpleServer {
	return &SimpleServer{
		clients: make(map[string]types.ClientInterface),
		topics:  make(map[string]map[string]types.ClientInterface),
	}
}

func (s *SimpleServer) GetOnlineCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *SimpleServer) GetClientByID(id string) types.ClientInterface {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clients[id]
}

func (s *SimpleServer) RegisterClient(id string, client types.ClientInterface) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[id] = client
}

func (s *SimpleServer) UnregisterClient(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, id)
	for _, subs := range s.topics {
		delete(subs, id)
	}
}

func (s *SimpleServer) Subscribe(topic string, client types.ClientInterface) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.topics[topic] == nil {
		s.topics[topic] = make(map[string]types.ClientInterface)
	}
	s.topics[topic][client.GetID()] = client
}

func (s *SimpleServer) Unsubscribe(topic, clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if subs, ok := s.topics[topic]; ok {
		delete(subs, clientID)
	}
}

// Subscribers 返回主题的订阅者 ID
func (s *SimpleServer) Subscribers(topic string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids []string
	for id := range s.topics[topic] {
		ids = append(ids, id)
	}
	return ids
}
