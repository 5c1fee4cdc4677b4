package server

import (
	"github.com/raccoonfox/hide-and-seek/internal/protocol"
	"github.com/raccoonfox/hide-and-seek/internal/types"
)

// Subscribe 订阅客户端到主题
func (s *Server) Subscribe(topic string, client types.ClientInterface) {
	s.topicsMu.Lock()
	defer s.topicsMu.Unlock()

	subscribers, ok := s.topics[topic]
	if !ok {
		subscribers = make(map[string]types.ClientInterface)
		s.topics[topic] = subscribers
	}
	subscribers[client.GetID()] = client
}

// Unsubscribe 取消客户端对主题的订阅
func (s *Server) Unsubscribe(topic, clientID string) {
	s.topicsMu.Lock()
	defer s.topicsMu.Unlock()

	if subscribers, ok := s.topics[topic]; ok {
		delete(subscribers, clientID)
		if len(subscribers) == 0 {
			delete(s.topics, topic)
		}
	}
}

// UnsubscribeAll 清除客户端的全部订阅
func (s *Server) UnsubscribeAll(clientID string) {
	s.topicsMu.Lock()
	defer s.topicsMu.Unlock()

	for topic, subscribers := range s.topics {
		delete(subscribers, clientID)
		if len(subscribers) == 0 {
			delete(s.topics, topic)
		}
	}
}

// Broadcast 向主题的所有订阅者发布消息，fire-and-forget
func (s *Server) Broadcast(topic string, msg *protocol.Message) {
	s.topicsMu.RLock()
	defer s.topicsMu.RUnlock()

	for _, client := range s.topics[topic] {
		client.SendMessage(msg)
	}
}
