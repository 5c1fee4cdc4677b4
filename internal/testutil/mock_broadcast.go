//go:build !production

package testutil

import (
	"sync"

	"github.com/raccoonfox/hide-and-seek/internal/protocol"
)

// RecordingBroadcaster 记录所有广播消息的 types.Broadcaster 实现
type RecordingBroadcaster struct {
	mu       sync.Mutex
	messages map[string][]*protocol.Message
}

func NewRecordingBroadcaster() *RecordingBroadcaster {
	return &RecordingBroadcaster{
		messages: make(map[string][]*protocol.Message),
	}
}

func (b *RecordingBroadcaster) Broadcast(topic string, msg *protocol.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages[topic] = append(b.messages[topic], msg)
}

// Messages 返回某主题收到的全部消息
func (b *RecordingBroadcaster) Messages(topic string) []*protocol.Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*protocol.Message, len(b.messages[topic]))
	copy(out, b.messages[topic])
	return out
}

// MessagesOfType 按类型筛选某主题收到的消息
func (b *RecordingBroadcaster) MessagesOfType(topic string, msgType protocol.MessageType) []*protocol.Message {
	var out []*protocol.Message
	for _, msg := range b.Messages(topic) {
		if msg.Type == msgType {
			out = append(out, msg)
		}
	}
	return out
}
