package types

import (
	"github.com/raccoonfox/hide-and-seek/internal/protocol"
)

// ServerInterface 定义服务器接口（用于打破循环依赖）
type ServerInterface interface {
	GetOnlineCount() int
	GetClientByID(id string) ClientInterface
	RegisterClient(id string, client ClientInterface)
	UnregisterClient(id string)
	Subscribe(topic string, client ClientInterface)
	Unsubscribe(topic, clientID string)
}

// ClientInterface 定义客户端接口
type ClientInterface interface {
	GetID() string
	GetNickname() string
	GetRoom() string
	SetRoom(roomNumber string)
	SendMessage(msg *protocol.Message)
	Close()
}

// Broadcaster 按主题广播消息，fire-and-forget
// 主题格式为 /topic/rooms/{roomNumber} 和 /topic/rooms/{roomNumber}/game
type Broadcaster interface {
	Broadcast(topic string, msg *protocol.Message)
}
