package handler

import (
	"time"

	"github.com/raccoonfox/hide-and-seek/internal/protocol"
	"github.com/raccoonfox/hide-and-seek/internal/types"
)

// handlePing 处理心跳
func (h *Handler) handlePing(client types.ClientInterface, _ *protocol.Message) {
	client.SendMessage(protocol.MustNewMessage(protocol.MsgPong, protocol.PingPayload{
		Timestamp: time.Now().UnixMilli(),
	}))
}
