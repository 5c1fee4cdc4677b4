package handler

import (
	"github.com/raccoonfox/hide-and-seek/internal/protocol"
	"github.com/raccoonfox/hide-and-seek/internal/types"
)

// handlePlayerRequest 将玩家行动请求投入其队伍的处理队列
func (h *Handler) handlePlayerRequest(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PlayerRequestPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	roomNumber := client.GetRoom()
	if roomNumber == "" {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeNotInRoom))
		return
	}

	r := h.roomManager.GetRoom(roomNumber)
	if r == nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeRoomNotFound))
		return
	}

	game := r.PlayingGame()
	if game == nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeGameNotStart))
		return
	}

	// 请求归属以连接身份为准
	payload.PlayerID = client.GetID()
	payload.RoomID = roomNumber

	if err := game.PushRequest(client.GetID(), payload); err != nil {
		sendGameError(client, err)
	}
}
