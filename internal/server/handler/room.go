package handler

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/raccoonfox/hide-and-seek/internal/apperrors"
	"github.com/raccoonfox/hide-and-seek/internal/game/room"
	"github.com/raccoonfox/hide-and-seek/internal/protocol"
	"github.com/raccoonfox/hide-and-seek/internal/types"
)

// sendGameError 将游戏错误转换为错误消息发给客户端
func sendGameError(client types.ClientInterface, err error) {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		client.SendMessage(protocol.NewErrorMessageWithText(gameErr.Code, gameErr.Message))
		return
	}
	client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}

// subscribeRoomTopics 订阅房间与对局主题
func (h *Handler) subscribeRoomTopics(client types.ClientInterface, roomNumber string) {
	h.server.Subscribe(fmt.Sprintf("/topic/rooms/%s", roomNumber), client)
	h.server.Subscribe(fmt.Sprintf("/topic/rooms/%s/game", roomNumber), client)
}

// unsubscribeRoomTopics 取消房间与对局主题订阅
func (h *Handler) unsubscribeRoomTopics(clientID, roomNumber string) {
	h.server.Unsubscribe(fmt.Sprintf("/topic/rooms/%s", roomNumber), clientID)
	h.server.Unsubscribe(fmt.Sprintf("/topic/rooms/%s/game", roomNumber), clientID)
}

// handleCreateRoom 处理创建房间
func (h *Handler) handleCreateRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.CreateRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	// 如果已在房间中，先离开
	if client.GetRoom() != "" {
		h.handleLeaveRoom(client)
	}

	p := h.playerFor(client)
	r, err := h.roomManager.CreateRoom(p, payload.Password)
	if err != nil {
		sendGameError(client, err)
		return
	}

	client.SetRoom(r.RoomNumber())
	h.subscribeRoomTopics(client, r.RoomNumber())

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomCreated, protocol.RoomCreatedPayload{
		RoomNumber: r.RoomNumber(),
		Player: protocol.PlayerInfo{
			ID:       p.ID(),
			Nickname: p.Nickname(),
			Ready:    p.IsReadyToStart(),
		},
	}))
}

// handleJoinRoom 处理加入房间
func (h *Handler) handleJoinRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.JoinRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	// 如果已在房间中，先离开
	if client.GetRoom() != "" {
		h.handleLeaveRoom(client)
	}

	p := h.playerFor(client)
	r, err := h.roomManager.JoinRoom(p, payload.RoomNumber, payload.Password)
	if err != nil {
		sendGameError(client, err)
		return
	}

	h.finishJoin(client, r)
}

// handleRejoinRoom 处理对局进行中的加入
func (h *Handler) handleRejoinRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.JoinRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	p := h.playerFor(client)
	r, err := h.roomManager.RejoinRoom(p, payload.RoomNumber, payload.Password)
	if err != nil {
		sendGameError(client, err)
		return
	}

	h.finishJoin(client, r)
}

// finishJoin 加入成功后的订阅与应答
func (h *Handler) finishJoin(client types.ClientInterface, r *room.Room) {
	client.SetRoom(r.RoomNumber())
	h.subscribeRoomTopics(client, r.RoomNumber())

	p := h.playerFor(client)
	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomJoined, protocol.RoomJoinedPayload{
		RoomNumber: r.RoomNumber(),
		Player: protocol.PlayerInfo{
			ID:       p.ID(),
			Nickname: p.Nickname(),
			Ready:    p.IsReadyToStart(),
		},
		Players: h.roomManager.PlayersInfo(r),
	}))
}

// handleLeaveRoom 处理离开房间
func (h *Handler) handleLeaveRoom(client types.ClientInterface) {
	roomNumber := client.GetRoom()
	if roomNumber == "" {
		return
	}

	p := h.playerFor(client)
	if err := h.roomManager.LeaveRoom(p, roomNumber); err != nil {
		log.Printf("玩家 %s 离开房间 %s 失败: %v", p.Nickname(), roomNumber, err)
	}

	client.SetRoom("")
	h.unsubscribeRoomTopics(client.GetID(), roomNumber)

	// 房间解散时终止对局循环
	if h.roomManager.GetRoom(roomNumber) == nil {
		h.cancelGame(roomNumber)
	}
}

// handleReady 处理准备/取消准备，满足开局条件时启动对局
func (h *Handler) handleReady(client types.ClientInterface, ready bool) {
	roomNumber := client.GetRoom()
	if roomNumber == "" {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeNotInRoom))
		return
	}

	p := h.playerFor(client)
	if err := h.roomManager.SetPlayerReady(p, roomNumber, ready); err != nil {
		sendGameError(client, err)
		return
	}

	h.startGameIfReady(roomNumber)
}

// startGameIfReady 准备人数过半且尚无对局时开局
// 开局在 gamesMu 下串行化，并发的 ready 消息只会启动一个回合循环
func (h *Handler) startGameIfReady(roomNumber string) {
	r := h.roomManager.GetRoom(roomNumber)
	if r == nil || r.IsGameInitialized() || !r.IsReadyToStartGame() {
		return
	}

	h.gamesMu.Lock()
	defer h.gamesMu.Unlock()

	game, err := h.roomManager.StartGame(roomNumber)
	if err != nil {
		// 并发开局的落败方拿到"游戏已开始"，无需处理
		if !errors.Is(err, apperrors.ErrGameStarted) {
			log.Printf("房间 %s 开局失败: %v", roomNumber, err)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	h.gameCancels[roomNumber] = cancel

	go func() {
		defer h.cancelGame(roomNumber)
		game.Run(ctx)
	}()
}

// cancelGame 终止房间对局循环并清理取消函数
func (h *Handler) cancelGame(roomNumber string) {
	h.gamesMu.Lock()
	defer h.gamesMu.Unlock()

	if cancel, ok := h.gameCancels[roomNumber]; ok {
		cancel()
		delete(h.gameCancels, roomNumber)
	}
}
