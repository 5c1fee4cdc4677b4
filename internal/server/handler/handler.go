package handler

import (
	"context"
	"log"
	"sync"

	"github.com/raccoonfox/hide-and-seek/internal/game/player"
	"github.com/raccoonfox/hide-and-seek/internal/game/room"
	"github.com/raccoonfox/hide-and-seek/internal/protocol"
	"github.com/raccoonfox/hide-and-seek/internal/types"
)

// HandlerDeps 处理器依赖
type HandlerDeps struct {
	Server      types.ServerInterface
	RoomManager *room.RoomManager
}

// Handler 消息处理器
type Handler struct {
	server      types.ServerInterface
	roomManager *room.RoomManager
	handlers    map[protocol.MessageType]handlerFunc

	// 连接对应的玩家对象
	players   map[string]*player.Player
	playersMu sync.RWMutex

	// 进行中对局的取消函数，房间解散时终止回合循环
	gameCancels map[string]context.CancelFunc
	gamesMu     sync.Mutex
}

// handlerFunc 统一的处理器函数签名
type handlerFunc func(client types.ClientInterface, msg *protocol.Message)

// NewHandler 创建处理器
func NewHandler(deps HandlerDeps) *Handler {
	h := &Handler{
		server:      deps.Server,
		roomManager: deps.RoomManager,
		players:     make(map[string]*player.Player),
		gameCancels: make(map[string]context.CancelFunc),
	}
	h.initHandlers()
	return h
}

// initHandlers 初始化消息处理器映射
func (h *Handler) initHandlers() {
	h.handlers = map[protocol.MessageType]handlerFunc{
		// 连接操作
		protocol.MsgPing: h.handlePing,

		// 房间操作
		protocol.MsgCreateRoom:  h.handleCreateRoom,
		protocol.MsgJoinRoom:    h.handleJoinRoom,
		protocol.MsgRejoinRoom:  h.handleRejoinRoom,
		protocol.MsgLeaveRoom:   func(c types.ClientInterface, _ *protocol.Message) { h.handleLeaveRoom(c) },
		protocol.MsgReady:       func(c types.ClientInterface, _ *protocol.Message) { h.handleReady(c, true) },
		protocol.MsgCancelReady: func(c types.ClientInterface, _ *protocol.Message) { h.handleReady(c, false) },

		// 游戏内玩家请求
		protocol.MsgPlayerRequest: h.handlePlayerRequest,
	}
}

// Handle 处理消息
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	if handler, ok := h.handlers[msg.Type]; ok {
		handler(client, msg)
		return
	}

	log.Printf("⚠️ 未知消息类型: '%s' (来自玩家: %s, ID: %s)", msg.Type, client.GetNickname(), client.GetID())
	client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
}

// HandleDisconnect 连接断开时退出房间并清理玩家对象
func (h *Handler) HandleDisconnect(client types.ClientInterface) {
	h.handleLeaveRoom(client)

	h.playersMu.Lock()
	delete(h.players, client.GetID())
	h.playersMu.Unlock()
}

// playerFor 取出或创建连接对应的玩家对象
func (h *Handler) playerFor(client types.ClientInterface) *player.Player {
	h.playersMu.Lock()
	defer h.playersMu.Unlock()

	if p, ok := h.players[client.GetID()]; ok {
		return p
	}
	p := player.New(client.GetID(), client.GetNickname())
	h.players[client.GetID()] = p
	return p
}
