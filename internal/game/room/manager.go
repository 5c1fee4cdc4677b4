package room

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/raccoonfox/hide-and-seek/internal/apperrors"
	"github.com/raccoonfox/hide-and-seek/internal/config"
	"github.com/raccoonfox/hide-and-seek/internal/game/player"
	"github.com/raccoonfox/hide-and-seek/internal/game/session"
	"github.com/raccoonfox/hide-and-seek/internal/protocol"
	"github.com/raccoonfox/hide-and-seek/internal/server/storage"
	"github.com/raccoonfox/hide-and-seek/internal/types"
)

// RoomManager 房间管理器
type RoomManager struct {
	redisStore  *storage.RedisStore
	broadcaster types.Broadcaster
	gameCfg     config.GameConfig
	roomTimeout time.Duration
	rooms       map[string]*Room
	mu          sync.RWMutex
}

// NewRoomManager 创建房间管理器
func NewRoomManager(rs *storage.RedisStore, b types.Broadcaster, gameCfg config.GameConfig) *RoomManager {
	rm := &RoomManager{
		redisStore:  rs,
		broadcaster: b,
		gameCfg:     gameCfg,
		roomTimeout: gameCfg.RoomTimeoutDuration(),
		rooms:       make(map[string]*Room),
	}

	// 启动房间清理协程
	go rm.cleanupLoop()

	return rm
}

// CreateRoom 创建房间并让创建者加入
func (rm *RoomManager) CreateRoom(p *player.Player, password string) (*Room, error) {
	rm.mu.Lock()
	code := rm.generateRoomCode()
	room := NewRoom(code, password, rm.gameCfg.MaxPlayers)
	rm.rooms[code] = room
	rm.mu.Unlock()

	if err := room.AddPlayer(p); err != nil {
		return nil, err
	}

	rm.saveSnapshot(room)
	log.Printf("🏠 房间 %s 已创建，玩家 %s", code, p.Nickname())

	return room, nil
}

// GetRoom 获取房间
func (rm *RoomManager) GetRoom(code string) *Room {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return rm.rooms[code]
}

// JoinRoom 大厅加入：先校验密码权限，再尝试加入名单
func (rm *RoomManager) JoinRoom(p *player.Player, code, password string) (*Room, error) {
	room := rm.GetRoom(code)
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}

	if !room.HasAuthority(p, password) {
		return nil, apperrors.ErrUnauthorized
	}

	if err := room.AddPlayer(p); err != nil {
		return nil, err
	}

	log.Printf("👤 玩家 %s 加入房间 %s", p.Nickname(), code)

	// 通知房间内其他玩家
	rm.broadcaster.Broadcast(room.Topic(), protocol.MustNewMessage(protocol.MsgPlayerJoined, protocol.PlayerJoinedPayload{
		Player: playerInfo(p),
	}))

	rm.saveSnapshot(room)
	return room, nil
}

// RejoinRoom 对局进行中的加入：已是成员的玩家重新接入，
// 或授权玩家在对局运行期间补进名单
func (rm *RoomManager) RejoinRoom(p *player.Player, code, password string) (*Room, error) {
	room := rm.GetRoom(code)
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}

	if room.Has(p) {
		return room, nil
	}

	if !room.CanJoinWithPassword(p, password) {
		if room.IsFull() {
			return nil, apperrors.ErrRoomFull
		}
		if !room.HasAuthority(p, password) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, apperrors.ErrGameNotStart
	}

	room.mu.Lock()
	room.players[p.ID()] = p
	room.mu.Unlock()

	log.Printf("📶 玩家 %s 在对局中加入房间 %s", p.Nickname(), code)
	rm.saveSnapshot(room)
	return room, nil
}

// LeaveRoom 离开房间，房间空了就解散
func (rm *RoomManager) LeaveRoom(p *player.Player, code string) error {
	room := rm.GetRoom(code)
	if room == nil {
		return apperrors.ErrRoomNotFound
	}

	if err := room.RemovePlayer(p); err != nil {
		return err
	}

	log.Printf("👋 玩家 %s 离开房间 %s", p.Nickname(), code)

	// 通知其他玩家
	rm.broadcaster.Broadcast(room.Topic(), protocol.MustNewMessage(protocol.MsgPlayerLeft, protocol.PlayerLeftPayload{
		PlayerID: p.ID(),
	}))

	if room.PlayerCount() == 0 {
		rm.mu.Lock()
		delete(rm.rooms, code)
		rm.mu.Unlock()
		go func() { _ = rm.redisStore.DeleteRoom(context.Background(), code) }()
		log.Printf("🏠 房间 %s 已解散", code)
		return nil
	}

	rm.saveSnapshot(room)
	return nil
}

// SetPlayerReady 设置玩家准备状态并广播
func (rm *RoomManager) SetPlayerReady(p *player.Player, code string, ready bool) error {
	room := rm.GetRoom(code)
	if room == nil {
		return apperrors.ErrRoomNotFound
	}
	if !room.Has(p) {
		return apperrors.ErrNotInRoom
	}

	p.SetReady(ready)

	rm.broadcaster.Broadcast(room.Topic(), protocol.MustNewMessage(protocol.MsgPlayerReady, protocol.PlayerReadyPayload{
		PlayerID: p.ID(),
		Ready:    ready,
	}))

	rm.saveSnapshot(room)
	return nil
}

// StartGame 构造对局并挂载到房间，满足开局条件时由调用方驱动回合循环
func (rm *RoomManager) StartGame(code string) (*session.Game, error) {
	room := rm.GetRoom(code)
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}
	if room.IsGameInitialized() {
		return nil, apperrors.ErrGameStarted
	}
	if !room.IsReadyToStartGame() {
		return nil, apperrors.ErrGameNotStart
	}

	// 挂载即占用：并发的两次开局中落败的一方在这里拿到 ErrGameStarted
	game, err := session.NewGame(room, rm.broadcaster, session.Config{
		MaxRound:      rm.gameCfg.MaxRound,
		ReadyDuration: rm.gameCfg.ReadyPhaseDuration(),
		MainDuration:  rm.gameCfg.MainPhaseDuration(),
		TickInterval:  rm.gameCfg.TickIntervalDuration(),
	})
	if err != nil {
		return nil, err
	}

	rm.broadcaster.Broadcast(room.Topic(), protocol.MustNewMessage(protocol.MsgGameStart, protocol.GameStartPayload{
		RoomNumber:  room.RoomNumber(),
		HidingTeam:  game.HidingTeam().MemberIDs(),
		SeekingTeam: game.SeekingTeam().MemberIDs(),
	}))

	rm.saveSnapshot(room)
	return game, nil
}

// GetActiveGamesCount 获取进行中的对局数量
func (rm *RoomManager) GetActiveGamesCount() int {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	count := 0
	for _, room := range rm.rooms {
		if room.IsGameRunning() {
			count++
		}
	}
	return count
}

// saveSnapshot 异步保存房间快照到 Redis
func (rm *RoomManager) saveSnapshot(room *Room) {
	go func() { _ = rm.redisStore.SaveRoom(context.Background(), room.RoomNumber(), room.ToRoomData()) }()
}

// playerInfo 转换为协议玩家信息
func playerInfo(p *player.Player) protocol.PlayerInfo {
	return protocol.PlayerInfo{
		ID:       p.ID(),
		Nickname: p.Nickname(),
		Ready:    p.IsReadyToStart(),
	}
}

// PlayersInfo 房间全部玩家的协议信息
func (rm *RoomManager) PlayersInfo(room *Room) []protocol.PlayerInfo {
	players := room.PlayersSnapshot()
	infos := make([]protocol.PlayerInfo, 0, len(players))
	for _, p := range players {
		infos = append(infos, playerInfo(p))
	}
	return infos
}
