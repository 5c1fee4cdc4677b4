package room

import (
	"fmt"
	"sync"
	"time"

	"github.com/raccoonfox/hide-and-seek/internal/apperrors"
	"github.com/raccoonfox/hide-and-seek/internal/game/player"
	"github.com/raccoonfox/hide-and-seek/internal/game/session"
)

const (
	roomCodeLength = 6            // 房间号长度
	roomCodeChars  = "0123456789" // 房间号字符集
)

// Room 游戏房间，持有玩家名单并独占拥有至多一个进行中的对局
type Room struct {
	roomNumber string // 房间号（唯一）
	password   string // 房间密码，为空表示公开
	maxPlayers int
	createdAt  time.Time

	mu          sync.RWMutex
	players     map[string]*player.Player
	playingGame *session.Game
}

// NewRoom 创建房间
func NewRoom(roomNumber, password string, maxPlayers int) *Room {
	return &Room{
		roomNumber: roomNumber,
		password:   password,
		maxPlayers: maxPlayers,
		createdAt:  time.Now(),
		players:    make(map[string]*player.Player),
	}
}

// RoomNumber 返回房间号
func (r *Room) RoomNumber() string {
	return r.roomNumber
}

// Topic 房间级事件的广播主题
func (r *Room) Topic() string {
	return fmt.Sprintf("/topic/rooms/%s", r.roomNumber)
}

// AddPlayer 加入玩家，不满足加入条件时返回对应错误
func (r *Room) AddPlayer(p *player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case len(r.players) >= r.maxPlayers:
		return apperrors.ErrRoomFull
	case r.playingGame != nil:
		return apperrors.ErrGameStarted
	case r.hasLocked(p.ID()):
		return apperrors.ErrAlreadyIn
	}

	r.players[p.ID()] = p
	return nil
}

// RemovePlayer 移除玩家，玩家不在房间时返回错误
func (r *Room) RemovePlayer(p *player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.hasLocked(p.ID()) {
		return apperrors.ErrNotInRoom
	}
	delete(r.players, p.ID())
	return nil
}

func (r *Room) hasLocked(playerID string) bool {
	_, ok := r.players[playerID]
	return ok
}

// Has 玩家是否在房间中
func (r *Room) Has(p *player.Player) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hasLocked(p.ID())
}

// IsFull 房间是否已满
func (r *Room) IsFull() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players) >= r.maxPlayers
}

// PlayerCount 当前人数
func (r *Room) PlayerCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}

// CanJoin 房间未满、对局尚未初始化且玩家不在房间中时可加入
func (r *Room) CanJoin(p *player.Player) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players) < r.maxPlayers && r.playingGame == nil && !r.hasLocked(p.ID())
}

// CanJoinWithPassword 对局进行中的加入判定：房间未满、通过密码授权
// 且房间存在正在运行的对局
func (r *Room) CanJoinWithPassword(p *player.Player, password string) bool {
	isFull := r.IsFull()
	isAuthenticated := r.HasAuthority(p, password)
	isGameRunning := r.IsGameRunning()
	return !isFull && isAuthenticated && r.IsGameInitialized() && isGameRunning
}

// IsGameInitialized 是否已有对局挂载
func (r *Room) IsGameInitialized() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.playingGame != nil
}

// IsReadyToStartGame 参加人数的严格过半数处于准备状态
func (r *Room) IsReadyToStartGame() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	readyCount := 0
	for _, p := range r.players {
		if p.IsReadyToStart() {
			readyCount++
		}
	}
	return readyCount > len(r.players)/2
}

// IsGameRunning 是否有对局正在进行
func (r *Room) IsGameRunning() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.playingGame != nil && r.playingGame.IsRunning()
}

// IsPublic 是否为公开房间
func (r *Room) IsPublic() bool {
	return r.password == ""
}

// HasAuthority 公开房间、密码匹配或已是成员时有权限
func (r *Room) HasAuthority(p *player.Player, password string) bool {
	return r.IsPublic() || r.password == password || r.Has(p)
}

// PlayingGame 返回当前挂载的对局，没有时为 nil
func (r *Room) PlayingGame() *session.Game {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.playingGame
}

// PlayersSnapshot 返回玩家快照（分队时的一次性读取）
func (r *Room) PlayersSnapshot() []*player.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := make([]*player.Player, 0, len(r.players))
	for _, p := range r.players {
		players = append(players, p)
	}
	return players
}

// AttachGame 挂载对局，每个对局周期只允许设置一次；
// 已有对局挂载时失败，进行中的对局不会被替换
func (r *Room) AttachGame(g *session.Game) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.playingGame != nil {
		return false
	}
	r.playingGame = g
	return true
}

// DetachGame 卸载对局，开启新的对局周期
func (r *Room) DetachGame() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.playingGame = nil
}

// CreatedAt 房间创建时间
func (r *Room) CreatedAt() time.Time {
	return r.createdAt
}
