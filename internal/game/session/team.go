package session

import (
	"sync"

	"github.com/raccoonfox/hide-and-seek/internal/game/player"
)

// Character 队伍使用的角色皮肤
type Character string

const (
	CharacterRacoon Character = "RACOON" // 躲藏方
	CharacterFox    Character = "FOX"    // 寻找方
)

// Team 对局中的一支队伍
// 对 Game 的引用只用于推导广播主题，不管理生命周期
type Team struct {
	character Character
	game      *Game

	mu      sync.RWMutex
	members map[string]*player.Player
}

func newTeam(character Character, game *Game) *Team {
	return &Team{
		character: character,
		game:      game,
		members:   make(map[string]*player.Player),
	}
}

// Character 返回队伍角色
func (t *Team) Character() Character {
	return t.character
}

// Topic 返回队伍的广播主题
// 两队共用对局主题，控制消息携带角色信息，由客户端按角色过滤
func (t *Team) Topic() string {
	return t.game.Topic()
}

// AddPlayer 加入队伍成员，容量由房间和分队逻辑保证，这一层不做检查
func (t *Team) AddPlayer(p *player.Player) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.members[p.ID()] = p
}

// Has 玩家是否在队伍中
func (t *Team) Has(playerID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.members[playerID]
	return ok
}

// Size 队伍人数
func (t *Team) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.members)
}

// Members 返回成员快照
func (t *Team) Members() []*player.Player {
	t.mu.RLock()
	defer t.mu.RUnlock()

	members := make([]*player.Player, 0, len(t.members))
	for _, p := range t.members {
		members = append(members, p)
	}
	return members
}

// MemberIDs 返回成员 ID 快照
func (t *Team) MemberIDs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]string, 0, len(t.members))
	for id := range t.members {
		ids = append(ids, id)
	}
	return ids
}

// FreezePlayers 冻结调用时刻的全部成员
func (t *Team) FreezePlayers() {
	for _, p := range t.Members() {
		p.Freeze()
	}
}

// UnfreezePlayers 解冻调用时刻的全部成员
func (t *Team) UnfreezePlayers() {
	for _, p := range t.Members() {
		p.Unfreeze()
	}
}
