package player

import "sync"

// Player 游戏玩家，连接建立时创建，断开或退出房间时销毁
// 状态标志只由玩家自己的准备切换和队伍/对局的控制操作修改
type Player struct {
	id       string
	nickname string

	mu            sync.RWMutex
	readyToStart  bool
	frozen        bool
	screenCovered bool
}

// New 创建玩家
func New(id, nickname string) *Player {
	return &Player{
		id:       id,
		nickname: nickname,
	}
}

// ID 返回玩家唯一 ID
func (p *Player) ID() string {
	return p.id
}

// Nickname 返回玩家昵称
func (p *Player) Nickname() string {
	return p.nickname
}

// SetReady 设置准备状态
func (p *Player) SetReady(ready bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.readyToStart = ready
}

// IsReadyToStart 是否已准备
func (p *Player) IsReadyToStart() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.readyToStart
}

// Freeze 禁止移动
func (p *Player) Freeze() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frozen = true
}

// Unfreeze 允许移动
func (p *Player) Unfreeze() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frozen = false
}

// IsFrozen 是否被禁止移动
func (p *Player) IsFrozen() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.frozen
}

// CoverScreen 遮挡画面
func (p *Player) CoverScreen() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.screenCovered = true
}

// UncoverScreen 解除画面遮挡
func (p *Player) UncoverScreen() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.screenCovered = false
}

// IsScreenCovered 画面是否被遮挡
func (p *Player) IsScreenCovered() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.screenCovered
}
