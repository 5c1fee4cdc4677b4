package session

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/raccoonfox/hide-and-seek/internal/apperrors"
	"github.com/raccoonfox/hide-and-seek/internal/game/player"
	"github.com/raccoonfox/hide-and-seek/internal/protocol"
	"github.com/raccoonfox/hide-and-seek/internal/types"
)

// RoomView Game 对所属房间的只读/挂载视图（房间拥有对局，对局不管理房间生命周期）
// AttachGame 在房间已有对局时返回 false
type RoomView interface {
	RoomNumber() string
	PlayersSnapshot() []*player.Player
	AttachGame(g *Game) bool
	DetachGame()
}

// Config 对局参数
type Config struct {
	MaxRound      int           // 最大回合数
	ReadyDuration time.Duration // READY 阶段时长
	MainDuration  time.Duration // MAIN 阶段时长
	TickInterval  time.Duration // 请求队列处理间隔
}

// Game 阶段驱动的对局状态机
// 构造时同步完成分队并挂载到房间，之后由单次 Run 调用驱动到结束
type Game struct {
	room        RoomView
	broadcaster types.Broadcaster
	cfg         Config

	// 躲藏方
	hidingTeam         *Team
	hidingTeamRequests *RequestQueue
	// 寻找方
	seekingTeam         *Team
	seekingTeamRequests *RequestQueue

	finishPolicy FinishPolicy

	mu           sync.RWMutex
	currentPhase Phase
	round        int
	verdict      Verdict

	running atomic.Bool // 回合循环占用标志，保证同一对局只有一个循环
}

// Option 对局可选参数
type Option func(*Game)

// WithFinishPolicy 注入胜负判定策略
func WithFinishPolicy(p FinishPolicy) Option {
	return func(g *Game) {
		g.finishPolicy = p
	}
}

// NewGame 创建对局：进入 INITIALIZING、随机分队、挂载到房间，
// 返回前到达 INITIALIZED；房间已有对局时挂载失败并返回错误，
// 并发的两次开局只有一局能挂载成功
func NewGame(room RoomView, broadcaster types.Broadcaster, cfg Config, opts ...Option) (*Game, error) {
	g := &Game{
		room:                room,
		broadcaster:         broadcaster,
		cfg:                 cfg,
		hidingTeamRequests:  NewRequestQueue(),
		seekingTeamRequests: NewRequestQueue(),
		finishPolicy:        neverFinish{},
	}
	g.hidingTeam = newTeam(CharacterRacoon, g)
	g.seekingTeam = newTeam(CharacterFox, g)

	for _, opt := range opts {
		opt(g)
	}

	if err := g.initialize(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) initialize() error {
	// 初始化开始，此后禁止进入对局
	g.setPhase(PhaseInitializing)

	// 随机分队
	g.randomAssignPlayersToTeam()

	// 挂载为房间的进行中对局，挂载失败说明另一局已抢先开局
	if !g.room.AttachGame(g) {
		return apperrors.ErrGameStarted
	}

	// 对局准备完成
	g.setPhase(PhaseInitialized)
	return nil
}

// randomAssignPlayersToTeam 打乱房间全部成员后按下标奇偶交替分队，
// 两队人数差不超过 1
func (g *Game) randomAssignPlayersToTeam() {
	allPlayers := g.room.PlayersSnapshot()
	rand.Shuffle(len(allPlayers), func(i, j int) {
		allPlayers[i], allPlayers[j] = allPlayers[j], allPlayers[i]
	})

	for i, p := range allPlayers {
		if i%2 == 0 {
			g.hidingTeam.AddPlayer(p)
		} else {
			g.seekingTeam.AddPlayer(p)
		}
	}
}

// Topic 对局的广播主题
func (g *Game) Topic() string {
	return fmt.Sprintf("/topic/rooms/%s/game", g.room.RoomNumber())
}

// HidingTeam 返回躲藏方
func (g *Game) HidingTeam() *Team {
	return g.hidingTeam
}

// SeekingTeam 返回寻找方
func (g *Game) SeekingTeam() *Team {
	return g.seekingTeam
}

// CurrentPhase 返回当前阶段
func (g *Game) CurrentPhase() Phase {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.currentPhase
}

// Round 返回当前回合数，回合循环启动前为 0
func (g *Game) Round() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.round
}

// CanJoin 初始化开始后禁止进入对局
func (g *Game) CanJoin() bool {
	return g.CurrentPhase().IsNowOrBefore(PhaseInitializing)
}

// IsRunning 对局是否在进行中
func (g *Game) IsRunning() bool {
	return g.CurrentPhase().IsNowOrAfter(PhaseInitialized)
}

// PushRequest 将玩家请求投入其所属队伍的队列
// 只有当前行动方的队列会被消费，阶段开始时会清除过期请求
func (g *Game) PushRequest(playerID string, req *protocol.PlayerRequestPayload) error {
	switch {
	case g.hidingTeam.Has(playerID):
		g.hidingTeamRequests.Push(req)
	case g.seekingTeam.Has(playerID):
		g.seekingTeamRequests.Push(req)
	default:
		return apperrors.ErrNotInGame
	}
	return nil
}

func (g *Game) setPhase(phase Phase) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.currentPhase = phase
}

func (g *Game) setRound(round int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.round = round
}

// evaluateFinish 执行胜负判定并缓存结果
func (g *Game) evaluateFinish() bool {
	verdict := g.finishPolicy.Evaluate(g)

	g.mu.Lock()
	defer g.mu.Unlock()
	if verdict.Concluded {
		g.verdict = verdict
	}
	return verdict.Concluded
}

// isGameFinished 对局胜负是否已经判定
func (g *Game) isGameFinished() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.verdict.Concluded
}

// Verdict 返回判定结果
func (g *Game) Verdict() Verdict {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.verdict
}
