package session

import (
	"context"
	"log"
	"time"

	"github.com/raccoonfox/hide-and-seek/internal/protocol"
)

// Run 驱动回合循环直到对局结束，每个对局只允许执行一次
// 循环作为后台任务运行，由调用方决定调度（go g.Run(ctx)）
func (g *Game) Run(ctx context.Context) {
	if !g.running.CompareAndSwap(false, true) {
		log.Printf("⚠️ 房间 %s 的对局循环已在运行，忽略重复启动", g.room.RoomNumber())
		return
	}

	log.Printf("🎮 房间 %s 对局开始！", g.room.RoomNumber())
	for round := 1; round <= g.cfg.MaxRound && !g.isGameFinished() && ctx.Err() == nil; round++ {
		g.setRound(round)
		log.Printf("房间 %s 回合 %d ==================================", g.room.RoomNumber(), round)

		log.Printf("READY 阶段开始 ------------------------------------")
		g.runReadyPhase(ctx)

		// READY 期间已判定出结果或被取消时不再进入 MAIN
		if g.isGameFinished() || ctx.Err() != nil {
			break
		}

		log.Printf("MAIN 阶段开始 -------------------------------------")
		g.runMainPhase(ctx)
		log.Printf("END 阶段开始 --------------------------------------")
		g.runEndPhase()
	}
	g.finish()
}

// runReadyPhase 躲藏方行动阶段：躲藏方解冻解遮挡，寻找方冻结遮挡，
// 随后按 tick 消费躲藏方请求队列直到阶段截止
func (g *Game) runReadyPhase(ctx context.Context) {
	g.setPhase(PhaseReady)
	g.broadcastPhaseChange()

	// 躲藏方可以移动，解除画面遮挡
	g.sendControl(g.hidingTeam, protocol.ControlUncoverScreen)
	g.sendControl(g.hidingTeam, protocol.ControlUnfreeze)
	g.hidingTeam.UnfreezePlayers()

	// 寻找方不可移动，遮挡画面
	g.sendControl(g.seekingTeam, protocol.ControlFreeze)
	g.sendControl(g.seekingTeam, protocol.ControlCoverScreen)
	g.seekingTeam.FreezePlayers()

	// 丢弃阶段开始前积压的请求
	g.hidingTeamRequests.Clear()

	deadline := time.Now().Add(g.cfg.ReadyDuration)
	g.drainUntil(ctx, g.hidingTeamRequests, deadline)
}

// runMainPhase 寻找方行动阶段，与 READY 对称：躲藏方冻结但不遮挡，
// 寻找方解冻解遮挡，消费寻找方请求队列
func (g *Game) runMainPhase(ctx context.Context) {
	g.setPhase(PhaseMain)
	g.broadcastPhaseChange()

	// 躲藏方不可移动，解除画面遮挡
	g.sendControl(g.hidingTeam, protocol.ControlFreeze)
	g.sendControl(g.hidingTeam, protocol.ControlUncoverScreen)
	g.hidingTeam.FreezePlayers()

	// 寻找方可以移动，解除画面遮挡
	g.sendControl(g.seekingTeam, protocol.ControlUnfreeze)
	g.sendControl(g.seekingTeam, protocol.ControlUncoverScreen)
	g.seekingTeam.UnfreezePlayers()

	// 丢弃阶段开始前积压的请求
	g.seekingTeamRequests.Clear()

	deadline := time.Now().Add(g.cfg.MainDuration)
	g.drainUntil(ctx, g.seekingTeamRequests, deadline)
}

// runEndPhase 回合结算阶段，回合结果计算与广播的扩展点
func (g *Game) runEndPhase() {
	g.setPhase(PhaseEnd)
	g.broadcastPhaseChange()
}

// drainUntil 以固定间隔消费队列直到截止时间
// 每个 tick 先取队列长度快照再恰好弹出这么多条，
// 处理期间新到达的请求推迟到下一个 tick，保证截止检查不会饿死
func (g *Game) drainUntil(ctx context.Context, queue *RequestQueue, deadline time.Time) {
	ticker := time.NewTicker(g.cfg.TickInterval)
	defer ticker.Stop()

	for {
		numOfRequests := queue.Len()
		for cnt := 0; cnt < numOfRequests; cnt++ {
			g.handleRequest(queue.Poll())
		}

		if g.evaluateFinish() {
			return
		}
		if !time.Now().Before(deadline) {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// handleRequest 处理单条玩家请求
func (g *Game) handleRequest(req *protocol.PlayerRequestPayload) {
	if req == nil {
		return
	}

	switch req.Type {
	case protocol.RequestMovementShare:
		// 原样转发给同对局的所有客户端
		g.broadcaster.Broadcast(g.Topic(), protocol.MustNewMessage(protocol.MsgMovementShare, req))

	case protocol.RequestInteractHide:
		// 躲藏结果由客户端呈现，服务端只转发
		g.broadcaster.Broadcast(g.Topic(), protocol.MustNewMessage(protocol.MsgPlayerRequest, req))

	case protocol.RequestInteractExplore:
		// 探索尝试本身不产生通知，等待结果请求

	case protocol.RequestInteractExploreOK:
		g.broadcaster.Broadcast(g.Topic(),
			protocol.NewInteractSeekSuccess(req.RoomID, req.PlayerID, req.ObjectID, req.FoundPlayerID, req.RequestID))

	case protocol.RequestInteractExploreErr:
		g.broadcaster.Broadcast(g.Topic(),
			protocol.NewInteractSeekFailure(req.RoomID, req.PlayerID, req.ObjectID, req.RequestID))

	default:
		log.Printf("⚠️ 未知的玩家请求类型: '%s' (玩家: %s)", req.Type, req.PlayerID)
	}
}

// sendControl 向队伍主题发送状态控制信号
func (g *Game) sendControl(team *Team, controlType protocol.ControlType) {
	msg := protocol.MustNewMessage(protocol.MsgGameControl, protocol.ControlPayload{
		Type:      controlType,
		Character: string(team.Character()),
	})
	g.broadcaster.Broadcast(team.Topic(), msg)
}

// broadcastPhaseChange 广播阶段切换
func (g *Game) broadcastPhaseChange() {
	g.mu.RLock()
	payload := protocol.PhaseChangePayload{
		Round: g.round,
		Phase: g.currentPhase.String(),
	}
	g.mu.RUnlock()

	g.broadcaster.Broadcast(g.Topic(), protocol.MustNewMessage(protocol.MsgPhaseChange, payload))
}

// finish 终态切换：广播结束消息并从房间卸载，允许开启新的对局
func (g *Game) finish() {
	g.setPhase(PhaseEnd)

	verdict := g.Verdict()
	g.broadcaster.Broadcast(g.Topic(), protocol.MustNewMessage(protocol.MsgGameOver, protocol.GameOverPayload{
		RoomNumber: g.room.RoomNumber(),
		Winner:     string(verdict.Winner),
	}))

	g.room.DetachGame()
	log.Printf("🏁 房间 %s 对局结束", g.room.RoomNumber())
}
