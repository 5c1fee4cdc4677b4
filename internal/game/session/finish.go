package session

// Verdict 胜负判定结果
type Verdict struct {
	Concluded bool      // 对局是否已分出结果
	Winner    Character // 胜方角色，未判定或平局时为空
}

// FinishPolicy 可插拔的胜负判定策略
// 回合循环在阶段切换和每个处理 tick 的边界调用
type FinishPolicy interface {
	Evaluate(g *Game) Verdict
}

// neverFinish 默认策略：对局始终进行到最大回合数
// 真正的胜负条件（全部躲藏者被找到等）由上层注入
type neverFinish struct{}

func (neverFinish) Evaluate(*Game) Verdict {
	return Verdict{}
}

// FinishPolicyFunc 以函数实现 FinishPolicy
type FinishPolicyFunc func(g *Game) Verdict

// Evaluate 实现 FinishPolicy
func (f FinishPolicyFunc) Evaluate(g *Game) Verdict {
	return f(g)
}
