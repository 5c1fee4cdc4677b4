package session

// Phase 对局所处的阶段，顺序固定
// READY/MAIN/END 在每个回合内重复，序数比较只在单个回合的推进中有意义
type Phase int

const (
	PhaseInitializing Phase = iota // 初始化中，禁止进入对局
	PhaseInitialized               // 初始化完成，等待回合循环启动
	PhaseReady                     // 躲藏方行动阶段
	PhaseMain                      // 寻找方行动阶段
	PhaseEnd                       // 回合结算阶段
)

var phaseNames = map[Phase]string{
	PhaseInitializing: "INITIALIZING",
	PhaseInitialized:  "INITIALIZED",
	PhaseReady:        "READY",
	PhaseMain:         "MAIN",
	PhaseEnd:          "END",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsNowOrBefore 当前阶段不晚于 other
func (p Phase) IsNowOrBefore(other Phase) bool {
	return p <= other
}

// IsNowOrAfter 当前阶段不早于 other
func (p Phase) IsNowOrAfter(other Phase) bool {
	return p >= other
}
