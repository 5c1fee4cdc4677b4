package protocol

// --- 客户端请求 Payloads ---

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // 客户端时间戳（毫秒）
}

// CreateRoomPayload 创建房间请求
type CreateRoomPayload struct {
	Password string `json:"password,omitempty"` // 为空表示公开房间
}

// JoinRoomPayload 加入房间请求
type JoinRoomPayload struct {
	RoomNumber string `json:"room_number"`
	Password   string `json:"password,omitempty"`
}

// PlayerRequestPayload 玩家行动请求
// RequestID 由客户端生成，用于请求与响应的关联，服务端原样带回
type PlayerRequestPayload struct {
	Type          RequestType `json:"type"`
	RoomID        string      `json:"room_id"`
	PlayerID      string      `json:"player_id"`
	ObjectID      string      `json:"object_id,omitempty"`
	FoundPlayerID string      `json:"found_player_id,omitempty"`
	RequestID     string      `json:"request_id"`
}

// --- 服务端响应 Payloads ---

// ConnectedPayload 连接成功响应
type ConnectedPayload struct {
	PlayerID string `json:"player_id"`
	Nickname string `json:"nickname"`
}

// PlayerInfo 玩家信息
type PlayerInfo struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Ready    bool   `json:"ready"`
}

// RoomCreatedPayload 房间创建成功响应
type RoomCreatedPayload struct {
	RoomNumber string     `json:"room_number"`
	Player     PlayerInfo `json:"player"`
}

// RoomJoinedPayload 加入房间成功响应
type RoomJoinedPayload struct {
	RoomNumber string       `json:"room_number"`
	Player     PlayerInfo   `json:"player"`
	Players    []PlayerInfo `json:"players"`
}

// PlayerJoinedPayload 其他玩家加入广播
type PlayerJoinedPayload struct {
	Player PlayerInfo `json:"player"`
}

// PlayerLeftPayload 玩家离开广播
type PlayerLeftPayload struct {
	PlayerID string `json:"player_id"`
}

// PlayerReadyPayload 玩家准备状态广播
type PlayerReadyPayload struct {
	PlayerID string `json:"player_id"`
	Ready    bool   `json:"ready"`
}

// GameStartPayload 游戏开始广播
type GameStartPayload struct {
	RoomNumber  string   `json:"room_number"`
	HidingTeam  []string `json:"hiding_team"`  // 躲藏方玩家 ID
	SeekingTeam []string `json:"seeking_team"` // 寻找方玩家 ID
}

// ControlPayload 状态控制信号
// Character 标识目标队伍，两队共用游戏主题，客户端按角色过滤
type ControlPayload struct {
	Type      ControlType `json:"type"`
	Character string      `json:"character"`
	Data      any         `json:"data,omitempty"`
}

// PhaseChangePayload 阶段切换广播
type PhaseChangePayload struct {
	Round int    `json:"round"`
	Phase string `json:"phase"`
}

// InteractSeekPayload 探索结果通知
// 失败时 FoundPlayerID 固定为 "NONE"
type InteractSeekPayload struct {
	Type          RequestType `json:"type"`
	RoomID        string      `json:"room_id"`
	PlayerID      string      `json:"player_id"`
	ObjectID      string      `json:"object_id"`
	FoundPlayerID string      `json:"found_player_id"`
	RequestID     string      `json:"request_id"`
}

// GameOverPayload 游戏结束广播
type GameOverPayload struct {
	RoomNumber string `json:"room_number"`
	Winner     string `json:"winner,omitempty"` // 胜方角色，平局或未判定时为空
}

// ErrorPayload 错误响应
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
