package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	// 连接操作
	MsgPing MessageType = "ping" // 心跳 ping

	// 房间操作
	MsgCreateRoom  MessageType = "create_room"  // 创建房间
	MsgJoinRoom    MessageType = "join_room"    // 加入房间
	MsgRejoinRoom  MessageType = "rejoin_room"  // 游戏进行中重新加入
	MsgLeaveRoom   MessageType = "leave_room"   // 离开房间
	MsgReady       MessageType = "ready"        // 准备就绪
	MsgCancelReady MessageType = "cancel_ready" // 取消准备

	// 游戏内玩家请求
	MsgPlayerRequest MessageType = "player_request" // 玩家行动请求
)

// 服务端 → 客户端 消息类型
const (
	// 连接相关
	MsgConnected MessageType = "connected" // 连接成功
	MsgPong      MessageType = "pong"      // 心跳 pong

	// 房间相关
	MsgRoomCreated  MessageType = "room_created"  // 房间创建成功
	MsgRoomJoined   MessageType = "room_joined"   // 加入房间成功
	MsgPlayerJoined MessageType = "player_joined" // 其他玩家加入
	MsgPlayerLeft   MessageType = "player_left"   // 玩家离开
	MsgPlayerReady  MessageType = "player_ready"  // 玩家准备状态变更

	// 游戏流程
	MsgGameStart     MessageType = "game_start"     // 游戏开始
	MsgGameControl   MessageType = "game_control"   // 状态控制信号
	MsgPhaseChange   MessageType = "phase_change"   // 阶段切换
	MsgMovementShare MessageType = "movement_share" // 位置共享转发
	MsgInteractSeek  MessageType = "interact_seek"  // 探索结果通知
	MsgGameOver      MessageType = "game_over"      // 游戏结束

	// 错误
	MsgError MessageType = "error" // 错误消息
)

// ControlType 发给客户端的状态控制信号类型
type ControlType string

const (
	ControlFreeze        ControlType = "FREEZE"         // 禁止移动
	ControlUnfreeze      ControlType = "UNFREEZE"       // 允许移动
	ControlCoverScreen   ControlType = "COVER_SCREEN"   // 遮挡画面
	ControlUncoverScreen ControlType = "UNCOVER_SCREEN" // 解除遮挡
)

// RequestType 玩家行动请求类型
type RequestType string

const (
	RequestMovementShare      RequestType = "MOVEMENT_SHARE"           // 共享玩家移动
	RequestInteractHide       RequestType = "INTERACT_HIDE"            // 与物体交互躲藏
	RequestInteractExplore    RequestType = "INTERACT_EXPLORE"         // 寻找方尝试探索物体
	RequestInteractExploreOK  RequestType = "INTERACT_EXPLORE_SUCCESS" // 探索成功
	RequestInteractExploreErr RequestType = "INTERACT_EXPLORE_FAIL"    // 探索失败
)
