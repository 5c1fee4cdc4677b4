package protocol

// 错误码
const (
	ErrCodeUnknown      = 1000
	ErrCodeInvalidMsg   = 1001
	ErrCodeRoomNotFound = 2001
	ErrCodeRoomFull     = 2002
	ErrCodeNotInRoom    = 2003
	ErrCodeGameStarted  = 2004 // 游戏已开始，禁止加入
	ErrCodeAlreadyIn    = 2005 // 已在房间中
	ErrCodeUnauthorized = 2006 // 房间密码错误
	ErrCodeGameNotStart = 3001
	ErrCodeNotInGame    = 3002 // 玩家不在对局中
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:      "未知错误",
	ErrCodeInvalidMsg:   "无效的消息格式",
	ErrCodeRoomNotFound: "房间不存在",
	ErrCodeRoomFull:     "房间已满",
	ErrCodeNotInRoom:    "您不在房间中",
	ErrCodeGameStarted:  "游戏已开始",
	ErrCodeAlreadyIn:    "您已在房间中",
	ErrCodeUnauthorized: "房间密码错误",
	ErrCodeGameNotStart: "游戏尚未开始",
	ErrCodeNotInGame:    "您不在对局中",
}
