package apperrors

import (
	"github.com/raccoonfox/hide-and-seek/internal/protocol"
)

// GameError 游戏错误（房间和对局共享）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrRoomNotFound = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: "房间不存在"}
	ErrRoomFull     = &GameError{Code: protocol.ErrCodeRoomFull, Message: "房间已满"}
	ErrNotInRoom    = &GameError{Code: protocol.ErrCodeNotInRoom, Message: "您不在房间中"}
	ErrGameStarted  = &GameError{Code: protocol.ErrCodeGameStarted, Message: "游戏已开始"}
	ErrGameNotStart = &GameError{Code: protocol.ErrCodeGameNotStart, Message: "游戏尚未开始"}
	ErrAlreadyIn    = &GameError{Code: protocol.ErrCodeAlreadyIn, Message: "您已在房间中"}
	ErrUnauthorized = &GameError{Code: protocol.ErrCodeUnauthorized, Message: "房间密码错误"}
	ErrNotInGame    = &GameError{Code: protocol.ErrCodeNotInGame, Message: "您不在对局中"}
)
