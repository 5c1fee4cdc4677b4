package room

import (
	"context"
	"log"
	"math/rand/v2"
	"time"

	"github.com/raccoonfox/hide-and-seek/internal/protocol"
)

// generateRoomCode 生成唯一房间号，调用方需持有 rm.mu
func (rm *RoomManager) generateRoomCode() string {
	for {
		code := make([]byte, roomCodeLength)
		for i := range code {
			code[i] = roomCodeChars[rand.IntN(len(roomCodeChars))]
		}
		codeStr := string(code)
		if _, exists := rm.rooms[codeStr]; !exists {
			return codeStr
		}
	}
}

// cleanupLoop 定期清理超时房间
func (rm *RoomManager) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rm.cleanup()
	}
}

// cleanup 清理等待状态下超时的房间
func (rm *RoomManager) cleanup() {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	now := time.Now()
	for code, room := range rm.rooms {
		if room.IsGameInitialized() {
			continue
		}
		if now.Sub(room.CreatedAt()) <= rm.roomTimeout {
			continue
		}

		// 通知所有玩家房间已关闭
		rm.broadcaster.Broadcast(room.Topic(),
			protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "房间超时已关闭"))

		delete(rm.rooms, code)
		go func(code string) { _ = rm.redisStore.DeleteRoom(context.Background(), code) }(code)
		log.Printf("🧹 房间 %s 等待超时，已清理", code)
	}
}
