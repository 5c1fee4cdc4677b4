package server

import (
	"log"
	"runtime"
	"time"
)

// monitorStats 定期监控服务器状态
func (s *Server) monitorStats() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		log.Printf("📊 [监控] 在线: %d | Goroutines: %d | 进行中对局: %d | 内存: %.2f MB",
			s.GetOnlineCount(),
			runtime.NumGoroutine(),
			s.roomManager.GetActiveGamesCount(),
			float64(m.Alloc)/1024/1024)
	}
}

// GracefulShutdown 优雅关闭：等待进行中的对局结束后再关闭
func (s *Server) GracefulShutdown(timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for time.Now().Before(deadline) {
		activeGames := s.roomManager.GetActiveGamesCount()
		if activeGames == 0 {
			log.Println("✅ 所有对局已结束")
			break
		}
		log.Printf("⏳ 等待 %d 个对局结束...", activeGames)
		<-ticker.C
	}

	if activeGames := s.roomManager.GetActiveGamesCount(); activeGames > 0 {
		log.Printf("⚠️ 超时，仍有 %d 个对局进行中，强制关闭", activeGames)
	}

	s.Shutdown()
}

// Shutdown 关闭服务器
func (s *Server) Shutdown() {
	// 关闭所有客户端连接
	s.clientsMu.Lock()
	for _, client := range s.clients {
		client.Close()
	}
	s.clientsMu.Unlock()

	// 关闭 Redis
	_ = s.redis.Close()

	log.Println("服务器已关闭")
}
