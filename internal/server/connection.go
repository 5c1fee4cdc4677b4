package server

import (
	"log"
	"net/http"

	"github.com/raccoonfox/hide-and-seek/internal/protocol"
)

// handleWebSocket 处理 WebSocket 连接
// 握手参数：token（可选的登录令牌）、nickname（令牌缺失时的游客昵称）
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	nickname := r.URL.Query().Get("nickname")

	// 携带令牌时以登录身份接入
	if token := r.URL.Query().Get("token"); token != "" {
		claims, err := s.authService.ValidateToken(token)
		if err != nil {
			log.Printf("🚫 令牌验证失败: %v", err)
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}
		nickname = claims.Nickname
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket 升级失败: %v", err)
		return
	}

	// 创建客户端
	client := NewClient(s, conn, nickname)
	s.RegisterClient(client.ID, client)

	// 发送连接成功消息
	client.SendMessage(protocol.MustNewMessage(protocol.MsgConnected, protocol.ConnectedPayload{
		PlayerID: client.ID,
		Nickname: client.Nickname,
	}))

	log.Printf("✅ 玩家 %s (%s) 已连接", client.Nickname, client.ID)

	// 启动客户端读写协程
	go client.WritePump()
	go client.ReadPump()
}
