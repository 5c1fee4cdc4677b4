package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/raccoonfox/hide-and-seek/internal/auth"
)

// signupResponse 注册成功响应
type signupResponse struct {
	PlayerID string `json:"player_id"`
	Nickname string `json:"nickname"`
	Token    string `json:"token"`
}

// handleSignup 注册接口：校验字段后签发接入令牌
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req auth.SignUpReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	playerID := uuid.New().String()
	token, err := s.authService.GenerateToken(playerID, req.Nickname)
	if err != nil {
		log.Printf("签发令牌失败: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(signupResponse{
		PlayerID: playerID,
		Nickname: req.Nickname,
		Token:    token,
	})

	log.Printf("✅ 玩家 %s 注册成功", req.Nickname)
}
