package auth

import (
	"errors"
	"regexp"
)

// 账号字段约束
var (
	ErrNicknameRequired = errors.New("昵称不能为空")
	ErrNicknameTooLong  = errors.New("昵称最多 8 个字符")
	ErrInvalidLoginID   = errors.New("登录 ID 必须为 5-20 位字母或数字")
	ErrPasswordTooShort = errors.New("密码至少 4 个字符")
)

var loginIDPattern = regexp.MustCompile(`^[a-zA-Z0-9]{5,20}$`)

const maxNicknameLen = 8

// SignUpReq 注册请求
type SignUpReq struct {
	Nickname string `json:"nickname"`
	LoginID  string `json:"login_id"`
	Password string `json:"password"`
}

// Validate 校验注册字段
func (r *SignUpReq) Validate() error {
	if r.Nickname == "" {
		return ErrNicknameRequired
	}
	if len([]rune(r.Nickname)) > maxNicknameLen {
		return ErrNicknameTooLong
	}
	if !loginIDPattern.MatchString(r.LoginID) {
		return ErrInvalidLoginID
	}
	if len(r.Password) < 4 {
		return ErrPasswordTooShort
	}
	return nil
}
