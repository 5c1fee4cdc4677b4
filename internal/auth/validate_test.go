package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignUpReq_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     SignUpReq
		wantErr error
	}{
		{
			name: "valid",
			req:  SignUpReq{Nickname: "raccoon", LoginID: "player01", Password: "1234"},
		},
		{
			name:    "empty nickname",
			req:     SignUpReq{Nickname: "", LoginID: "player01", Password: "1234"},
			wantErr: ErrNicknameRequired,
		},
		{
			name: "nickname at rune limit",
			req:  SignUpReq{Nickname: "12345678", LoginID: "player01", Password: "1234"},
		},
		{
			name:    "nickname too long",
			req:     SignUpReq{Nickname: "123456789", LoginID: "player01", Password: "1234"},
			wantErr: ErrNicknameTooLong,
		},
		{
			name: "multibyte nickname counts runes",
			req:  SignUpReq{Nickname: "라쿤여우팀원들아", LoginID: "player01", Password: "1234"},
		},
		{
			name:    "login id too short",
			req:     SignUpReq{Nickname: "raccoon", LoginID: "abcd", Password: "1234"},
			wantErr: ErrInvalidLoginID,
		},
		{
			name:    "login id too long",
			req:     SignUpReq{Nickname: "raccoon", LoginID: "abcdefghijklmnopqrstu", Password: "1234"},
			wantErr: ErrInvalidLoginID,
		},
		{
			name:    "login id with symbols",
			req:     SignUpReq{Nickname: "raccoon", LoginID: "player_01", Password: "1234"},
			wantErr: ErrInvalidLoginID,
		},
		{
			name:    "password too short",
			req:     SignUpReq{Nickname: "raccoon", LoginID: "player01", Password: "123"},
			wantErr: ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
