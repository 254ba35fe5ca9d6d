package utils

import (
	"testing"
	"time"

	"pic-share-server/internal/config"
)

func initTestConfig(t *testing.T) {
	t.Helper()
	t.Setenv("PIC_SHARE_SERVER_MODE", "debug")
	t.Setenv("PIC_SHARE_JWT_SECRET", "jwt_test_secret")
	config.InitConfig(t.TempDir())
}

// 测试内容：验证登录 token 生成后可被解析并还原 claims。
func TestLoginTokenRoundTrip(t *testing.T) {
	initTestConfig(t)

	token, err := GenerateLoginToken(7, "alice", time.Hour)
	if err != nil {
		t.Fatalf("GenerateLoginToken 错误: %v", err)
	}

	claims, err := ParseLoginToken(token)
	if err != nil {
		t.Fatalf("ParseLoginToken 错误: %v", err)
	}
	if claims.ID != 7 || claims.Username != "alice" || claims.Type != "login" {
		t.Fatalf("非预期 claims: %+v", claims)
	}
}

// 测试内容：验证过期 token 被拒绝。
func TestParseLoginToken_Expired(t *testing.T) {
	initTestConfig(t)

	token, err := GenerateLoginToken(7, "alice", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateLoginToken 错误: %v", err)
	}

	if _, err := ParseLoginToken(token); err == nil {
		t.Fatalf("期望过期 token 返回错误")
	}
}

// 测试内容：验证被篡改的 token 被拒绝。
func TestParseLoginToken_Tampered(t *testing.T) {
	initTestConfig(t)

	token, err := GenerateLoginToken(7, "alice", time.Hour)
	if err != nil {
		t.Fatalf("GenerateLoginToken 错误: %v", err)
	}

	if _, err := ParseLoginToken(token + "x"); err == nil {
		t.Fatalf("期望被篡改的 token 返回错误")
	}
}
