package utils

import (
	"bytes"
	"testing"
)

// 测试内容：验证用户名校验规则（字符集、纯数字）。
func TestValidateUsername(t *testing.T) {
	if ok, _ := ValidateUsername("alice_01"); !ok {
		t.Fatalf("期望合法用户名通过")
	}
	if ok, _ := ValidateUsername("bad name"); ok {
		t.Fatalf("期望包含空格的用户名被拒绝")
	}
	if ok, _ := ValidateUsername("123456"); ok {
		t.Fatalf("期望纯数字用户名被拒绝")
	}
}

// 测试内容：验证密码校验规则（长度、字母数字组合）。
func TestValidatePassword(t *testing.T) {
	if ok, _ := ValidatePassword("abc12345"); !ok {
		t.Fatalf("期望合法密码通过")
	}
	if ok, _ := ValidatePassword("short1"); ok {
		t.Fatalf("期望过短密码被拒绝")
	}
	if ok, _ := ValidatePassword("abcdefgh"); ok {
		t.Fatalf("期望无数字密码被拒绝")
	}
	if ok, _ := ValidatePassword("12345678"); ok {
		t.Fatalf("期望无字母密码被拒绝")
	}
}

// 测试内容：验证邮箱格式校验。
func TestValidateEmail(t *testing.T) {
	if ok, _ := ValidateEmail("a@example.com"); !ok {
		t.Fatalf("期望合法邮箱通过")
	}
	if ok, _ := ValidateEmail("not-an-email"); ok {
		t.Fatalf("期望非法邮箱被拒绝")
	}
}

// 测试内容：验证文件内容与扩展名匹配检查。
func TestValidateImageContent(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	if ok, msg := ValidateImageContent(bytes.NewReader(png), ".png"); !ok {
		t.Fatalf("期望 PNG 内容通过: %s", msg)
	}
	if ok, _ := ValidateImageContent(bytes.NewReader(png), ".jpg"); ok {
		t.Fatalf("期望扩展名不匹配被拒绝")
	}
	if ok, _ := ValidateImageContent(bytes.NewReader([]byte("plain text")), ".png"); ok {
		t.Fatalf("期望非图片内容被拒绝")
	}
}
