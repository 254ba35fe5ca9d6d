package utils

import (
	"path/filepath"
	"testing"
)

// 测试内容：验证 SecureJoin 在基路径内拼接时返回合法路径。
func TestSecureJoin_AllowsWithinBase(t *testing.T) {
	base := t.TempDir()

	got, err := SecureJoin(base, filepath.Join("a", "b", "c.txt"))
	if err != nil {
		t.Fatalf("SecureJoin returned 错误: %v", err)
	}

	baseAbs, _ := filepath.Abs(base)
	rel, err := filepath.Rel(baseAbs, got)
	if err != nil || rel == ".." || filepath.IsAbs(rel) {
		t.Fatalf("期望 joined path to be under base, got=%q base=%q", got, baseAbs)
	}
}

// 测试内容：验证 SecureJoin 拒绝绝对路径输入。
func TestSecureJoin_RejectsAbsoluteInput(t *testing.T) {
	base := t.TempDir()
	abs := filepath.Join(base, "x.txt")

	if _, err := SecureJoin(base, abs); err == nil {
		t.Fatalf("期望返回错误 for absolute input path")
	}
}

// 测试内容：验证 SecureJoin 拒绝目录穿越导致的越界路径。
func TestSecureJoin_RejectsTraversalOutsideBase(t *testing.T) {
	base := t.TempDir()
	if _, err := SecureJoin(base, filepath.Join("..", "escape.txt")); err == nil {
		t.Fatalf("期望返回错误 for traversal")
	}
}
