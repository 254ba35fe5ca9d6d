package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SecureJoin 将相对路径安全拼接到 basePath 下。
// 禁止绝对路径输入，拒绝 ".." 越界，并检查链路上的符号链接。
// 返回目标的绝对路径，可直接用于后续文件读写。
func SecureJoin(basePath, relativePath string) (string, error) {
	baseAbs, err := filepath.Abs(basePath)
	if err != nil {
		return "", fmt.Errorf("路径解析失败: %w", err)
	}

	cleanRel := filepath.Clean(relativePath)
	if cleanRel == "." {
		cleanRel = ""
	}
	if filepath.IsAbs(cleanRel) {
		return "", fmt.Errorf("非法路径: 不允许绝对路径")
	}

	targetAbs, err := filepath.Abs(filepath.Join(baseAbs, cleanRel))
	if err != nil {
		return "", fmt.Errorf("路径解析失败: %w", err)
	}

	if err := ensureWithinBase(baseAbs, targetAbs); err != nil {
		return "", err
	}

	// 从目标路径逐级向上回溯到基目录，已存在的节点不能是符号链接。
	current := targetAbs
	for {
		info, statErr := os.Lstat(current)
		if statErr == nil {
			if info.Mode()&os.ModeSymlink != 0 {
				return "", fmt.Errorf("检测到符号链接穿透风险: %s", current)
			}
		} else if !os.IsNotExist(statErr) {
			return "", fmt.Errorf("检查路径失败: %w", statErr)
		}

		if filepath.Clean(current) == filepath.Clean(baseAbs) {
			break
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("非法路径: 无法定位到安全基目录")
		}
		current = parent
	}

	return targetAbs, nil
}

// ensureWithinBase 判断 targetAbs 是否严格位于 baseAbs 目录树内。
func ensureWithinBase(baseAbs, targetAbs string) error {
	rel, err := filepath.Rel(baseAbs, targetAbs)
	if err != nil {
		return fmt.Errorf("非法路径: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return fmt.Errorf("非法路径: 目标超出基目录")
	}
	return nil
}
