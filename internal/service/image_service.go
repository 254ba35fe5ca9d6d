package service

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pic-share-server/internal/common"
	"pic-share-server/internal/config"
	"pic-share-server/internal/consts"
	"pic-share-server/internal/utils"

	"github.com/google/uuid"
)

// ValidateImageFile 验证上传的图片文件（大小、后缀、内容）
// 返回:
//   - string: 文件扩展名 (小写, 如 .jpg)
//   - error: 校验失败原因
func (s *AppService) ValidateImageFile(file *multipart.FileHeader) (string, error) {
	// 检查文件大小
	maxSizeMB := s.GetInt(consts.ConfigMaxUploadSize)
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	if file.Size > int64(maxSizeMB)*1024*1024 {
		return "", common.NewValidationError(fmt.Sprintf("文件大小不能超过 %dMB", maxSizeMB))
	}

	// 检查文件扩展名
	allowExtsStr := s.GetString(consts.ConfigAllowFileExtensions)
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		return "", common.NewValidationError("无法识别文件类型")
	}

	allowed := false
	for _, allowExt := range strings.Split(allowExtsStr, ",") {
		if strings.TrimSpace(strings.ToLower(allowExt)) == ext {
			allowed = true
			break
		}
	}
	if !allowed {
		return ext, common.NewValidationError("不支持的文件类型: " + ext)
	}

	// 检查文件内容 (Magic Bytes)
	src, err := file.Open()
	if err != nil {
		return ext, common.NewValidationError("无法打开上传的文件")
	}
	defer func() { _ = src.Close() }()

	if valid, msg := utils.ValidateImageContent(src, ext); !valid {
		return ext, common.NewValidationError(msg)
	}

	return ext, nil
}

// saveUploadedImage 将上传文件落盘到按日期分层的目录下，返回相对路径。
func (s *AppService) saveUploadedImage(file *multipart.FileHeader, ext string) (string, error) {
	now := time.Now()
	datePath := filepath.Join(now.Format("2006"), now.Format("01"), now.Format("02"))

	uploadRoot := uploadRootPath()
	fullDir := filepath.Join(uploadRoot, datePath)
	if err := os.MkdirAll(fullDir, 0755); err != nil {
		log.Printf("MkdirAll error: %v", err)
		return "", common.NewInternalError("系统错误: 无法创建存储目录")
	}

	// 生成唯一文件名
	newFilename := uuid.New().String() + ext
	dst := filepath.Join(fullDir, newFilename)

	src, err := file.Open()
	if err != nil {
		return "", common.NewInternalError("无法读取上传文件")
	}
	defer func() { _ = src.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return "", common.NewInternalError("系统错误: 无法创建文件")
	}
	defer func() { _ = out.Close() }()

	if _, err = io.Copy(out, src); err != nil {
		_ = os.Remove(dst)
		return "", common.NewInternalError("文件保存失败")
	}

	relativePath := filepath.ToSlash(filepath.Join(datePath, newFilename))
	return relativePath, nil
}

// removeUploadedImage 删除已落盘的图片文件，路径先经过安全校验。
func removeUploadedImage(relativePath string) {
	if relativePath == "" {
		return
	}
	fullPath, err := utils.SecureJoin(uploadRootPath(), filepath.FromSlash(relativePath))
	if err != nil {
		log.Printf("resolve image path error: %v, path: %s", err, relativePath)
		return
	}
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		log.Printf("delete file error: %v, path: %s", err, fullPath)
	}
}

func uploadRootPath() string {
	uploadRoot := config.Get().Upload.Path
	if uploadRoot == "" {
		uploadRoot = "uploads/imgs"
	}
	return uploadRoot
}

// ImageURL 将相对路径转换为对外暴露的 URL。
func ImageURL(relativePath string) string {
	if relativePath == "" {
		return ""
	}
	return config.Get().Upload.URLPrefix + relativePath
}
