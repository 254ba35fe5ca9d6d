package handler

import (
	"bytes"
	"mime/multipart"
	"testing"

	"pic-share-server/internal/db"
	"pic-share-server/internal/model"
	"pic-share-server/internal/repository"
	"pic-share-server/internal/service"
	"pic-share-server/internal/testutils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	testService *service.AppService
	testHandler *Handler
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	testService = service.NewAppService(repository.NewRepositories(
		repository.NewUserRepository(gdb),
		repository.NewPostRepository(gdb),
		repository.NewCommentRepository(gdb),
		repository.NewSettingRepository(gdb),
	))
	testHandler = NewHandler(testService)
	testService.ClearCache()
	return gdb
}

func seedUser(t *testing.T, username, email string) *model.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("abc12345"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("生成密码哈希失败: %v", err)
	}
	u := model.User{Username: username, Password: string(hashed), Email: email}
	if err := db.DB.Create(&u).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return &u
}

func seedPost(t *testing.T, userID uint, description string) *model.Post {
	t.Helper()
	p := model.Post{UserID: userID, Description: description, ImagePath: "2025/01/01/test.png"}
	if err := db.DB.Create(&p).Error; err != nil {
		t.Fatalf("创建帖子失败: %v", err)
	}
	return &p
}

// buildUploadForm 构造发帖用的 multipart 表单
func buildUploadForm(t *testing.T, description string, image []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	if err := writer.WriteField("description", description); err != nil {
		t.Fatalf("写入表单字段失败: %v", err)
	}
	if image != nil {
		part, err := writer.CreateFormFile("image", "photo.png")
		if err != nil {
			t.Fatalf("创建表单文件失败: %v", err)
		}
		if _, err := part.Write(image); err != nil {
			t.Fatalf("写入表单文件失败: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("关闭表单失败: %v", err)
	}
	return buf, writer.FormDataContentType()
}
