package service

import (
	"testing"

	"pic-share-server/internal/repository"
	"pic-share-server/internal/testutils"

	"gorm.io/gorm"
)

var testService *AppService

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	testService = NewAppService(repository.NewRepositories(
		repository.NewUserRepository(gdb),
		repository.NewPostRepository(gdb),
		repository.NewCommentRepository(gdb),
		repository.NewSettingRepository(gdb),
	))
	testService.ClearCache()
	return gdb
}
