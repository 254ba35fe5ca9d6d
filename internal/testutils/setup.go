package testutils

import (
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"pic-share-server/internal/db"
	"pic-share-server/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

// SetupDB initializes a unique in-memory SQLite database for testing,
// sets the global db.DB, and performs auto-migration.
// It DOES NOT clear the settings cache (to avoid circular dependencies).
// Callers should call AppService.ClearCache() if needed.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	seq := atomic.AddInt64(&testDBSeq, 1)
	// 与生产同样开启外键约束，保证测试库行为一致
	dsn := fmt.Sprintf("file:pst_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", seq)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	prevDB := db.DB
	t.Cleanup(func() {
		if prevDB != nil && db.DB == gdb {
			db.DB = prevDB
		}
		_ = sqlDB.Close()
	})

	if err := gdb.AutoMigrate(&model.User{}, &model.Setting{}, &model.Post{}, &model.Comment{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	db.DB = gdb
	return gdb
}

// SavedEnv 记录某个环境变量在修改前的状态，供测试结束后恢复。
type SavedEnv struct {
	key      string
	existed  bool
	previous string
}

// SetEnv 设置环境变量并返回其先前状态。
func SetEnv(key, value string) SavedEnv {
	previous, existed := os.LookupEnv(key)
	_ = os.Setenv(key, value)
	return SavedEnv{key: key, existed: existed, previous: previous}
}

// RestoreEnv 按记录恢复环境变量，未设置过的会被清除。
func RestoreEnv(saved []SavedEnv) {
	for i := len(saved) - 1; i >= 0; i-- {
		env := saved[i]
		if env.existed {
			_ = os.Setenv(env.key, env.previous)
		} else {
			_ = os.Unsetenv(env.key)
		}
	}
}
