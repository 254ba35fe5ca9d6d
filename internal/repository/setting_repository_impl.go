package repository

import (
	"pic-share-server/internal/model"

	"gorm.io/gorm"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) Get(key string) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepository) Save(setting *model.Setting) error {
	return r.db.Save(setting).Error
}

func (r *SettingRepository) CreateIfMissing(setting *model.Setting) error {
	var count int64
	if err := r.db.Model(&model.Setting{}).Where("key = ?", setting.Key).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	// 忽略并发写入导致的主键冲突
	_ = r.db.Create(setting).Error
	return nil
}
