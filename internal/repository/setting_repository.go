package repository

import "pic-share-server/internal/model"

type SettingStore interface {
	Get(key string) (*model.Setting, error)
	Save(setting *model.Setting) error
	CreateIfMissing(setting *model.Setting) error
}
