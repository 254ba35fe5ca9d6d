package service

import (
	"sync"

	"pic-share-server/internal/repository"
)

// AppService 聚合业务服务，持有数据访问层与运行时配置缓存。
type AppService struct {
	repos         *repository.Repositories
	settingsCache sync.Map
}

func NewAppService(repos *repository.Repositories) *AppService {
	return &AppService{repos: repos}
}
