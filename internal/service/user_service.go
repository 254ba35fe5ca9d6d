package service

import (
	"errors"
	"log"

	"pic-share-server/internal/common"
	"pic-share-server/internal/model"

	"gorm.io/gorm"
)

// GetUserProfile 获取用户信息（密码字段不参与序列化）。
func (s *AppService) GetUserProfile(userID uint) (*model.User, error) {
	user, err := s.repos.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("用户不存在")
		}
		log.Printf("find user error: %v", err)
		return nil, common.NewInternalError("获取用户信息失败")
	}
	return user, nil
}

// ListUsers 返回全部用户列表。
func (s *AppService) ListUsers() ([]model.User, error) {
	users, err := s.repos.Users.ListAll()
	if err != nil {
		log.Printf("list users error: %v", err)
		return nil, common.NewInternalError("获取用户列表失败")
	}
	return users, nil
}
