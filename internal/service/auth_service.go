package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"pic-share-server/internal/common"
	"pic-share-server/internal/config"
	"pic-share-server/internal/consts"
	"pic-share-server/internal/model"
	"pic-share-server/internal/repository"
	"pic-share-server/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterUser 注册新用户并返回脱敏后的用户记录。
func (s *AppService) RegisterUser(username, password, email string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if !s.GetBool(consts.ConfigAllowRegister) {
		return nil, common.NewForbiddenError("注册功能已关闭")
	}

	if ok, msg := utils.ValidateUsername(username); !ok {
		return nil, common.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(password); !ok {
		return nil, common.NewValidationError(msg)
	}
	if ok, msg := utils.ValidateEmail(email); !ok {
		return nil, common.NewValidationError(msg)
	}

	// 预检查重复（最终由数据库唯一约束兜底）
	if exists, err := s.repos.Users.FieldExists(repository.UserFieldUsername, username); err != nil {
		log.Printf("check username exists error: %v", err)
		return nil, common.NewInternalError("注册失败，请稍后重试")
	} else if exists {
		return nil, common.NewValidationError("用户名已被占用")
	}
	if exists, err := s.repos.Users.FieldExists(repository.UserFieldEmail, email); err != nil {
		log.Printf("check email exists error: %v", err)
		return nil, common.NewInternalError("注册失败，请稍后重试")
	} else if exists {
		return nil, common.NewValidationError("该邮箱已注册，请更换邮箱")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("bcrypt error: %v", err)
		return nil, common.NewInternalError("注册失败，请稍后重试")
	}

	user := model.User{
		Username: username,
		Password: string(hashed),
		Email:    email,
	}
	if err := s.repos.Users.Create(&user); err != nil {
		// 并发注册穿过预检查时，唯一约束在这里兜底；
		// 其余写入失败按内部错误上报
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, common.NewValidationError("用户名或邮箱已被占用")
		}
		log.Printf("create user error: %v", err)
		return nil, common.NewInternalError("注册失败，请稍后重试")
	}

	return &user, nil
}

// LoginUser 校验凭据并签发登录 token。
// 用户不存在与密码错误返回同一个泛化错误，避免用户枚举。
func (s *AppService) LoginUser(username, password string) (*model.User, string, error) {
	user, err := s.repos.Users.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", common.NewUnauthorizedError("用户名或密码错误")
		}
		log.Printf("find user error: %v", err)
		return nil, "", common.NewInternalError("登录失败，请稍后重试")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", common.NewUnauthorizedError("用户名或密码错误")
	}

	cfg := config.Get()
	token, err := utils.GenerateLoginToken(user.ID, user.Username, time.Hour*time.Duration(cfg.JWT.ExpirationHours))
	if err != nil {
		log.Printf("generate login token error: %v", err)
		return nil, "", common.NewInternalError("登录失败，请稍后重试")
	}

	return user, token, nil
}
