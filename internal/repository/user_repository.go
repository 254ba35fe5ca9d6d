package repository

import "pic-share-server/internal/model"

type UserField string

const (
	UserFieldUsername UserField = "username"
	UserFieldEmail    UserField = "email"
)

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Create(user *model.User) error
	FieldExists(field UserField, value string) (bool, error)
	ListAll() ([]model.User, error)
	CountAll() (int64, error)
}
