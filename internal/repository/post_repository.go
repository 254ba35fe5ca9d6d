package repository

import "pic-share-server/internal/model"

type PostStore interface {
	Create(post *model.Post) error
	FindByID(id uint) (*model.Post, error)
	FindViewByID(id uint) (*model.PostView, error)
	ListAll() ([]model.PostView, error)
	ListByUser(userID uint) ([]model.PostView, error)
	DeleteWithComments(postID uint) error
	IncrementLikes(postID uint) (int, error)
	DecrementLikes(postID uint) (int, error)
	CountAll() (int64, error)
}
