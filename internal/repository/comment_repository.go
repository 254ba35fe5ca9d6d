package repository

import "pic-share-server/internal/model"

type CommentStore interface {
	Create(comment *model.Comment) error
	FindByID(id uint) (*model.Comment, error)
	FindViewByID(id uint) (*model.CommentView, error)
	ListByPost(postID uint) ([]model.CommentView, error)
	DeleteByID(id uint) error
	CountByPost(postID uint) (int64, error)
}
