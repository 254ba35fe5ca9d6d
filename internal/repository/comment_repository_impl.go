package repository

import (
	"pic-share-server/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

const commentViewColumns = "comments.id, comments.post_id, comments.user_id, users.username, comments.comment_text, comments.created_at"

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) FindByID(id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) FindViewByID(id uint) (*model.CommentView, error) {
	var view model.CommentView
	err := r.db.Table("comments").
		Select(commentViewColumns).
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.id = ?", id).
		Take(&view).Error
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *CommentRepository) ListByPost(postID uint) ([]model.CommentView, error) {
	views := make([]model.CommentView, 0)
	err := r.db.Table("comments").
		Select(commentViewColumns).
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.post_id = ?", postID).
		Order("comments.id DESC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *CommentRepository) DeleteByID(id uint) error {
	return r.db.Delete(&model.Comment{}, id).Error
}

func (r *CommentRepository) CountByPost(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Comment{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
