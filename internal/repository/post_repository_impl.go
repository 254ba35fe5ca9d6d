package repository

import (
	"pic-share-server/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

const postViewColumns = "posts.id, posts.user_id, users.username, posts.description, posts.image_path, posts.likes, posts.created_at"

func (r *PostRepository) Create(post *model.Post) error {
	return r.db.Create(post).Error
}

func (r *PostRepository) FindByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) FindViewByID(id uint) (*model.PostView, error) {
	var view model.PostView
	err := r.db.Table("posts").
		Select(postViewColumns).
		Joins("JOIN users ON users.id = posts.user_id").
		Where("posts.id = ?", id).
		Take(&view).Error
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *PostRepository) ListAll() ([]model.PostView, error) {
	views := make([]model.PostView, 0)
	err := r.db.Table("posts").
		Select(postViewColumns).
		Joins("JOIN users ON users.id = posts.user_id").
		Order("posts.id DESC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *PostRepository) ListByUser(userID uint) ([]model.PostView, error) {
	views := make([]model.PostView, 0)
	err := r.db.Table("posts").
		Select(postViewColumns).
		Joins("JOIN users ON users.id = posts.user_id").
		Where("posts.user_id = ?", userID).
		Order("posts.id DESC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// DeleteWithComments 在单个事务中删除帖子及其全部评论
func (r *PostRepository) DeleteWithComments(postID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, postID).Error
	})
}

// IncrementLikes 原子自增点赞计数并返回新值
func (r *PostRepository) IncrementLikes(postID uint) (int, error) {
	res := r.db.Model(&model.Post{}).
		Where("id = ?", postID).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return r.currentLikes(postID)
}

// DecrementLikes 原子自减点赞计数，0 为下限，返回新值
func (r *PostRepository) DecrementLikes(postID uint) (int, error) {
	res := r.db.Model(&model.Post{}).
		Where("id = ? AND likes > 0", postID).
		UpdateColumn("likes", gorm.Expr("likes - 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	// 未更新到行：帖子不存在，或计数已为 0
	return r.currentLikes(postID)
}

func (r *PostRepository) currentLikes(postID uint) (int, error) {
	var post model.Post
	if err := r.db.Select("likes").First(&post, postID).Error; err != nil {
		return 0, err
	}
	return post.Likes, nil
}

func (r *PostRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Post{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
