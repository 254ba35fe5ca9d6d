package model

import "time"

type Comment struct {
	ID          uint      `json:"comment_id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
	PostID      uint      `json:"post_id" gorm:"not null;index"`
	Post        Post      `json:"-" gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE;"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	User        User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	CommentText string    `json:"comment_text" gorm:"not null"`
}

// CommentView 评论视图，附带作者用户名（join users）
type CommentView struct {
	ID          uint      `json:"comment_id"`
	PostID      uint      `json:"post_id"`
	UserID      uint      `json:"user_id"`
	Username    string    `json:"username"`
	CommentText string    `json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
}
