package model

import "time"

type Post struct {
	ID          uint      `json:"post_id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	User        User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	Description string    `json:"description" gorm:"not null"`
	ImagePath   string    `json:"image_path"`
	Likes       int       `json:"likes" gorm:"not null;default:0"`
	Comments    []Comment `json:"-"`
}

// PostView 帖子视图，附带作者用户名（join users）
type PostView struct {
	ID          uint      `json:"post_id"`
	UserID      uint      `json:"user_id"`
	Username    string    `json:"username"`
	Description string    `json:"description"`
	ImagePath   string    `json:"image_path"`
	Likes       int       `json:"likes"`
	CreatedAt   time.Time `json:"created_at"`
}
