package service

import (
	"errors"
	"log"
	"strings"

	"pic-share-server/internal/common"
	"pic-share-server/internal/model"

	"gorm.io/gorm"
)

// AddComment 为帖子添加评论，返回附带作者用户名的评论视图。
func (s *AppService) AddComment(postID, userID uint, commentText string) (*model.CommentView, error) {
	commentText = strings.TrimSpace(commentText)
	if commentText == "" {
		return nil, common.NewValidationError("评论内容不能为空")
	}

	if _, err := s.repos.Posts.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("帖子不存在")
		}
		log.Printf("find post error: %v", err)
		return nil, common.NewInternalError("评论失败，请稍后重试")
	}

	comment := model.Comment{
		PostID:      postID,
		UserID:      userID,
		CommentText: commentText,
	}
	if err := s.repos.Comments.Create(&comment); err != nil {
		log.Printf("create comment error: %v", err)
		return nil, common.NewInternalError("评论失败，请稍后重试")
	}

	view, err := s.repos.Comments.FindViewByID(comment.ID)
	if err != nil {
		log.Printf("load created comment error: %v", err)
		return nil, common.NewInternalError("评论失败，请稍后重试")
	}
	return view, nil
}

// ListPostComments 返回帖子的全部评论（新评论在前）。
// 帖子不存在时返回空列表，与删除帖子后的行为保持一致。
func (s *AppService) ListPostComments(postID uint) ([]model.CommentView, error) {
	views, err := s.repos.Comments.ListByPost(postID)
	if err != nil {
		log.Printf("list comments error: %v", err)
		return nil, common.NewInternalError("获取评论失败")
	}
	return views, nil
}

// DeleteComment 删除评论。评论作者与帖子作者均可删除。
func (s *AppService) DeleteComment(commentID, requesterID uint) error {
	comment, err := s.repos.Comments.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("评论不存在")
		}
		log.Printf("find comment error: %v", err)
		return common.NewInternalError("删除失败，请稍后重试")
	}

	if comment.UserID != requesterID {
		post, err := s.repos.Posts.FindByID(comment.PostID)
		if err != nil || post.UserID != requesterID {
			return common.NewForbiddenError("无权删除该评论")
		}
	}

	if err := s.repos.Comments.DeleteByID(commentID); err != nil {
		log.Printf("delete comment error: %v", err)
		return common.NewInternalError("删除失败，请稍后重试")
	}
	return nil
}
