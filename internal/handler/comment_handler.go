package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AddComment 在帖子下发表评论，帖子ID 取自请求体
func (h *Handler) AddComment(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		PostID      uint   `json:"post_id" binding:"required"`
		CommentText string `json:"commentText" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	comment, err := h.service.AddComment(req.PostID, uid, req.CommentText)
	if err != nil {
		WriteServiceError(c, err, "评论失败，请稍后重试")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "评论成功",
		"comment": comment,
	})
}

// GetPostComments 返回帖子下的评论，按发表时间倒序
func (h *Handler) GetPostComments(c *gin.Context) {
	postID, ok := parseUintParam(c, "post_id")
	if !ok {
		return
	}

	comments, err := h.service.ListPostComments(postID)
	if err != nil {
		WriteServiceError(c, err, "获取评论列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// DeleteComment 删除评论，评论作者或帖子作者可操作
func (h *Handler) DeleteComment(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	commentID, ok := parseUintParam(c, "comment_id")
	if !ok {
		return
	}

	if err := h.service.DeleteComment(commentID, uid); err != nil {
		WriteServiceError(c, err, "删除失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
