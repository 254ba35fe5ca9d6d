package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreatePost 发布帖子，multipart 表单需包含 description 和 image 字段
func (h *Handler) CreatePost(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	description := c.PostForm("description")

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请选择图片"})
		return
	}

	post, err := h.service.CreatePost(uid, description, file)
	if err != nil {
		WriteServiceError(c, err, "发布失败，请稍后重试")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "发布成功",
		"post":    post,
	})
}

// GetPosts 返回全站帖子，按发布时间倒序
func (h *Handler) GetPosts(c *gin.Context) {
	posts, err := h.service.ListPosts()
	if err != nil {
		WriteServiceError(c, err, "获取帖子列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetUserPosts 返回指定用户的帖子
func (h *Handler) GetUserPosts(c *gin.Context) {
	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		return
	}

	posts, err := h.service.ListUserPosts(userID)
	if err != nil {
		WriteServiceError(c, err, "获取帖子列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// DeletePost 删除帖子，仅帖子作者可操作
func (h *Handler) DeletePost(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, ok := parseUintParam(c, "post_id")
	if !ok {
		return
	}

	if err := h.service.DeletePost(postID, uid); err != nil {
		WriteServiceError(c, err, "删除失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

func (h *Handler) LikePost(c *gin.Context) {
	postID, ok := parseUintParam(c, "post_id")
	if !ok {
		return
	}

	likes, err := h.service.LikePost(postID)
	if err != nil {
		WriteServiceError(c, err, "点赞失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "点赞成功",
		"likes":   likes,
	})
}

func (h *Handler) UnlikePost(c *gin.Context) {
	postID, ok := parseUintParam(c, "post_id")
	if !ok {
		return
	}

	likes, err := h.service.UnlikePost(postID)
	if err != nil {
		WriteServiceError(c, err, "取消点赞失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "已取消点赞",
		"likes":   likes,
	})
}
