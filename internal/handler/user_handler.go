package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSelfInfo 返回当前登录用户的信息
func (h *Handler) GetSelfInfo(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.service.GetUserProfile(uid)
	if err != nil {
		WriteServiceError(c, err, "获取用户信息失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ListUsers 返回全部用户的公开信息
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers()
	if err != nil {
		WriteServiceError(c, err, "获取用户列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}
