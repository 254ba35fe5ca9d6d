package handler

import (
	"net/http"
	"strconv"

	"pic-share-server/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

// WriteServiceError 将 service 层错误转换为标准 HTTP 错误响应
func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	httpx.WriteServiceError(c, err, fallbackMessage)
}

// currentUserID 从 JWT 中间件写入的上下文取出用户ID
func currentUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
		return 0, false
	}
	uid, ok := userID.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "无效的用户ID类型"})
		return 0, false
	}
	return uid, true
}

// parseUintParam 解析路径参数为 uint，失败时写入 400 响应
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	val, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || val == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return 0, false
	}
	return uint(val), true
}
