package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health 健康检查，不依赖数据库
func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"message":   "Server is running",
	})
}
