package router

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/devfolio/internal/auth"
	"github.com/devfolio/internal/config"
	"github.com/devfolio/internal/handler"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Setup 配置 Gin 引擎：日志与恢复中间件、上传目录静态服务、全部 /api 路由
func Setup(cfg config.AppConfig, gdb *gorm.DB, sessions *auth.Manager) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	r := gin.New()
	r.Use(requestLogger(), recovery())

	// 上传文件的静态服务
	r.Static(cfg.UploadURLPath, cfg.UploadDir)

	api := handler.NewAPI(gdb, sessions, cfg.UploadDir, cfg.UploadURLPath)
	api.RegisterRoutes(r)

	return r
}

// requestLogger 为每个请求记录一行结构化日志，并透传或生成请求 ID
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)

		c.Next()

		event := log.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// recovery 捕获处理器中的 panic，记录堆栈并统一转换为 500 响应
func recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("panic", r).
					Bytes("stack", debug.Stack()).
					Str("path", c.Request.URL.Path).
					Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			}
		}()
		c.Next()
	}
}
