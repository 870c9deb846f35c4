package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

func init() {
	// 让校验错误里的字段名与 JSON 字段一致，而非 Go 字段名
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// respondInternal 记录底层错误并向客户端返回不含内部细节的 500
func respondInternal(c *gin.Context, message string, err error) {
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg(message)
	respondError(c, http.StatusInternalServerError, message)
}

// respondValidationError 将请求体绑定失败转换为带字段明细的 400 响应。
// 校验失败在路由层截住，不会到达仓储。
func respondValidationError(c *gin.Context, message string, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, gin.H{
				"field":   fe.Field(),
				"message": validationMessage(fe),
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": message, "errors": details})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return "is invalid"
	}
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// bearerToken 提取 Authorization 头中的 Bearer 令牌，头缺失或格式不符时返回空串
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header {
		return ""
	}
	return strings.TrimSpace(token)
}

// noStore 禁止客户端与中间层缓存响应，留言接口使用
func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
}
