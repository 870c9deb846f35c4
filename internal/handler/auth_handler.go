package handler

import (
	"net/http"

	"github.com/devfolio/internal/db"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 校验管理员凭据，通过后签发不透明会话令牌
func (a *API) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidationError(c, "Invalid login data", err)
		return
	}

	// 查找管理员账号
	var user db.User
	if err := a.db.Where("username = ?", input.Username).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	// 验证密码
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	sessionID := a.sessions.Issue()
	c.JSON(http.StatusOK, gin.H{
		"message":   "Login successful",
		"sessionId": sessionID,
	})
}

// Logout 注销当前令牌。未携带或未知令牌同样返回成功，注销是幂等的。
func (a *API) Logout(c *gin.Context) {
	if token := bearerToken(c); token != "" {
		a.sessions.Revoke(token)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// AuthStatus 报告当前令牌是否仍然有效
func (a *API) AuthStatus(c *gin.Context) {
	if token := bearerToken(c); token != "" && a.sessions.Valid(token) {
		c.JSON(http.StatusOK, gin.H{"authenticated": true})
		return
	}
	c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
}

// RequireAuth 保护写接口：Authorization 头里的 Bearer 令牌必须在会话集合中
func (a *API) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" || !a.sessions.Valid(token) {
			respondError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}
