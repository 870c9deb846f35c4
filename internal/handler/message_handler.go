package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type messageCreateInput struct {
	Name    string `json:"name" binding:"required,max=255"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Subject string `json:"subject" binding:"required,max=255"`
	Message string `json:"message" binding:"required"`
}

type messageSenderInput struct {
	Email string `json:"email" binding:"required"`
}

// ListMessages 管理端查看全部留言
func (a *API) ListMessages(c *gin.Context) {
	items, err := a.messages.List()
	if err != nil {
		respondInternal(c, "Failed to fetch messages", err)
		return
	}
	noStore(c)
	c.JSON(http.StatusOK, items)
}

// ListMessagesBySender 访客按自己的邮箱查询留言，无需登录
func (a *API) ListMessagesBySender(c *gin.Context) {
	items, err := a.messages.ListBySender(c.Param("email"))
	if err != nil {
		respondInternal(c, "Failed to fetch messages", err)
		return
	}
	noStore(c)
	c.JSON(http.StatusOK, items)
}

// CreateMessage 公开的联系表单入口
func (a *API) CreateMessage(c *gin.Context) {
	var input messageCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidationError(c, "Invalid message data", err)
		return
	}

	message := db.Message{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := a.messages.Create(&message); err != nil {
		respondInternal(c, "Failed to create message", err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

// MarkMessageRead 将留言置为已读，单向操作
func (a *API) MarkMessageRead(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid message ID")
		return
	}

	if err := a.messages.MarkRead(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Message not found")
			return
		}
		respondInternal(c, "Failed to mark message as read", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
}

// DeleteMessage 管理端删除任意留言
func (a *API) DeleteMessage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid message ID")
		return
	}

	if err := a.messages.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Message not found")
			return
		}
		respondInternal(c, "Failed to delete message", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}

// DeleteMessageBySender 发件人自助删除，仅在邮箱与存储值完全一致时生效。
// 不匹配时统一返回 404，不区分"不存在"与"无权限"。
func (a *API) DeleteMessageBySender(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid message ID")
		return
	}

	var input messageSenderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidationError(c, "Email is required", err)
		return
	}

	if err := a.messages.DeleteBySender(id, input.Email); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Message not found or unauthorized")
			return
		}
		respondInternal(c, "Failed to delete message", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}
