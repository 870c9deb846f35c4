package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// resourceHandler 将九个近乎相同的 CRUD 处理器收敛为一份泛型实现。
// T 为实体模型，C/U 分别为创建与部分更新的请求体。
// 各实体只需提供 DTO 定义和两个转换函数（见 *_handler.go）。
type resourceHandler[T any, C any, U any] struct {
	svc    *service.ResourceService[T]
	name   string // 错误消息中的单数名，如 "article"
	label  string // 首字母大写形式，如 "Article"
	plural string // 复数名，如 "articles"

	// fromCreate 把通过校验的创建请求转换为实体
	fromCreate func(C) T
	// updates 把部分更新请求转换为列名到新值的映射，只含显式传入的字段
	updates func(U) map[string]any
	// detail 可选：接管单条查询的响应渲染（文章用它附带渲染后的 HTML）
	detail func(c *gin.Context, item *T)
}

// mount 注册标准的五条 CRUD 路由，写操作挂认证中间件
func (h *resourceHandler[T, C, U]) mount(r *gin.RouterGroup, path string, requireAuth gin.HandlerFunc) {
	r.GET(path, h.list)
	r.GET(path+"/:id", h.get)
	r.POST(path, requireAuth, h.create)
	r.PUT(path+"/:id", requireAuth, h.update)
	r.DELETE(path+"/:id", requireAuth, h.delete)
}

func (h *resourceHandler[T, C, U]) list(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		respondInternal(c, "Failed to fetch "+h.plural, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *resourceHandler[T, C, U]) get(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid "+h.name+" ID")
		return
	}

	item, err := h.svc.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, h.label+" not found")
			return
		}
		respondInternal(c, "Failed to fetch "+h.name, err)
		return
	}

	if h.detail != nil {
		h.detail(c, item)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *resourceHandler[T, C, U]) create(c *gin.Context) {
	var input C
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidationError(c, "Invalid "+h.name+" data", err)
		return
	}

	record := h.fromCreate(input)
	if err := h.svc.Create(&record); err != nil {
		respondInternal(c, "Failed to create "+h.name, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (h *resourceHandler[T, C, U]) update(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid "+h.name+" ID")
		return
	}

	var input U
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidationError(c, "Invalid "+h.name+" data", err)
		return
	}

	item, err := h.svc.Update(id, h.updates(input))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, h.label+" not found")
			return
		}
		respondInternal(c, "Failed to update "+h.name, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *resourceHandler[T, C, U]) delete(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid "+h.name+" ID")
		return
	}

	if err := h.svc.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, h.label+" not found")
			return
		}
		respondInternal(c, "Failed to delete "+h.name, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": h.label + " deleted successfully"})
}
