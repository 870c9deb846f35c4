package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// profileInput 是完整的资料表单。PUT /profile 按整行写入，
// 因此必填字段始终要求在场，可选字段缺省时清空。
type profileInput struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Phone    string `json:"phone" binding:"omitempty,max=50"`
	Location string `json:"location" binding:"omitempty,max=255"`
	Age      int    `json:"age" binding:"omitempty,min=0,max=150"`
	Position string `json:"position" binding:"omitempty,max=255"`
	Tagline  string `json:"tagline" binding:"omitempty,max=500"`
	Bio      string `json:"bio" binding:"required"`
	ImageURL string `json:"imageUrl" binding:"omitempty,max=500"`
}

// GetProfile 返回站点主人的个人资料
func (a *API) GetProfile(c *gin.Context) {
	profile, err := a.profiles.Get()
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Profile not found")
			return
		}
		respondInternal(c, "Failed to fetch profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile 写入个人资料：首次调用创建唯一的一行，之后原地更新
func (a *API) UpdateProfile(c *gin.Context) {
	var input profileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidationError(c, "Invalid profile data", err)
		return
	}

	profile, err := a.profiles.Upsert(db.Profile{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Location: input.Location,
		Age:      input.Age,
		Position: input.Position,
		Tagline:  input.Tagline,
		Bio:      input.Bio,
		ImageURL: input.ImageURL,
	})
	if err != nil {
		respondInternal(c, "Failed to update profile", err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
