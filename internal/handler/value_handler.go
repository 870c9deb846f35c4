package handler

import (
	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/service"
	"gorm.io/gorm"
)

type valueCreateInput struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
	Icon        string `json:"icon" binding:"required,max=100"`
	Order       int    `json:"order"`
}

type valueUpdateInput struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,min=1"`
	Icon        *string `json:"icon" binding:"omitempty,min=1,max=100"`
	Order       *int    `json:"order"`
}

func newValueHandler(gdb *gorm.DB) *resourceHandler[db.Value, valueCreateInput, valueUpdateInput] {
	return &resourceHandler[db.Value, valueCreateInput, valueUpdateInput]{
		svc:    service.NewResourceService[db.Value](gdb, "`order` ASC, id ASC"),
		name:   "value",
		label:  "Value",
		plural: "values",
		fromCreate: func(in valueCreateInput) db.Value {
			return db.Value{
				Title:       in.Title,
				Description: in.Description,
				Icon:        in.Icon,
				Order:       in.Order,
			}
		},
		updates: func(in valueUpdateInput) map[string]any {
			fields := map[string]any{}
			if in.Title != nil {
				fields["title"] = *in.Title
			}
			if in.Description != nil {
				fields["description"] = *in.Description
			}
			if in.Icon != nil {
				fields["icon"] = *in.Icon
			}
			if in.Order != nil {
				fields["order"] = *in.Order
			}
			return fields
		},
	}
}
