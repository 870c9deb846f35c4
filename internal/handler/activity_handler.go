package handler

import (
	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/service"
	"gorm.io/gorm"
)

type activityCreateInput struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
	Icon        string `json:"icon" binding:"required,max=100"`
	Order       int    `json:"order"`
}

type activityUpdateInput struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,min=1"`
	Icon        *string `json:"icon" binding:"omitempty,min=1,max=100"`
	Order       *int    `json:"order"`
}

func newActivityHandler(gdb *gorm.DB) *resourceHandler[db.Activity, activityCreateInput, activityUpdateInput] {
	return &resourceHandler[db.Activity, activityCreateInput, activityUpdateInput]{
		svc:    service.NewResourceService[db.Activity](gdb, "`order` ASC, id ASC"),
		name:   "activity",
		label:  "Activity",
		plural: "activities",
		fromCreate: func(in activityCreateInput) db.Activity {
			return db.Activity{
				Title:       in.Title,
				Description: in.Description,
				Icon:        in.Icon,
				Order:       in.Order,
			}
		},
		updates: func(in activityUpdateInput) map[string]any {
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
