package handler

import (
	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/service"
	"gorm.io/gorm"
)

type skillCreateInput struct {
	Name       string `json:"name" binding:"required,max=255"`
	Category   string `json:"category" binding:"required,max=100"`
	Percentage *int   `json:"percentage" binding:"required,min=0,max=100"`
	Icon       string `json:"icon" binding:"omitempty,max=100"`
	Order      int    `json:"order"`
}

type skillUpdateInput struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=255"`
	Category   *string `json:"category" binding:"omitempty,min=1,max=100"`
	Percentage *int    `json:"percentage" binding:"omitempty,min=0,max=100"`
	Icon       *string `json:"icon" binding:"omitempty,max=100"`
	Order      *int    `json:"order"`
}

func newSkillHandler(gdb *gorm.DB) *resourceHandler[db.Skill, skillCreateInput, skillUpdateInput] {
	return &resourceHandler[db.Skill, skillCreateInput, skillUpdateInput]{
		svc:    service.NewResourceService[db.Skill](gdb, "`order` ASC, id ASC"),
		name:   "skill",
		label:  "Skill",
		plural: "skills",
		fromCreate: func(in skillCreateInput) db.Skill {
			return db.Skill{
				Name:       in.Name,
				Category:   in.Category,
				Percentage: *in.Percentage,
				Icon:       in.Icon,
				Order:      in.Order,
			}
		},
		updates: func(in skillUpdateInput) map[string]any {
			fields := map[string]any{}
			if in.Name != nil {
				fields["name"] = *in.Name
			}
			if in.Category != nil {
				fields["category"] = *in.Category
			}
			if in.Percentage != nil {
				fields["percentage"] = *in.Percentage
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
