package handler

import (
	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/service"
	"gorm.io/gorm"
)

type educationCreateInput struct {
	Degree      string `json:"degree" binding:"required,max=255"`
	Institution string `json:"institution" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
	StartDate   string `json:"startDate" binding:"required,max=50"`
	EndDate     string `json:"endDate" binding:"required,max=50"`
	Order       int    `json:"order"`
}

type educationUpdateInput struct {
	Degree      *string `json:"degree" binding:"omitempty,min=1,max=255"`
	Institution *string `json:"institution" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,min=1"`
	StartDate   *string `json:"startDate" binding:"omitempty,min=1,max=50"`
	EndDate     *string `json:"endDate" binding:"omitempty,min=1,max=50"`
	Order       *int    `json:"order"`
}

func newEducationHandler(gdb *gorm.DB) *resourceHandler[db.Education, educationCreateInput, educationUpdateInput] {
	return &resourceHandler[db.Education, educationCreateInput, educationUpdateInput]{
		svc:    service.NewResourceService[db.Education](gdb, "`order` ASC, id ASC"),
		name:   "education",
		label:  "Education",
		plural: "education",
		fromCreate: func(in educationCreateInput) db.Education {
			return db.Education{
				Degree:      in.Degree,
				Institution: in.Institution,
				Description: in.Description,
				StartDate:   in.StartDate,
				EndDate:     in.EndDate,
				Order:       in.Order,
			}
		},
		updates: func(in educationUpdateInput) map[string]any {
			fields := map[string]any{}
			if in.Degree != nil {
				fields["degree"] = *in.Degree
			}
			if in.Institution != nil {
				fields["institution"] = *in.Institution
			}
			if in.Description != nil {
				fields["description"] = *in.Description
			}
			if in.StartDate != nil {
				fields["start_date"] = *in.StartDate
			}
			if in.EndDate != nil {
				fields["end_date"] = *in.EndDate
			}
			if in.Order != nil {
				fields["order"] = *in.Order
			}
			return fields
		},
	}
}
