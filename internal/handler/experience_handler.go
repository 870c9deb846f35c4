package handler

import (
	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/service"
	"gorm.io/gorm"
)

type experienceCreateInput struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Company     string  `json:"company" binding:"required,max=255"`
	Description string  `json:"description" binding:"required"`
	StartDate   string  `json:"startDate" binding:"required,max=50"`
	EndDate     *string `json:"endDate" binding:"omitempty,max=50"`
	Current     bool    `json:"current"`
	Order       int     `json:"order"`
}

type experienceUpdateInput struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=255"`
	Company     *string `json:"company" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,min=1"`
	StartDate   *string `json:"startDate" binding:"omitempty,min=1,max=50"`
	EndDate     *string `json:"endDate" binding:"omitempty,max=50"`
	Current     *bool   `json:"current"`
	Order       *int    `json:"order"`
}

func newExperienceHandler(gdb *gorm.DB) *resourceHandler[db.Experience, experienceCreateInput, experienceUpdateInput] {
	return &resourceHandler[db.Experience, experienceCreateInput, experienceUpdateInput]{
		svc:    service.NewResourceService[db.Experience](gdb, "`order` ASC, id ASC"),
		name:   "experience",
		label:  "Experience",
		plural: "experiences",
		fromCreate: func(in experienceCreateInput) db.Experience {
			return db.Experience{
				Title:       in.Title,
				Company:     in.Company,
				Description: in.Description,
				StartDate:   in.StartDate,
				EndDate:     in.EndDate,
				Current:     in.Current,
				Order:       in.Order,
			}
		},
		updates: func(in experienceUpdateInput) map[string]any {
			fields := map[string]any{}
			if in.Title != nil {
				fields["title"] = *in.Title
			}
			if in.Company != nil {
				fields["company"] = *in.Company
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
			if in.Current != nil {
				fields["current"] = *in.Current
			}
			if in.Order != nil {
				fields["order"] = *in.Order
			}
			return fields
		},
	}
}
