package handler

import (
	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/service"
	"gorm.io/gorm"
)

type socialLinkCreateInput struct {
	Name string `json:"name" binding:"required,max=100"`
	Icon string `json:"icon" binding:"required,max=100"`
	URL  string `json:"url" binding:"required,max=255"`
}

type socialLinkUpdateInput struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=100"`
	Icon *string `json:"icon" binding:"omitempty,min=1,max=100"`
	URL  *string `json:"url" binding:"omitempty,min=1,max=255"`
}

func newSocialLinkHandler(gdb *gorm.DB) *resourceHandler[db.SocialLink, socialLinkCreateInput, socialLinkUpdateInput] {
	return &resourceHandler[db.SocialLink, socialLinkCreateInput, socialLinkUpdateInput]{
		svc:    service.NewResourceService[db.SocialLink](gdb, "id ASC"),
		name:   "social link",
		label:  "Social link",
		plural: "social links",
		fromCreate: func(in socialLinkCreateInput) db.SocialLink {
			return db.SocialLink{
				Name: in.Name,
				Icon: in.Icon,
				URL:  in.URL,
			}
		},
		updates: func(in socialLinkUpdateInput) map[string]any {
			fields := map[string]any{}
			if in.Name != nil {
				fields["name"] = *in.Name
			}
			if in.Icon != nil {
				fields["icon"] = *in.Icon
			}
			if in.URL != nil {
				fields["url"] = *in.URL
			}
			return fields
		},
	}
}
