package db

// SocialLink 定义了页脚展示的社交链接
type SocialLink struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Icon string `gorm:"size:100;not null" json:"icon"`
	URL  string `gorm:"size:255;not null" json:"url"`
}
