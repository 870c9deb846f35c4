package db

// Skill 定义了技能条目
// Percentage 取值 0-100，Order 为前台展示排序，值越小越靠前
type Skill struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:255;not null" json:"name"`
	Category   string `gorm:"size:100;not null" json:"category"`
	Percentage int    `gorm:"not null" json:"percentage"`
	Icon       string `gorm:"size:100" json:"icon"`
	Order      int    `gorm:"column:order;default:0" json:"order"`
}
