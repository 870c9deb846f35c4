package db

// Activity 定义了课外活动或成就条目
type Activity struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Icon        string `gorm:"size:100;not null" json:"icon"`
	Order       int    `gorm:"column:order;default:0" json:"order"`
}
