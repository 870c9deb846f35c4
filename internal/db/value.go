package db

// Value 定义了个人价值观条目
type Value struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Icon        string `gorm:"size:100;not null" json:"icon"`
	Order       int    `gorm:"column:order;default:0" json:"order"`
}
