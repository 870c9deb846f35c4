package db

import "time"

// Article 定义了文章模型，内容为 Markdown 原文
type Article struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Excerpt   string    `gorm:"type:text;not null" json:"excerpt"`
	Category  string    `gorm:"size:100;not null" json:"category"`
	ImageURL  string    `gorm:"size:500;column:image_url" json:"imageUrl"`
	Published bool      `gorm:"default:false" json:"published"`
	CreatedAt time.Time `json:"createdAt"`
}
