package db

import "time"

// Message 定义了访客通过联系表单留下的消息
// Read 只会从 false 置为 true，接口不提供重置
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Subject   string    `gorm:"size:255;not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	Read      bool      `gorm:"default:false" json:"read"`
}
