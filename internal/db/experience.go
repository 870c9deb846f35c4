package db

// Experience 定义了工作经历
// EndDate 为空表示仍在职，此时 Current 通常为 true
type Experience struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Company     string  `gorm:"size:255;not null" json:"company"`
	Description string  `gorm:"type:text;not null" json:"description"`
	StartDate   string  `gorm:"size:50;column:start_date;not null" json:"startDate"`
	EndDate     *string `gorm:"size:50;column:end_date" json:"endDate"`
	Current     bool    `gorm:"default:false" json:"current"`
	Order       int     `gorm:"column:order;default:0" json:"order"`
}
