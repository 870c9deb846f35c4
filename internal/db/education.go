package db

// Education 定义了教育经历
type Education struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Degree      string `gorm:"size:255;not null" json:"degree"`
	Institution string `gorm:"size:255;not null" json:"institution"`
	Description string `gorm:"type:text;not null" json:"description"`
	StartDate   string `gorm:"size:50;column:start_date;not null" json:"startDate"`
	EndDate     string `gorm:"size:50;column:end_date;not null" json:"endDate"`
	Order       int    `gorm:"column:order;default:0" json:"order"`
}

// TableName 返回自定义表名，education 不做复数化
func (Education) TableName() string {
	return "education"
}
