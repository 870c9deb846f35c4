package db

// Profile 定义了站点主人的个人资料
// 全表至多一行，由 ProfileService 的 upsert 维护
type Profile struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"size:255;not null" json:"email"`
	Phone    string `gorm:"size:50" json:"phone"`
	Location string `gorm:"size:255" json:"location"`
	Age      int    `json:"age"`
	Position string `gorm:"size:255" json:"position"`
	Tagline  string `gorm:"size:500" json:"tagline"`
	Bio      string `gorm:"type:text;not null" json:"bio"`
	ImageURL string `gorm:"size:500;column:image_url" json:"imageUrl"`
}

// TableName 返回自定义表名，保持单数形式
func (Profile) TableName() string {
	return "profile"
}
