package db

import (
	"fmt"

	"gorm.io/gorm"
)

// Seed 在空库上写入一份演示数据，便于本地开发与前端联调。
// 以 profile 表是否有行作为是否已初始化的判断依据，重复调用不会写入第二份。
func Seed(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&Profile{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count profile rows: %w", err)
	}
	if count > 0 {
		return nil
	}

	return gdb.Transaction(func(tx *gorm.DB) error {
		profile := Profile{
			Name:     "John Doe",
			Email:    "john.doe@email.com",
			Phone:    "+62 812-3456-7890",
			Location: "Jakarta, Indonesia",
			Age:      22,
			Position: "Full Stack Developer",
			Tagline:  "Full Stack Developer & Tech Enthusiast",
			Bio:      "Full Stack Developer dengan pengalaman 5+ tahun dalam mengembangkan aplikasi web dan mobile.",
			ImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400",
		}
		if err := tx.Create(&profile).Error; err != nil {
			return fmt.Errorf("seed profile: %w", err)
		}

		skills := []Skill{
			{Name: "React.js", Category: "Frontend", Percentage: 90, Icon: "fab fa-react", Order: 1},
			{Name: "Node.js", Category: "Backend", Percentage: 85, Icon: "fab fa-node-js", Order: 2},
			{Name: "Go", Category: "Backend", Percentage: 80, Icon: "fas fa-code", Order: 3},
			{Name: "Docker", Category: "DevOps", Percentage: 70, Icon: "fab fa-docker", Order: 4},
		}
		if err := tx.Create(&skills).Error; err != nil {
			return fmt.Errorf("seed skills: %w", err)
		}

		endDate := "2021"
		experiences := []Experience{
			{
				Title:       "Senior Full Stack Developer",
				Company:     "Tech Company Inc.",
				Description: "Leading development of enterprise web applications and mentoring junior developers.",
				StartDate:   "2021",
				Current:     true,
				Order:       1,
			},
			{
				Title:       "Frontend Developer",
				Company:     "Digital Agency",
				Description: "Developed responsive web applications with modern frontend technologies.",
				StartDate:   "2019",
				EndDate:     &endDate,
				Order:       2,
			},
		}
		if err := tx.Create(&experiences).Error; err != nil {
			return fmt.Errorf("seed experiences: %w", err)
		}

		education := Education{
			Degree:      "Bachelor of Computer Science",
			Institution: "University of Technology",
			Description: "Focused on software engineering and web development with honors degree.",
			StartDate:   "2014",
			EndDate:     "2018",
			Order:       1,
		}
		if err := tx.Create(&education).Error; err != nil {
			return fmt.Errorf("seed education: %w", err)
		}

		activities := []Activity{
			{Title: "Hackathon Winner", Description: "First place in National Tech Hackathon 2022", Icon: "fas fa-trophy", Order: 1},
			{Title: "Community Leader", Description: "Leading local developer community with 500+ members", Icon: "fas fa-users", Order: 2},
		}
		if err := tx.Create(&activities).Error; err != nil {
			return fmt.Errorf("seed activities: %w", err)
		}

		values := []Value{
			{Title: "Innovation", Description: "Always seeking creative solutions and staying updated with latest technologies", Icon: "fas fa-lightbulb", Order: 1},
			{Title: "Collaboration", Description: "Building strong relationships and working effectively in teams", Icon: "fas fa-handshake", Order: 2},
			{Title: "Quality", Description: "Committed to delivering high-quality, maintainable code", Icon: "fas fa-star", Order: 3},
		}
		if err := tx.Create(&values).Error; err != nil {
			return fmt.Errorf("seed values: %w", err)
		}

		articles := []Article{
			{
				Title:     "Membangun Modern Web App dengan React",
				Content:   "## React Hooks\n\nTutorial lengkap menggunakan React Hooks dan modern best practices.",
				Excerpt:   "Tutorial lengkap menggunakan React Hooks dan modern best practices.",
				Category:  "React",
				ImageURL:  "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=800&h=400",
				Published: true,
			},
			{
				Title:     "Optimasi Performance Node.js Backend",
				Content:   "## Caching\n\nTips dan trik untuk meningkatkan performance aplikasi backend Node.js.",
				Excerpt:   "Tips dan trik untuk meningkatkan performance aplikasi backend Node.js.",
				Category:  "Node.js",
				ImageURL:  "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?w=800&h=400",
				Published: true,
			},
		}
		if err := tx.Create(&articles).Error; err != nil {
			return fmt.Errorf("seed articles: %w", err)
		}

		links := []SocialLink{
			{Name: "GitHub", Icon: "fab fa-github", URL: "https://github.com/johndoe"},
			{Name: "LinkedIn", Icon: "fab fa-linkedin", URL: "https://linkedin.com/in/johndoe"},
		}
		if err := tx.Create(&links).Error; err != nil {
			return fmt.Errorf("seed social links: %w", err)
		}

		return nil
	})
}
