package service

import (
	"errors"
	"fmt"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

// ProfileService 维护站点主人的单行个人资料
// profile 表的基数不超过 1，写入走 upsert 而非常规 create
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService 构造 ProfileService
func NewProfileService(gdb *gorm.DB) *ProfileService {
	return &ProfileService{db: gdb}
}

// Get 返回当前的个人资料，尚未设置时返回 ErrNotFound
func (s *ProfileService) Get() (*db.Profile, error) {
	var profile db.Profile
	if err := s.db.First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

// Upsert 不存在时创建唯一的一行，存在时原地整行覆盖。
// 读写包在同一事务里，避免并发首写产生两行。
func (s *ProfileService) Upsert(input db.Profile) (*db.Profile, error) {
	var result db.Profile

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing db.Profile
		err := tx.First(&existing).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			input.ID = 0
			if err := tx.Create(&input).Error; err != nil {
				return err
			}
			result = input
			return nil
		}

		updates := map[string]any{
			"name":      input.Name,
			"email":     input.Email,
			"phone":     input.Phone,
			"location":  input.Location,
			"age":       input.Age,
			"position":  input.Position,
			"tagline":   input.Tagline,
			"bio":       input.Bio,
			"image_url": input.ImageURL,
		}
		if err := tx.Model(&db.Profile{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
			return err
		}

		input.ID = existing.ID
		result = input
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	return &result, nil
}
