package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound 在按主键定位的记录不存在时返回
var ErrNotFound = errors.New("record not found")

// ResourceService 是按实体实例化的通用仓储。
// 九个实体的增删改查语义完全一致，只有排序规则不同，
// 因此收敛为一份泛型实现，排序表达式由调用方在构造时给定。
type ResourceService[T any] struct {
	db      *gorm.DB
	orderBy string
}

// NewResourceService 构造指定实体的仓储，orderBy 为空时按主键升序
func NewResourceService[T any](gdb *gorm.DB, orderBy string) *ResourceService[T] {
	if orderBy == "" {
		orderBy = "id ASC"
	}
	return &ResourceService[T]{db: gdb, orderBy: orderBy}
}

// List 返回全部记录，无行时返回空切片而非错误
func (s *ResourceService[T]) List() ([]T, error) {
	items := make([]T, 0)
	if err := s.db.Order(s.orderBy).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return items, nil
}

// Get 按主键获取单条记录
func (s *ResourceService[T]) Get(id uint) (*T, error) {
	var item T
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get record: %w", err)
	}
	return &item, nil
}

// Create 持久化一条新记录，主键由存储层回填
func (s *ResourceService[T]) Create(record *T) error {
	if err := s.db.Create(record).Error; err != nil {
		return fmt.Errorf("create record: %w", err)
	}
	return nil
}

// Update 对已有记录做部分更新，fields 的键为数据库列名。
// 只有显式传入的列会被改写，未提及的列保持原值。
func (s *ResourceService[T]) Update(id uint, fields map[string]any) (*T, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return item, nil
	}

	if err := s.db.Model(item).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("update record: %w", err)
	}

	return s.Get(id)
}

// Delete 按主键删除记录，目标不存在时返回 ErrNotFound。
// 对同一主键重复删除时第二次同样报 ErrNotFound。
func (s *ResourceService[T]) Delete(id uint) error {
	var item T
	result := s.db.Delete(&item, id)
	if result.Error != nil {
		return fmt.Errorf("delete record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
