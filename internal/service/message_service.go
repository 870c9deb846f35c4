package service

import (
	"fmt"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

// MessageService 处理访客留言。
// 除常规的管理端操作外，还提供按发件邮箱的自助查询与删除：
// 访客只需提供留言时使用的邮箱即可管理自己的留言，无需登录。
type MessageService struct {
	db *gorm.DB
}

// NewMessageService 构造 MessageService
func NewMessageService(gdb *gorm.DB) *MessageService {
	return &MessageService{db: gdb}
}

// List 返回全部留言，按提交时间升序
func (s *MessageService) List() ([]db.Message, error) {
	items := make([]db.Message, 0)
	if err := s.db.Order("created_at ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return items, nil
}

// ListBySender 返回指定邮箱发出的留言，邮箱精确匹配
func (s *MessageService) ListBySender(email string) ([]db.Message, error) {
	items := make([]db.Message, 0)
	if err := s.db.Where("email = ?", email).Order("created_at ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list messages by sender: %w", err)
	}
	return items, nil
}

// Create 持久化一条新留言，Read 初始为 false
func (s *MessageService) Create(message *db.Message) error {
	message.Read = false
	if err := s.db.Create(message).Error; err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

// MarkRead 将留言标记为已读。标记是单向的，接口不提供重置为未读。
func (s *MessageService) MarkRead(id uint) error {
	result := s.db.Model(&db.Message{}).Where("id = ?", id).Update("read", true)
	if result.Error != nil {
		return fmt.Errorf("mark message read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete 管理端删除任意留言
func (s *MessageService) Delete(id uint) error {
	result := s.db.Delete(&db.Message{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete message: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBySender 自助删除：仅当留言的存储邮箱与提交的邮箱完全一致（区分大小写）时删除，
// 否则一律按 ErrNotFound 处理，不向调用方泄露该 id 是否存在。
func (s *MessageService) DeleteBySender(id uint, email string) error {
	result := s.db.Where("id = ? AND email = ?", id, email).Delete(&db.Message{})
	if result.Error != nil {
		return fmt.Errorf("delete message by sender: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
