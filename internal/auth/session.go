package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager 持有已签发的后台会话令牌及其签发时间。
// 令牌只存在于进程内，进程重启后全部失效。
type Manager struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]time.Time
}

// NewManager 构造会话管理器，ttl 为 0 时令牌永不过期
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:      ttl,
		sessions: make(map[string]time.Time),
	}
}

// Issue 签发一个新的不透明令牌并登记为有效会话
func (m *Manager) Issue() string {
	token := uuid.NewString()
	m.mu.Lock()
	m.sessions[token] = time.Now()
	m.mu.Unlock()
	return token
}

// Revoke 注销指定令牌，对未知令牌是空操作
func (m *Manager) Revoke(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// Valid 判断令牌当前是否有效，过期的令牌会被顺带清理
func (m *Manager) Valid(token string) bool {
	m.mu.RLock()
	issued, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return false
	}
	if m.ttl > 0 && time.Since(issued) > m.ttl {
		m.Revoke(token)
		return false
	}
	return true
}

// Active 返回当前登记的会话数量
func (m *Manager) Active() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
