package apiclient

import "sync"

// TokenStore abstracts where bearer tokens live (memory, cookies, disk)
// so the gateway never reaches for process-global state.
type TokenStore interface {
	AdminToken() string
	SetAdminToken(token string)
	UserToken() string
	SetUserToken(token string)
	Clear()
}

// MemoryTokens is a mutex-guarded in-process TokenStore.
type MemoryTokens struct {
	mu    sync.RWMutex
	admin string
	user  string
}

func NewMemoryTokens() *MemoryTokens { return &MemoryTokens{} }

func (m *MemoryTokens) AdminToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.admin
}

func (m *MemoryTokens) SetAdminToken(token string) {
	m.mu.Lock()
	m.admin = token
	m.mu.Unlock()
}

func (m *MemoryTokens) UserToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

func (m *MemoryTokens) SetUserToken(token string) {
	m.mu.Lock()
	m.user = token
	m.mu.Unlock()
}

func (m *MemoryTokens) Clear() {
	m.mu.Lock()
	m.admin, m.user = "", ""
	m.mu.Unlock()
}
