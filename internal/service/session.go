package service

import (
	"sync"

	"cityhop/internal/model"
)

// SessionManager хранит активные сессии по идентификатору чата/экрана и
// извещает подписчиков об их изменении. Владелец жизненного цикла —
// вызывающая сторона: подписка возвращает функцию отписки, которую нужно
// вызвать при завершении работы.
type SessionManager struct {
	mu        sync.RWMutex
	sessions  map[int64]*model.Session
	subs      map[int]func(chatID int64, s *model.Session)
	nextSubID int
}

// NewSessionManager создает новый менеджер сессий.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[int64]*model.Session),
		subs:     make(map[int]func(int64, *model.Session)),
	}
}

// Current возвращает активную сессию чата или nil, если пользователь не вошел.
func (m *SessionManager) Current(chatID int64) *model.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[chatID]
}

// Set устанавливает сессию чата и извещает подписчиков.
func (m *SessionManager) Set(chatID int64, s *model.Session) {
	m.mu.Lock()
	m.sessions[chatID] = s
	subs := m.snapshotSubs()
	m.mu.Unlock()
	for _, fn := range subs {
		fn(chatID, s)
	}
}

// Clear завершает сессию чата и извещает подписчиков (nil-сессией).
func (m *SessionManager) Clear(chatID int64) {
	m.mu.Lock()
	delete(m.sessions, chatID)
	subs := m.snapshotSubs()
	m.mu.Unlock()
	for _, fn := range subs {
		fn(chatID, nil)
	}
}

// OnChange регистрирует подписчика на изменения сессий.
// Возвращает функцию отписки; повторный вызов отписки безопасен.
func (m *SessionManager) OnChange(fn func(chatID int64, s *model.Session)) func() {
	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subs[id] = fn
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// snapshotSubs копирует список подписчиков; вызывать под блокировкой.
func (m *SessionManager) snapshotSubs() []func(int64, *model.Session) {
	subs := make([]func(int64, *model.Session), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	return subs
}
