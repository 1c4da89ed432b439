package storage

import (
	"context"
	"sync"

	"damage-scan/internal/domain/entity"
	"damage-scan/internal/domain/port"
)

// MemorySessionRepository — in-memory хранилище сессий инспекторов.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[int64]*entity.Session
}

// NewMemorySessionRepository создаёт новое in-memory хранилище.
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[int64]*entity.Session),
	}
}

// Get возвращает сессию по ID, создаёт новую если не найдена.
func (r *MemorySessionRepository) Get(ctx context.Context, userID, chatID int64) (*entity.Session, error) {
	r.mu.RLock()
	session, exists := r.sessions[userID]
	r.mu.RUnlock()

	if exists {
		return session, nil
	}

	newSession := entity.NewSession(userID, chatID)

	r.mu.Lock()
	r.sessions[userID] = newSession
	r.mu.Unlock()

	return newSession, nil
}

// Save сохраняет состояние сессии.
func (r *MemorySessionRepository) Save(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	r.sessions[session.UserID] = session
	r.mu.Unlock()

	return nil
}

// UpdateState обновляет состояние сессии.
func (r *MemorySessionRepository) UpdateState(ctx context.Context, userID int64, state entity.SessionState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session, exists := r.sessions[userID]; exists {
		session.SetState(state)
	}

	return nil
}

// Проверка реализации интерфейса
var _ port.SessionRepository = (*MemorySessionRepository)(nil)
