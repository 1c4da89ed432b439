package app

import (
	"context"
	"sync"

	"damage-scan/internal/domain/entity"
	"damage-scan/internal/domain/port"
)

// SessionService ведёт сценарии проверки и хранит фото выдачи
// до прихода фото возврата.
type SessionService struct {
	repo    port.SessionRepository
	mu      sync.RWMutex
	pickups map[int64][]byte
}

// NewSessionService создаёт сервис сессий инспекторов.
func NewSessionService(repo port.SessionRepository) *SessionService {
	return &SessionService{
		repo:    repo,
		pickups: make(map[int64][]byte),
	}
}

func (s *SessionService) Get(ctx context.Context, userID, chatID int64) (*entity.Session, error) {
	return s.repo.Get(ctx, userID, chatID)
}

func (s *SessionService) SetState(ctx context.Context, userID, chatID int64, state entity.SessionState) (*entity.Session, error) {
	session, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	session.SetState(state)
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// BeginCheck переводит сессию к одиночной проверке фото.
func (s *SessionService) BeginCheck(ctx context.Context, userID, chatID int64) (*entity.Session, error) {
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingPhoto)
}

// BeginCompare начинает сценарий выдача/возврат.
func (s *SessionService) BeginCompare(ctx context.Context, userID, chatID int64) (*entity.Session, error) {
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingPickupPhoto)
}

// Cancel возвращает сессию в главное меню и забывает фото выдачи.
func (s *SessionService) Cancel(ctx context.Context, userID, chatID int64) (*entity.Session, error) {
	s.mu.Lock()
	delete(s.pickups, userID)
	s.mu.Unlock()
	return s.SetState(ctx, userID, chatID, entity.StateMainMenu)
}

// AcceptPickupPhoto запоминает фото выдачи и ждёт фото возврата.
func (s *SessionService) AcceptPickupPhoto(ctx context.Context, userID, chatID int64, photo []byte) (*entity.Session, error) {
	s.mu.Lock()
	s.pickups[userID] = photo
	s.mu.Unlock()
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingReturnPhoto)
}

// TakePickupPhoto забирает сохранённое фото выдачи.
func (s *SessionService) TakePickupPhoto(userID int64) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	photo, ok := s.pickups[userID]
	if !ok || len(photo) == 0 {
		return nil, false
	}
	delete(s.pickups, userID)
	return photo, true
}
