package entity

// SessionState — состояние диалога с инспектором.
type SessionState string

const (
	StateMainMenu            SessionState = "main_menu"             // в главном меню
	StateAwaitingPhoto       SessionState = "awaiting_photo"        // ожидание фото для одиночной проверки
	StateAwaitingPickupPhoto SessionState = "awaiting_pickup_photo" // ожидание фото при выдаче
	StateAwaitingReturnPhoto SessionState = "awaiting_return_photo" // ожидание фото при возврате
	StateProcessing          SessionState = "processing"            // идёт обработка
)

// Session — сессия инспектора в боте.
type Session struct {
	UserID int64        // Telegram User ID
	ChatID int64        // Telegram Chat ID
	State  SessionState // текущее состояние диалога
}

// NewSession создаёт сессию с начальным состоянием.
func NewSession(userID, chatID int64) *Session {
	return &Session{
		UserID: userID,
		ChatID: chatID,
		State:  StateMainMenu,
	}
}

// SetState обновляет состояние сессии.
func (s *Session) SetState(state SessionState) {
	s.State = state
}
