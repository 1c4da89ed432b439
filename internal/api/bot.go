package telegram

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "damage-scan/internal/application"
	"damage-scan/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я бот для осмотра автомобилей проката.

📸 Я нахожу повреждения кузова на фото и оцениваю стоимость ремонта.

📋 Команды:
/check — проверить одно фото
/compare — сравнить фото при выдаче и возврате
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ /check — отправьте одно фото автомобиля, получите список повреждений и смету
2️⃣ /compare — отправьте фото при выдаче, затем фото при возврате; бот посчитает только новые повреждения

💡 Рекомендации:
• Снимайте при хорошем освещении
• Держите весь автомобиль в кадре
• Фото должно быть чётким

📋 Команды:
/check — одиночная проверка
/compare — сравнение выдача/возврат
/cancel — отменить операцию`

	msgAwaitingPhoto       = "📸 Отправьте фото автомобиля для проверки."
	msgAwaitingPickupPhoto = "📸 Отправьте фото автомобиля при выдаче."
	msgAwaitingReturnPhoto = "✅ Фото выдачи получено. Теперь отправьте фото при возврате."
	msgCancelled           = "❌ Операция отменена. Отправьте /check или /compare для новой проверки."
	msgSendCommand         = "📋 Сначала выберите режим: /check или /compare."
	msgUnknownCommand      = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing          = "⏳ Обрабатываю изображение..."
	msgDetectorDown        = "⚠️ Сервис распознавания недоступен. Попробуйте позже."
	msgProcessingError     = "⚠️ Не удалось обработать изображение. Попробуйте сделать другое фото."
	msgPickupLost          = "⚠️ Фото выдачи не найдено. Начните заново: /compare."
)

// Bot представляет Telegram-бота для инспекторов
type Bot struct {
	api         *tgbotapi.BotAPI
	sessions    *app.SessionService
	inspections *app.InspectionService
}

// NewBot создаёт нового бота
func NewBot(token string, sessions *app.SessionService, inspections *app.InspectionService) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:         api,
		sessions:    sessions,
		inspections: inspections,
	}, nil
}

// Run запускает основной цикл обработки сообщений
func (b *Bot) Run() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	ctx := context.Background()

	for update := range updates {
		if update.Message == nil {
			continue
		}

		b.handleMessage(ctx, update.Message)
	}

	return nil
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	session, err := b.sessions.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		log.Printf("Error getting session: %v", err)
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg, session)
		return
	}

	// Текстовое сообщение (не команда)
	b.sendMessage(msg.Chat.ID, msgSendCommand)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.sessions.Cancel(ctx, msg.From.ID, msg.Chat.ID)
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "check":
		b.sessions.BeginCheck(ctx, msg.From.ID, msg.Chat.ID)
		b.sendMessage(msg.Chat.ID, msgAwaitingPhoto)

	case "compare":
		b.sessions.BeginCompare(ctx, msg.From.ID, msg.Chat.ID)
		b.sendMessage(msg.Chat.ID, msgAwaitingPickupPhoto)

	case "cancel":
		b.sessions.Cancel(ctx, msg.From.ID, msg.Chat.ID)
		b.sendMessage(msg.Chat.ID, msgCancelled)

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// handlePhoto обрабатывает входящее фото в зависимости от состояния сессии
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message, session *entity.Session) {
	switch session.State {
	case entity.StateAwaitingPhoto:
		b.handleCheckPhoto(ctx, msg)

	case entity.StateAwaitingPickupPhoto:
		b.handlePickupPhoto(ctx, msg)

	case entity.StateAwaitingReturnPhoto:
		b.handleReturnPhoto(ctx, msg)

	default:
		b.sendMessage(msg.Chat.ID, msgSendCommand)
	}
}

// handleCheckPhoto — одиночная проверка фото
func (b *Bot) handleCheckPhoto(ctx context.Context, msg *tgbotapi.Message) {
	imageData, ok := b.acceptPhoto(ctx, msg)
	if !ok {
		return
	}

	report, err := b.inspections.Inspect(ctx, imageData)
	if err != nil {
		b.reportError(ctx, msg, err)
		return
	}

	b.sendReport(msg.Chat.ID, report)
	b.sessions.Cancel(ctx, msg.From.ID, msg.Chat.ID)
}

// handlePickupPhoto запоминает фото выдачи и ждёт фото возврата
func (b *Bot) handlePickupPhoto(ctx context.Context, msg *tgbotapi.Message) {
	imageData, ok := b.acceptPhoto(ctx, msg)
	if !ok {
		return
	}

	if _, err := b.sessions.AcceptPickupPhoto(ctx, msg.From.ID, msg.Chat.ID, imageData); err != nil {
		log.Printf("Error saving pickup photo: %v", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	b.sendMessage(msg.Chat.ID, msgAwaitingReturnPhoto)
}

// handleReturnPhoto сравнивает фото возврата с сохранённым фото выдачи
func (b *Bot) handleReturnPhoto(ctx context.Context, msg *tgbotapi.Message) {
	imageData, ok := b.acceptPhoto(ctx, msg)
	if !ok {
		return
	}

	pickup, found := b.sessions.TakePickupPhoto(msg.From.ID)
	if !found {
		b.sendMessage(msg.Chat.ID, msgPickupLost)
		b.sessions.Cancel(ctx, msg.From.ID, msg.Chat.ID)
		return
	}

	report, err := b.inspections.Compare(ctx, pickup, imageData)
	if err != nil {
		b.reportError(ctx, msg, err)
		return
	}

	b.sendReport(msg.Chat.ID, report)
	b.sessions.Cancel(ctx, msg.From.ID, msg.Chat.ID)
}

// acceptPhoto скачивает фото максимального разрешения из сообщения
func (b *Bot) acceptPhoto(ctx context.Context, msg *tgbotapi.Message) ([]byte, bool) {
	b.sessions.SetState(ctx, msg.From.ID, msg.Chat.ID, entity.StateProcessing)
	b.sendMessage(msg.Chat.ID, msgProcessing)

	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.downloadFile(photo.FileID)
	if err != nil {
		log.Printf("Error downloading photo: %v", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		b.sessions.Cancel(ctx, msg.From.ID, msg.Chat.ID)
		return nil, false
	}

	return imageData, true
}

// reportError переводит ошибку конвейера в ответ пользователю
func (b *Bot) reportError(ctx context.Context, msg *tgbotapi.Message, err error) {
	log.Printf("Inspection error: %v", err)

	if errors.Is(err, entity.ErrDetectionUnavailable) {
		b.sendMessage(msg.Chat.ID, msgDetectorDown)
	} else {
		b.sendMessage(msg.Chat.ID, msgProcessingError)
	}

	b.sessions.Cancel(ctx, msg.From.ID, msg.Chat.ID)
}

// sendReport отправляет текст отчёта и фото с подсветкой, если оно есть
func (b *Bot) sendReport(chatID int64, report *entity.Report) {
	b.sendMessage(chatID, formatReport(report))

	if report.AnnotatedImage == "" {
		return
	}

	data, err := decodeAnnotated(report.AnnotatedImage)
	if err != nil {
		log.Printf("Error decoding annotated image: %v", err)
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "annotated.jpg", Bytes: data})
	if _, err := b.api.Send(photo); err != nil {
		log.Printf("Error sending photo: %v", err)
	}
}

// formatReport собирает текст отчёта для чата
func formatReport(report *entity.Report) string {
	var sb strings.Builder

	if report.Comparison != nil {
		cmp := report.Comparison
		sb.WriteString("🔍 Сравнение выдача/возврат\n\n")
		fmt.Fprintf(&sb, "Повреждений при выдаче: %d\n", cmp.PickupDamages)
		fmt.Fprintf(&sb, "Повреждений при возврате: %d\n", cmp.ReturnDamages)
		fmt.Fprintf(&sb, "Новых повреждений: %d\n", cmp.NewDamages)
		fmt.Fprintf(&sb, "💰 К оплате: $%d\n", cmp.TotalNewCost)

		for _, pair := range report.Pairs {
			if pair.Status != entity.StatusNew || pair.Return == nil {
				continue
			}
			det := pair.Return
			fmt.Fprintf(&sb, "\n• %s — %s, $%d (%.1f%%)", det.Class, det.Severity, det.EstimatedCost, det.Confidence*100)
		}
	} else {
		if report.Summary.TotalDamages == 0 {
			sb.WriteString("✅ Повреждения не обнаружены.")
		} else {
			sb.WriteString("🚗 Результат осмотра\n\n")
			fmt.Fprintf(&sb, "Всего повреждений: %d\n", report.Summary.TotalDamages)
			fmt.Fprintf(&sb, "💰 Оценка ремонта: $%d\n", report.Summary.TotalEstimatedCost)

			for _, det := range report.Detections {
				fmt.Fprintf(&sb, "\n• %s — %s, $%d (%.1f%%)", det.Class, det.Severity, det.EstimatedCost, det.Confidence*100)
			}
		}
	}

	for _, w := range report.Warnings {
		fmt.Fprintf(&sb, "\n⚠️ %s", w)
	}

	return sb.String()
}

// decodeAnnotated достаёт JPEG из data-URI отчёта
func decodeAnnotated(dataURI string) ([]byte, error) {
	idx := strings.Index(dataURI, ",")
	if idx < 0 {
		return nil, errors.New("malformed annotated image data")
	}
	return base64.StdEncoding.DecodeString(dataURI[idx+1:])
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(b.api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}
