package port

import (
	"context"

	"damage-scan/internal/domain/entity"
)

// DamageDetector — интерфейс внешнего детектора повреждений.
// Недоступность сервиса сигнализируется через entity.ErrDetectionUnavailable.
type DamageDetector interface {
	// Detect прогоняет изображение через модель и возвращает сырые результаты.
	Detect(ctx context.Context, imageData []byte) (*entity.DetectionSet, error)
}
