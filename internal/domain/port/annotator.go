package port

import "damage-scan/internal/domain/entity"

// Annotator рисует рамки повреждений поверх исходного изображения.
type Annotator interface {
	// Annotate возвращает JPEG с подсветкой повреждений цветом по серьёзности.
	Annotate(imageData []byte, detections []entity.Detection) ([]byte, error)
}
