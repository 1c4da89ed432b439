package app

import (
	"math"

	"damage-scan/internal/domain/entity"
)

// Normalizer приводит сырой вывод детектора к типизированным Detection.
type Normalizer struct {
	threshold float64 // жёсткий порог уверенности, ниже — отсев
}

// NewNormalizer создаёт нормализатор с порогом уверенности.
func NewNormalizer(confidenceThreshold float64) *Normalizer {
	return &Normalizer{threshold: confidenceThreshold}
}

// Normalize фильтрует детекции по порогу, канонизирует рамки и сверяет метки
// с таблицей классов. Ошибки по отдельным детекциям не прерывают обработку:
// они возвращаются списком, и вызывающий решает, пропустить или прервать.
func (n *Normalizer) Normalize(raws []entity.RawDetection) ([]entity.Detection, []error) {
	dets := make([]entity.Detection, 0, len(raws))
	var errs []error

	for _, raw := range raws {
		if raw.Confidence < n.threshold {
			continue
		}

		class, ok := entity.ClassByName(raw.Label)
		if !ok {
			errs = append(errs, &entity.UnknownClassError{Label: raw.Label})
			continue
		}

		box, err := canonicalize(raw.Box)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		dets = append(dets, entity.Detection{
			Class:      class.Name,
			Category:   class.Category,
			Confidence: raw.Confidence,
			BBox:       box,
		})
	}

	return dets, errs
}

// canonicalize переводит нативную кодировку рамки в углы (x1,y1,x2,y2).
func canonicalize(raw entity.RawBox) (entity.BBox, error) {
	var box entity.BBox
	switch raw.Encoding {
	case entity.EncodingCenter:
		box = entity.BBox{
			X1: int(math.Round(raw.X - raw.W/2)),
			Y1: int(math.Round(raw.Y - raw.H/2)),
			X2: int(math.Round(raw.X + raw.W/2)),
			Y2: int(math.Round(raw.Y + raw.H/2)),
		}
	default:
		box = entity.BBox{
			X1: int(math.Round(raw.X)),
			Y1: int(math.Round(raw.Y)),
			X2: int(math.Round(raw.W)),
			Y2: int(math.Round(raw.H)),
		}
	}

	if err := box.Validate(); err != nil {
		return entity.BBox{}, err
	}
	return box, nil
}
