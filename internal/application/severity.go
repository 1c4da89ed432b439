package app

import "damage-scan/internal/domain/entity"

// SeverityStrategy выводит уровень серьёзности по одной детекции.
type SeverityStrategy interface {
	Severity(det entity.Detection) entity.Severity
}

// ConfidenceBands — стратегия по умолчанию: три диапазона уверенности.
// Границы приходят из конфигурации, а не зашиты в логику.
type ConfidenceBands struct {
	MinorUpto    float64 // уверенность ниже — minor
	ModerateUpto float64 // уверенность ниже — moderate, дальше severe
}

// DefaultConfidenceBands — границы 0.5 и 0.75.
func DefaultConfidenceBands() ConfidenceBands {
	return ConfidenceBands{MinorUpto: 0.5, ModerateUpto: 0.75}
}

func (b ConfidenceBands) Severity(det entity.Detection) entity.Severity {
	switch {
	case det.Confidence >= b.ModerateUpto:
		return entity.SeveritySevere
	case det.Confidence >= b.MinorUpto:
		return entity.SeverityModerate
	default:
		return entity.SeverityMinor
	}
}

// AreaBands — опциональная стратегия: доля площади рамки от площади кадра.
// Для критичных классов (лобовое стекло, сильная вмятина бампера) пороги ниже.
type AreaBands struct {
	ImageArea        int
	SevereRatio      float64
	ModerateRatio    float64
	CriticalSevere   float64
	CriticalModerate float64
}

// NewAreaBands создаёт стратегию по площади для изображения заданного размера.
func NewAreaBands(imageWidth, imageHeight int) AreaBands {
	return AreaBands{
		ImageArea:        imageWidth * imageHeight,
		SevereRatio:      0.08,
		ModerateRatio:    0.03,
		CriticalSevere:   0.05,
		CriticalModerate: 0.02,
	}
}

func (b AreaBands) Severity(det entity.Detection) entity.Severity {
	if b.ImageArea <= 0 {
		return entity.SeverityMinor
	}
	ratio := float64(det.BBox.Area()) / float64(b.ImageArea)

	severe, moderate := b.SevereRatio, b.ModerateRatio
	if class, ok := entity.ClassByName(det.Class); ok && class.Critical {
		severe, moderate = b.CriticalSevere, b.CriticalModerate
	}

	switch {
	case ratio > severe:
		return entity.SeveritySevere
	case ratio > moderate:
		return entity.SeverityModerate
	default:
		return entity.SeverityMinor
	}
}

// Classifier применяет стратегию по умолчанию с переопределениями по категориям.
type Classifier struct {
	def       SeverityStrategy
	overrides map[entity.Category]SeverityStrategy
}

// NewClassifier создаёт классификатор со стратегией по умолчанию.
func NewClassifier(def SeverityStrategy) *Classifier {
	return &Classifier{
		def:       def,
		overrides: make(map[entity.Category]SeverityStrategy),
	}
}

// Override задаёт отдельную стратегию для категории классов.
func (c *Classifier) Override(cat entity.Category, s SeverityStrategy) {
	c.overrides[cat] = s
}

// Severity выводит уровень серьёзности. Детерминированно: одна и та же
// детекция всегда получает один и тот же уровень.
func (c *Classifier) Severity(det entity.Detection) entity.Severity {
	if s, ok := c.overrides[det.Category]; ok {
		return s.Severity(det)
	}
	return c.def.Severity(det)
}
