package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"damage-scan/internal/domain/entity"
)

func TestConfidenceBands(t *testing.T) {
	bands := DefaultConfidenceBands()

	cases := []struct {
		confidence float64
		want       entity.Severity
	}{
		{0.25, entity.SeverityMinor},
		{0.49, entity.SeverityMinor},
		{0.5, entity.SeverityModerate},
		{0.74, entity.SeverityModerate},
		{0.75, entity.SeveritySevere},
		{1.0, entity.SeveritySevere},
	}

	for _, tc := range cases {
		got := bands.Severity(entity.Detection{Confidence: tc.confidence})
		require.Equal(t, tc.want, got, "confidence %v", tc.confidence)
	}
}

func TestConfidenceBands_Deterministic(t *testing.T) {
	bands := DefaultConfidenceBands()
	det := entity.Detection{Confidence: 0.62}

	first := bands.Severity(det)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, bands.Severity(det))
	}
}

func TestAreaBands_Standard(t *testing.T) {
	bands := NewAreaBands(1000, 1000)

	// 2% кадра — minor, 5% — moderate, 10% — severe.
	small := entity.Detection{Class: "roof-dent", BBox: entity.BBox{X1: 0, Y1: 0, X2: 200, Y2: 100}}
	medium := entity.Detection{Class: "roof-dent", BBox: entity.BBox{X1: 0, Y1: 0, X2: 250, Y2: 200}}
	large := entity.Detection{Class: "roof-dent", BBox: entity.BBox{X1: 0, Y1: 0, X2: 400, Y2: 250}}

	require.Equal(t, entity.SeverityMinor, bands.Severity(small))
	require.Equal(t, entity.SeverityModerate, bands.Severity(medium))
	require.Equal(t, entity.SeveritySevere, bands.Severity(large))
}

func TestAreaBands_CriticalClassStricter(t *testing.T) {
	bands := NewAreaBands(1000, 1000)

	// 4% кадра: у обоих классов moderate, до severe не дотягивает.
	box := entity.BBox{X1: 0, Y1: 0, X2: 200, Y2: 200}
	standard := entity.Detection{Class: "roof-dent", BBox: box}
	critical := entity.Detection{Class: "Front-Windscreen-Damage", BBox: box}

	require.Equal(t, entity.SeverityModerate, bands.Severity(standard))
	require.Equal(t, entity.SeverityModerate, bands.Severity(critical))

	// 6% кадра: критичный класс severe, обычный ещё moderate.
	box = entity.BBox{X1: 0, Y1: 0, X2: 300, Y2: 200}
	standard.BBox = box
	critical.BBox = box

	require.Equal(t, entity.SeverityModerate, bands.Severity(standard))
	require.Equal(t, entity.SeveritySevere, bands.Severity(critical))
}

func TestClassifier_CategoryOverride(t *testing.T) {
	classifier := NewClassifier(DefaultConfidenceBands())
	classifier.Override(entity.CategoryGlassLight, NewAreaBands(1000, 1000))

	// Стекло: серьёзность по площади, уверенность роли не играет.
	glass := entity.Detection{
		Class:      "Front-Windscreen-Damage",
		Category:   entity.CategoryGlassLight,
		Confidence: 0.9,
		BBox:       entity.BBox{X1: 0, Y1: 0, X2: 50, Y2: 50},
	}
	require.Equal(t, entity.SeverityMinor, classifier.Severity(glass))

	// Вмятина без переопределения: работают диапазоны уверенности.
	dent := entity.Detection{
		Class:      "bonnet-dent",
		Category:   entity.CategoryDent,
		Confidence: 0.9,
		BBox:       entity.BBox{X1: 0, Y1: 0, X2: 50, Y2: 50},
	}
	require.Equal(t, entity.SeveritySevere, classifier.Severity(dent))
}
