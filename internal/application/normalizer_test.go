package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"damage-scan/internal/domain/entity"
)

func rawCenter(label string, conf, x, y, w, h float64) entity.RawDetection {
	return entity.RawDetection{
		Label:      label,
		Confidence: conf,
		Box:        entity.RawBox{Encoding: entity.EncodingCenter, X: x, Y: y, W: w, H: h},
	}
}

func TestNormalizer_FiltersBelowThreshold(t *testing.T) {
	n := NewNormalizer(0.25)

	dets, errs := n.Normalize([]entity.RawDetection{
		rawCenter("bonnet-dent", 0.24, 100, 100, 40, 40),
		rawCenter("bonnet-dent", 0.25, 100, 100, 40, 40),
	})

	require.Empty(t, errs)
	require.Len(t, dets, 1)
	require.Equal(t, 0.25, dets[0].Confidence)
}

func TestNormalizer_ThresholdIsConfigurable(t *testing.T) {
	for _, threshold := range []float64{0, 0.1, 0.5, 0.9, 1} {
		n := NewNormalizer(threshold)
		dets, _ := n.Normalize([]entity.RawDetection{
			rawCenter("bonnet-dent", 0.45, 100, 100, 40, 40),
		})
		for _, d := range dets {
			require.GreaterOrEqual(t, d.Confidence, threshold)
		}
	}
}

func TestNormalizer_UnknownClass(t *testing.T) {
	n := NewNormalizer(0.25)

	dets, errs := n.Normalize([]entity.RawDetection{
		rawCenter("windshield-crack-xyz", 0.9, 100, 100, 40, 40),
		rawCenter("paint-chip", 0.9, 200, 200, 40, 40),
	})

	// Неизвестная метка не роняет пакет: валидная детекция остаётся.
	require.Len(t, dets, 1)
	require.Equal(t, "paint-chip", dets[0].Class)

	require.Len(t, errs, 1)
	var unknown *entity.UnknownClassError
	require.ErrorAs(t, errs[0], &unknown)
	require.Equal(t, "windshield-crack-xyz", unknown.Label)
}

func TestNormalizer_CenterEncoding(t *testing.T) {
	n := NewNormalizer(0.25)

	dets, errs := n.Normalize([]entity.RawDetection{
		rawCenter("roof-dent", 0.8, 50, 50, 20, 10),
	})

	require.Empty(t, errs)
	require.Len(t, dets, 1)
	require.Equal(t, entity.BBox{X1: 40, Y1: 45, X2: 60, Y2: 55}, dets[0].BBox)
	require.Equal(t, entity.CategoryDent, dets[0].Category)
}

func TestNormalizer_CornersEncoding(t *testing.T) {
	n := NewNormalizer(0.25)

	dets, errs := n.Normalize([]entity.RawDetection{
		{
			Label:      "Headlight-Damage",
			Confidence: 0.7,
			Box:        entity.RawBox{Encoding: entity.EncodingCorners, X: 10, Y: 20, W: 110, H: 120},
		},
	})

	require.Empty(t, errs)
	require.Len(t, dets, 1)
	require.Equal(t, entity.BBox{X1: 10, Y1: 20, X2: 110, Y2: 120}, dets[0].BBox)
}

func TestNormalizer_DegenerateBox(t *testing.T) {
	n := NewNormalizer(0.25)

	dets, errs := n.Normalize([]entity.RawDetection{
		rawCenter("paint-trace", 0.9, 100, 100, 0, 0),
	})

	require.Empty(t, dets)
	require.Len(t, errs, 1)

	var invalid *entity.InvalidBoundingBoxError
	require.ErrorAs(t, errs[0], &invalid)
}

func TestNormalizer_SubThresholdUnknownLabelIsFiltered(t *testing.T) {
	n := NewNormalizer(0.25)

	dets, errs := n.Normalize([]entity.RawDetection{
		rawCenter("windshield-crack-xyz", 0.1, 100, 100, 40, 40),
	})

	// Отсев по порогу идёт до проверки класса.
	require.Empty(t, dets)
	require.Empty(t, errs)
}
