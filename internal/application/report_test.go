package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"damage-scan/internal/domain/entity"
)

func TestReportBuilder_Single(t *testing.T) {
	b := NewReportBuilder()

	dets := []entity.Detection{
		{Class: "bonnet-dent", Severity: entity.SeveritySevere, EstimatedCost: 800},
	}
	summary := entity.Summary{TotalDamages: 1, TotalEstimatedCost: 800}

	report := b.Single(dets, summary, []string{"warn"}, []byte{0xff, 0xd8})

	require.NotEmpty(t, report.ID)
	require.False(t, report.Timestamp.IsZero())
	require.Equal(t, dets, report.Detections)
	require.Equal(t, summary, report.Summary)
	require.Equal(t, []string{"warn"}, report.Warnings)
	require.True(t, strings.HasPrefix(report.AnnotatedImage, "data:image/jpeg;base64,"))
	require.Nil(t, report.Pairs)
	require.Nil(t, report.Comparison)
}

func TestReportBuilder_DoesNotShareInputSlices(t *testing.T) {
	b := NewReportBuilder()

	dets := []entity.Detection{{Class: "paint-chip"}}
	report := b.Single(dets, entity.Summary{}, nil, nil)

	// Сборщик копирует вход: последующие правки снаружи отчёт не трогают.
	dets[0].Class = "mutated"
	require.Equal(t, "paint-chip", report.Detections[0].Class)
	require.Empty(t, report.AnnotatedImage)
}

func TestReportBuilder_Comparison(t *testing.T) {
	b := NewReportBuilder()

	fresh := entity.Detection{Class: "doorouter-scratch", EstimatedCost: 150}
	pairs := []entity.DamagePair{{Status: entity.StatusNew, Return: &fresh, MatchDistance: 1}}
	summary := entity.Summary{TotalDamages: 1, TotalEstimatedCost: 150}
	cmp := entity.ComparisonSummary{ReturnDamages: 1, NewDamages: 1, TotalNewCost: 150}

	report := b.Comparison(pairs, summary, cmp, nil, nil)

	require.NotEmpty(t, report.ID)
	require.Equal(t, pairs, report.Pairs)
	require.NotNil(t, report.Comparison)
	require.Equal(t, cmp, *report.Comparison)
	require.Nil(t, report.Detections)
}
