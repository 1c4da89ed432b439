package app

import (
	"encoding/base64"
	"time"

	"github.com/google/uuid"

	"damage-scan/internal/domain/entity"
)

// ReportBuilder собирает готовый отчёт. Решений не принимает
// и входные данные не изменяет.
type ReportBuilder struct{}

// NewReportBuilder создаёт сборщик отчётов.
func NewReportBuilder() *ReportBuilder {
	return &ReportBuilder{}
}

// Single собирает отчёт по одному изображению.
func (b *ReportBuilder) Single(dets []entity.Detection, summary entity.Summary, warnings []string, annotated []byte) *entity.Report {
	return &entity.Report{
		ID:             uuid.NewString(),
		Timestamp:      time.Now().UTC(),
		Detections:     append([]entity.Detection(nil), dets...),
		Summary:        summary,
		Warnings:       append([]string(nil), warnings...),
		AnnotatedImage: encodeAnnotated(annotated),
	}
}

// Comparison собирает отчёт сверки выдачи и возврата.
func (b *ReportBuilder) Comparison(pairs []entity.DamagePair, summary entity.Summary, cmp entity.ComparisonSummary, warnings []string, annotated []byte) *entity.Report {
	return &entity.Report{
		ID:             uuid.NewString(),
		Timestamp:      time.Now().UTC(),
		Pairs:          append([]entity.DamagePair(nil), pairs...),
		Summary:        summary,
		Comparison:     &cmp,
		Warnings:       append([]string(nil), warnings...),
		AnnotatedImage: encodeAnnotated(annotated),
	}
}

func encodeAnnotated(annotated []byte) string {
	if len(annotated) == 0 {
		return ""
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(annotated)
}
