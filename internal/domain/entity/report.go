package entity

import "time"

// MatchStatus — итог сверки повреждения между выдачей и возвратом.
type MatchStatus string

const (
	StatusPreExisting MatchStatus = "pre_existing" // найдено на обоих снимках
	StatusNew         MatchStatus = "new"          // только на снимке возврата
	StatusResolved    MatchStatus = "resolved"     // только на снимке выдачи, не тарифицируется
)

// DamagePair связывает повреждение с выдачи с повреждением с возврата.
// Ровно одна из ссылок может быть nil в зависимости от статуса.
type DamagePair struct {
	Status        MatchStatus `json:"status"`
	Pickup        *Detection  `json:"pickup,omitempty"`
	Return        *Detection  `json:"return,omitempty"`
	MatchDistance float64     `json:"match_distance"`
}

// Summary — сводка отчёта.
type Summary struct {
	TotalDamages       int              `json:"total_damages"`
	TotalEstimatedCost int              `json:"total_estimated_cost"`
	SeverityBreakdown  map[Severity]int `json:"severity_breakdown"`
}

// ComparisonSummary — дополнительная сводка для режима сравнения.
type ComparisonSummary struct {
	PickupDamages int `json:"pickup_damages"`
	ReturnDamages int `json:"return_damages"`
	NewDamages    int `json:"new_damages"`
	TotalNewCost  int `json:"total_new_cost"`
}

// Report — итоговый отчёт по запросу. После возврата наружу не меняется.
type Report struct {
	ID         string              `json:"report_id"`
	Timestamp  time.Time           `json:"timestamp"`
	Detections []Detection         `json:"detections,omitempty"`
	Pairs      []DamagePair        `json:"pairs,omitempty"`
	Summary    Summary             `json:"summary"`
	Comparison *ComparisonSummary  `json:"comparison_summary,omitempty"`
	Warnings   []string            `json:"warnings,omitempty"`
	// AnnotatedImage — JPEG с подсветкой в виде data-URI, если аннотатор доступен.
	AnnotatedImage string `json:"annotated_image,omitempty"`
}
