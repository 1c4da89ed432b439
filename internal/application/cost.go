package app

import "damage-scan/internal/domain/entity"

// Estimator считает стоимость ремонта по матрице (класс × серьёзность).
// Матрица загружается один раз при старте и дальше только читается.
type Estimator struct {
	matrix      entity.CostMatrix
	defaultCost int
}

// NewEstimator создаёт оценщик с матрицей и запасной стоимостью.
func NewEstimator(matrix entity.CostMatrix, defaultCost int) *Estimator {
	return &Estimator{matrix: matrix, defaultCost: defaultCost}
}

// Estimate возвращает стоимость ремонта одного повреждения.
// Отсутствие записи в матрице — локальная ошибка CostLookupError;
// вызывающий подставляет запасную стоимость и добавляет предупреждение.
func (e *Estimator) Estimate(det entity.Detection) (int, error) {
	return e.matrix.Lookup(det.Class, det.Severity)
}

// DefaultCost — запасная стоимость для нерезолвящихся пар.
func (e *Estimator) DefaultCost() int {
	return e.defaultCost
}

// Aggregate складывает стоимости и считает повреждения по уровням.
// Сводка всегда содержит все три уровня, даже нулевые.
func (e *Estimator) Aggregate(dets []entity.Detection) entity.Summary {
	breakdown := map[entity.Severity]int{
		entity.SeverityMinor:    0,
		entity.SeverityModerate: 0,
		entity.SeveritySevere:   0,
	}

	total := 0
	for _, d := range dets {
		total += d.EstimatedCost
		breakdown[d.Severity]++
	}

	return entity.Summary{
		TotalDamages:       len(dets),
		TotalEstimatedCost: total,
		SeverityBreakdown:  breakdown,
	}
}

// Differential — стоимость только новых повреждений.
// Пары pre_existing и resolved в сумму не входят.
func (e *Estimator) Differential(pairs []entity.DamagePair) int {
	total := 0
	for _, p := range pairs {
		if p.Status == entity.StatusNew && p.Return != nil {
			total += p.Return.EstimatedCost
		}
	}
	return total
}
