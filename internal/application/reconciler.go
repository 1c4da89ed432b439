package app

import (
	"sort"

	"damage-scan/internal/domain/entity"
)

// unmatchedDistance ставится парам без принятого совпадения.
const unmatchedDistance = 1.0

// Reconciler сопоставляет повреждения со снимков выдачи и возврата.
// Метрика: match_distance = 1 − IoU рамок. Симметрична, лежит в [0,1],
// для совпадающих рамок равна нулю.
type Reconciler struct {
	threshold float64 // дистанция ниже порога — пара принимается
}

// NewReconciler создаёт сверщик с порогом принятия пары.
func NewReconciler(matchThreshold float64) *Reconciler {
	return &Reconciler{threshold: matchThreshold}
}

type candidate struct {
	pickup   int
	ret      int
	distance float64
}

type match struct {
	pickup   int
	distance float64
}

// Reconcile жадно разбирает пары-кандидаты одного класса по возрастанию
// дистанции. Совпавшие пары — pre_existing, остатки возврата — new,
// остатки выдачи — resolved. Порядок результата стабилен: сначала
// повреждения возврата в исходном порядке, затем остатки выдачи.
func (r *Reconciler) Reconcile(pickup, ret []entity.Detection) []entity.DamagePair {
	var candidates []candidate
	for i, p := range pickup {
		for j, q := range ret {
			// Кросс-классовые пары запрещены: царапина не совпадает с вмятиной.
			if p.Class != q.Class {
				continue
			}
			candidates = append(candidates, candidate{
				pickup:   i,
				ret:      j,
				distance: 1 - p.BBox.IoU(q.BBox),
			})
		}
	}

	// При равной дистанции решают исходные индексы: сверка детерминирована.
	sort.Slice(candidates, func(a, b int) bool {
		ca, cb := candidates[a], candidates[b]
		if ca.distance != cb.distance {
			return ca.distance < cb.distance
		}
		if ca.pickup != cb.pickup {
			return ca.pickup < cb.pickup
		}
		return ca.ret < cb.ret
	})

	matchedPickup := make([]bool, len(pickup))
	byReturn := make(map[int]match, len(ret))
	for _, c := range candidates {
		if matchedPickup[c.pickup] {
			continue
		}
		if _, taken := byReturn[c.ret]; taken {
			continue
		}
		if c.distance >= r.threshold {
			continue
		}
		matchedPickup[c.pickup] = true
		byReturn[c.ret] = match{pickup: c.pickup, distance: c.distance}
	}

	pairs := make([]entity.DamagePair, 0, len(pickup)+len(ret))
	for j := range ret {
		q := ret[j]
		if m, ok := byReturn[j]; ok {
			p := pickup[m.pickup]
			pairs = append(pairs, entity.DamagePair{
				Status:        entity.StatusPreExisting,
				Pickup:        &p,
				Return:        &q,
				MatchDistance: m.distance,
			})
			continue
		}
		pairs = append(pairs, entity.DamagePair{
			Status:        entity.StatusNew,
			Return:        &q,
			MatchDistance: unmatchedDistance,
		})
	}

	for i := range pickup {
		if matchedPickup[i] {
			continue
		}
		p := pickup[i]
		pairs = append(pairs, entity.DamagePair{
			Status:        entity.StatusResolved,
			Pickup:        &p,
			MatchDistance: unmatchedDistance,
		})
	}

	return pairs
}
