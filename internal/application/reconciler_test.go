package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"damage-scan/internal/domain/entity"
)

func det(class string, conf float64, box entity.BBox) entity.Detection {
	return entity.Detection{Class: class, Confidence: conf, BBox: box}
}

func TestReconciler_IdentityLaw(t *testing.T) {
	r := NewReconciler(0.5)

	dets := []entity.Detection{
		det("bonnet-dent", 0.9, entity.BBox{X1: 10, Y1: 10, X2: 100, Y2: 100}),
		det("paint-chip", 0.5, entity.BBox{X1: 200, Y1: 200, X2: 240, Y2: 240}),
		det("Headlight-Damage", 0.7, entity.BBox{X1: 300, Y1: 50, X2: 360, Y2: 110}),
	}

	pairs := r.Reconcile(dets, dets)
	require.Len(t, pairs, len(dets))

	for _, p := range pairs {
		require.Equal(t, entity.StatusPreExisting, p.Status)
		require.Equal(t, 0.0, p.MatchDistance)
	}
}

func TestReconciler_EmptyPickup(t *testing.T) {
	r := NewReconciler(0.5)

	ret := []entity.Detection{
		det("bonnet-dent", 0.9, entity.BBox{X1: 10, Y1: 10, X2: 100, Y2: 100}),
		det("paint-chip", 0.5, entity.BBox{X1: 200, Y1: 200, X2: 240, Y2: 240}),
	}

	pairs := r.Reconcile(nil, ret)
	require.Len(t, pairs, 2)
	for _, p := range pairs {
		require.Equal(t, entity.StatusNew, p.Status)
		require.Nil(t, p.Pickup)
		require.NotNil(t, p.Return)
	}
}

func TestReconciler_EmptyReturn(t *testing.T) {
	r := NewReconciler(0.5)

	pickup := []entity.Detection{
		det("bonnet-dent", 0.9, entity.BBox{X1: 10, Y1: 10, X2: 100, Y2: 100}),
	}

	pairs := r.Reconcile(pickup, nil)
	require.Len(t, pairs, 1)
	require.Equal(t, entity.StatusResolved, pairs[0].Status)
	require.Nil(t, pairs[0].Return)
}

func TestReconciler_NeverMatchesAcrossClasses(t *testing.T) {
	r := NewReconciler(0.5)

	// Одинаковые рамки, разные классы: царапина не совпадает с вмятиной.
	box := entity.BBox{X1: 10, Y1: 10, X2: 100, Y2: 100}
	pickup := []entity.Detection{det("bonnet-dent", 0.9, box)}
	ret := []entity.Detection{det("doorouter-scratch", 0.9, box)}

	pairs := r.Reconcile(pickup, ret)
	require.Len(t, pairs, 2)

	statuses := map[entity.MatchStatus]int{}
	for _, p := range pairs {
		statuses[p.Status]++
	}
	require.Equal(t, 1, statuses[entity.StatusNew])
	require.Equal(t, 1, statuses[entity.StatusResolved])
	require.Equal(t, 0, statuses[entity.StatusPreExisting])
}

func TestReconciler_RejectsDistantMatch(t *testing.T) {
	r := NewReconciler(0.5)

	// Один класс, но рамки не пересекаются: дистанция 1, пара не принимается.
	pickup := []entity.Detection{det("bonnet-dent", 0.9, entity.BBox{X1: 0, Y1: 0, X2: 50, Y2: 50})}
	ret := []entity.Detection{det("bonnet-dent", 0.9, entity.BBox{X1: 500, Y1: 500, X2: 550, Y2: 550})}

	pairs := r.Reconcile(pickup, ret)
	require.Len(t, pairs, 2)
	for _, p := range pairs {
		require.NotEqual(t, entity.StatusPreExisting, p.Status)
	}
}

func TestReconciler_Deterministic(t *testing.T) {
	r := NewReconciler(0.5)

	// Две пары с одинаковой дистанцией: порядок решают исходные индексы.
	box := entity.BBox{X1: 10, Y1: 10, X2: 100, Y2: 100}
	pickup := []entity.Detection{
		det("bonnet-dent", 0.8, box),
		det("bonnet-dent", 0.9, box),
	}
	ret := []entity.Detection{
		det("bonnet-dent", 0.7, box),
		det("bonnet-dent", 0.6, box),
	}

	first := r.Reconcile(pickup, ret)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, r.Reconcile(pickup, ret))
	}

	// Тай-брейк: pickup[0]↔return[0], pickup[1]↔return[1].
	require.Equal(t, entity.StatusPreExisting, first[0].Status)
	require.Equal(t, 0.8, first[0].Pickup.Confidence)
	require.Equal(t, 0.7, first[0].Return.Confidence)
	require.Equal(t, entity.StatusPreExisting, first[1].Status)
	require.Equal(t, 0.9, first[1].Pickup.Confidence)
	require.Equal(t, 0.6, first[1].Return.Confidence)
}

func TestReconciler_PickupReturnScenario(t *testing.T) {
	r := NewReconciler(0.5)

	boxA := entity.BBox{X1: 50, Y1: 60, X2: 150, Y2: 160}
	boxB := entity.BBox{X1: 300, Y1: 300, X2: 380, Y2: 340}

	pickup := []entity.Detection{det("bonnet-dent", 0.9, boxA)}
	ret := []entity.Detection{
		det("bonnet-dent", 0.9, boxA),
		det("doorouter-scratch", 0.6, boxB),
	}

	pairs := r.Reconcile(pickup, ret)
	require.Len(t, pairs, 2)

	require.Equal(t, entity.StatusPreExisting, pairs[0].Status)
	require.Equal(t, "bonnet-dent", pairs[0].Return.Class)
	require.Equal(t, 0.0, pairs[0].MatchDistance)

	require.Equal(t, entity.StatusNew, pairs[1].Status)
	require.Equal(t, "doorouter-scratch", pairs[1].Return.Class)
}

func TestReconciler_GreedyPicksClosest(t *testing.T) {
	r := NewReconciler(0.5)

	pickup := []entity.Detection{
		det("bonnet-dent", 0.9, entity.BBox{X1: 0, Y1: 0, X2: 100, Y2: 100}),
	}
	// Первая рамка возврата слегка смещена, вторая совпадает точно:
	// жадный алгоритм должен выбрать точное совпадение.
	ret := []entity.Detection{
		det("bonnet-dent", 0.9, entity.BBox{X1: 20, Y1: 20, X2: 120, Y2: 120}),
		det("bonnet-dent", 0.9, entity.BBox{X1: 0, Y1: 0, X2: 100, Y2: 100}),
	}

	pairs := r.Reconcile(pickup, ret)
	require.Len(t, pairs, 2)

	require.Equal(t, entity.StatusNew, pairs[0].Status)
	require.Equal(t, entity.StatusPreExisting, pairs[1].Status)
	require.Equal(t, 0.0, pairs[1].MatchDistance)
}
