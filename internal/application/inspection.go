package app

import (
	"context"
	"errors"

	"damage-scan/internal/domain/entity"
	"damage-scan/internal/domain/port"
)

// InspectionService управляет конвейером оценки повреждений:
// детектор → нормализация → серьёзность → стоимость → [сверка] → отчёт.
// Состояния между запросами не хранит.
type InspectionService struct {
	detector   port.DamageDetector
	annotator  port.Annotator
	normalizer *Normalizer
	classifier *Classifier
	estimator  *Estimator
	reconciler *Reconciler
	reports    *ReportBuilder
}

// NewInspectionService создаёт сервис оценки повреждений.
func NewInspectionService(
	detector port.DamageDetector,
	annotator port.Annotator,
	normalizer *Normalizer,
	classifier *Classifier,
	estimator *Estimator,
	reconciler *Reconciler,
) *InspectionService {
	return &InspectionService{
		detector:   detector,
		annotator:  annotator,
		normalizer: normalizer,
		classifier: classifier,
		estimator:  estimator,
		reconciler: reconciler,
		reports:    NewReportBuilder(),
	}
}

// Inspect — одиночная проверка фото автомобиля.
// Ноль валидных детекций — это корректный отчёт, а не ошибка.
func (s *InspectionService) Inspect(ctx context.Context, image []byte) (*entity.Report, error) {
	if s.detector == nil {
		return nil, errors.New("detector is not configured")
	}

	set, err := s.detector.Detect(ctx, image)
	if err != nil {
		// В том числе ErrDetectionUnavailable: частичный отчёт не строится.
		return nil, err
	}

	dets, warnings := s.process(set)

	var annotated []byte
	if s.annotator != nil && len(dets) > 0 {
		annotated, _ = s.annotator.Annotate(image, dets)
	}

	summary := s.estimator.Aggregate(dets)
	return s.reports.Single(dets, summary, warnings, annotated), nil
}

// Compare сверяет фото выдачи и возврата. Тарифицируются только
// повреждения со статусом new.
func (s *InspectionService) Compare(ctx context.Context, pickupImage, returnImage []byte) (*entity.Report, error) {
	if s.detector == nil {
		return nil, errors.New("detector is not configured")
	}

	pickupSet, err := s.detector.Detect(ctx, pickupImage)
	if err != nil {
		return nil, err
	}
	returnSet, err := s.detector.Detect(ctx, returnImage)
	if err != nil {
		return nil, err
	}

	pickupDets, warnings := s.process(pickupSet)
	returnDets, returnWarnings := s.process(returnSet)
	warnings = append(warnings, returnWarnings...)

	pairs := s.reconciler.Reconcile(pickupDets, returnDets)

	newDets := make([]entity.Detection, 0, len(returnDets))
	for _, p := range pairs {
		if p.Status == entity.StatusNew {
			newDets = append(newDets, *p.Return)
		}
	}

	var annotated []byte
	if s.annotator != nil && len(newDets) > 0 {
		annotated, _ = s.annotator.Annotate(returnImage, newDets)
	}

	summary := s.estimator.Aggregate(newDets)
	cmp := entity.ComparisonSummary{
		PickupDamages: len(pickupDets),
		ReturnDamages: len(returnDets),
		NewDamages:    len(newDets),
		TotalNewCost:  s.estimator.Differential(pairs),
	}

	return s.reports.Comparison(pairs, summary, cmp, warnings, annotated), nil
}

// process нормализует один набор детекций и проставляет производные поля.
// Локальные ошибки превращаются в предупреждения отчёта.
func (s *InspectionService) process(set *entity.DetectionSet) ([]entity.Detection, []string) {
	dets, errs := s.normalizer.Normalize(set.Raw)

	warnings := make([]string, 0, len(errs))
	for _, err := range errs {
		warnings = append(warnings, err.Error())
	}

	for i := range dets {
		dets[i].Severity = s.classifier.Severity(dets[i])

		cost, err := s.estimator.Estimate(dets[i])
		if err != nil {
			var lookupErr *entity.CostLookupError
			if !errors.As(err, &lookupErr) {
				warnings = append(warnings, err.Error())
				continue
			}
			warnings = append(warnings, err.Error()+", using default cost")
			cost = s.estimator.DefaultCost()
		}
		dets[i].EstimatedCost = cost
	}

	return dets, warnings
}
