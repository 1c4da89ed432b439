package container

import (
	"damage-scan/config"
	app "damage-scan/internal/application"
	"damage-scan/internal/domain/entity"
	"damage-scan/internal/domain/port"
)

type Container struct {
	SessionService    *app.SessionService
	InspectionService *app.InspectionService
}

func New(sessionRepo port.SessionRepository, detector port.DamageDetector, annotator port.Annotator, cfg *config.Config) *Container {
	normalizer := app.NewNormalizer(cfg.ConfidenceThreshold)
	classifier := app.NewClassifier(app.DefaultConfidenceBands())
	estimator := app.NewEstimator(entity.DefaultCostMatrix(), cfg.DefaultRepairCost)
	reconciler := app.NewReconciler(cfg.MatchThreshold)

	sessionService := app.NewSessionService(sessionRepo)
	inspectionService := app.NewInspectionService(detector, annotator, normalizer, classifier, estimator, reconciler)

	return &Container{
		SessionService:    sessionService,
		InspectionService: inspectionService,
	}
}
