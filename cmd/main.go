package main

import (
	"context"
	"log"

	"damage-scan/config"
	telegram "damage-scan/internal/api"
	httpapi "damage-scan/internal/api/http"
	"damage-scan/internal/container"
	"damage-scan/internal/infrastructure/inference"
	"damage-scan/internal/infrastructure/storage"
	"damage-scan/internal/infrastructure/vision"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Клиент внешнего детектора
	detector := inference.NewClient(cfg.InferenceURL, cfg.InferenceAPIKey, cfg.ModelID)
	if err := detector.CheckHealth(context.Background()); err != nil {
		log.Printf("Warning: inference service not available: %v", err)
	}

	// Создаём хранилище сессий и аннотатор
	sessionRepo := storage.NewMemorySessionRepository()
	annotator := vision.NewAnnotator()

	// Собираем сервисы приложения
	appContainer := container.New(sessionRepo, detector, annotator, cfg)

	// Telegram-бот запускается только при наличии токена
	if cfg.TelegramToken != "" {
		bot, err := telegram.NewBot(cfg.TelegramToken, appContainer.SessionService, appContainer.InspectionService)
		if err != nil {
			log.Fatalf("Failed to create bot: %v", err)
		}

		go func() {
			log.Println("Bot is running...")
			if err := bot.Run(); err != nil {
				log.Fatalf("Bot error: %v", err)
			}
		}()
	}

	// REST API
	handler := httpapi.NewHandler(appContainer.InspectionService, cfg.ModelID)
	router := httpapi.SetupRouter(handler)

	log.Printf("HTTP API listening on %s", cfg.HTTPAddr)
	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("HTTP server error: %v", err)
	}
}
