package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken       string
	HTTPAddr            string
	InferenceURL        string
	InferenceAPIKey     string
	ModelID             string
	ConfidenceThreshold float64
	MatchThreshold      float64
	DefaultRepairCost   int
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken:       os.Getenv("TELEGRAM_TOKEN"),
		HTTPAddr:            getEnv("HTTP_ADDR", ":8000"),
		InferenceURL:        getEnv("INFERENCE_URL", "https://serverless.roboflow.com"),
		InferenceAPIKey:     os.Getenv("INFERENCE_API_KEY"),
		ModelID:             getEnv("MODEL_ID", "car-damage-detection-5ioys-4z3z4/2"),
		ConfidenceThreshold: getEnvFloat("CONFIDENCE_THRESHOLD", 0.25),
		MatchThreshold:      getEnvFloat("MATCH_THRESHOLD", 0.5),
		DefaultRepairCost:   getEnvInt("DEFAULT_REPAIR_COST", 100),
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}
