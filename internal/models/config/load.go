package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Load загружает конфигурацию из окружения
func Load() error {
	env := getEnv("APP_ENV", "development")

	AppConfig = &Config{
		Environment: env,
		Bot: BotConfig{
			Token:    getEnv("BOT_TOKEN", ""),
			Debug:    getEnvAsBool("BOT_DEBUG", env != "production"),
			AdminIDs: parseAdminIDs(getEnv("ADMIN_IDS", "")),
		},
		Storage: StorageConfig{
			Dir: getEnv("LOG_DIR", "logs"),
		},
		Training: TrainingConfig{
			Time:     getEnv("DEFAULT_TRAINING_TIME", "20:00"),
			Location: getEnv("DEFAULT_TRAINING_LOCATION", "мкр. Заря"),
			Kind:     getEnv("DEFAULT_TRAINING_TYPE", "ВИИТ тренировка"),
		},
	}

	return validate()
}

// validate проверяет обязательные параметры
func validate() error {
	var errors []string

	if AppConfig.Bot.Token == "" {
		errors = append(errors, "BOT_TOKEN is required")
	}

	if len(AppConfig.Bot.AdminIDs) == 0 && AppConfig.Environment == "production" {
		errors = append(errors, "ADMIN_IDS is required in production")
	}

	if len(errors) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errors, ", "))
	}

	return nil
}

// parseAdminIDs парсит список ID администраторов
func parseAdminIDs(ids string) []int64 {
	if ids == "" {
		return []int64{}
	}

	var result []int64
	for _, idStr := range strings.Split(ids, ",") {
		if id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64); err == nil {
			result = append(result, id)
		}
	}
	return result
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
