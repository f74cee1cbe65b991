package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"training-poll-bot/internal/bot"
	"training-poll-bot/internal/models/config"
	stats_repo "training-poll-bot/internal/repository/stats"
	subscription_repo "training-poll-bot/internal/repository/subscription"
	payment_service "training-poll-bot/internal/service/payment"
	poll_service "training-poll-bot/internal/service/poll"
	stats_service "training-poll-bot/internal/service/stats"
	subscription_service "training-poll-bot/internal/service/subscription"
	storage "training-poll-bot/pkg"

	"github.com/joho/godotenv"
)

func main() {
	// .env опционален, в проде конфиг приходит из окружения.
	_ = godotenv.Load()

	if err := config.Load(); err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	cfg := config.AppConfig
	log.Printf("🚀 Запуск в окружении: %s", cfg.Environment)

	// Два JSON-документа — весь персистентный стейт бота.
	subsStore, err := storage.NewJSONStore(filepath.Join(cfg.Storage.Dir, "subscriptions.json"))
	if err != nil {
		log.Fatalf("❌ Ошибка хранилища абонементов: %v", err)
	}
	statsStore, err := storage.NewJSONStore(filepath.Join(cfg.Storage.Dir, "user_stats.json"))
	if err != nil {
		log.Fatalf("❌ Ошибка хранилища статистики: %v", err)
	}

	// Инициализация репозиториев
	subscriptionRepo, err := subscription_repo.NewSubscriptionRepository(subsStore)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки абонементов: %v", err)
	}
	statsRepo, err := stats_repo.NewStatsRepository(statsStore)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки статистики: %v", err)
	}
	log.Printf("🗄️  Хранилище: %s", cfg.Storage.Dir)

	// Инициализация сервисов
	subscriptionService := subscription_service.NewSubscriptionService(subscriptionRepo)
	statsService := stats_service.NewStatsService(statsRepo, subscriptionRepo)
	pollService := poll_service.NewPollService(subscriptionService, statsService)
	paymentService := payment_service.NewPaymentService(subscriptionService, statsService)

	telegramBot, err := bot.NewBot(
		subscriptionService,
		pollService,
		statsService,
		paymentService,
	)
	if err != nil {
		log.Fatal("❌ Failed to create bot:", err)
	}

	// Настраиваем graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Запускаем бота в горутине
	go func() {
		if err := telegramBot.Start(); err != nil {
			log.Printf("❌ Ошибка запуска бота: %v", err)
			stop()
		}
	}()

	// Ожидаем сигнал завершения
	<-ctx.Done()

	log.Println("🛑 Получен сигнал завершения...")

	// Даем время на завершение операций
	_, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Println("👋 Корректное завершение работы")
}
