package bot

import (
	"fmt"
	"log"

	"training-poll-bot/internal/models/config"
	"training-poll-bot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	api                 *tgbotapi.BotAPI
	SubscriptionService service.SubscriptionService
	PollService         service.PollService
	StatsService        service.StatsService
	PaymentService      service.PaymentService
}

func NewBot(
	subscriptionService service.SubscriptionService,
	pollService service.PollService,
	statsService service.StatsService,
	paymentService service.PaymentService,
) (*Bot, error) {
	cfg := config.AppConfig.Bot

	if cfg.Token == "" {
		log.Panic("BOT_TOKEN не установлен в конфигурации")
	}

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	api.Debug = cfg.Debug

	log.Printf("🤖 Бот инициализирован: %s (debug: %v)", api.Self.UserName, cfg.Debug)
	log.Printf("👑 Администраторы: %v", cfg.AdminIDs)

	return &Bot{
		api:                 api,
		SubscriptionService: subscriptionService,
		PollService:         pollService,
		StatsService:        statsService,
		PaymentService:      paymentService,
	}, nil
}

func (b *Bot) Start() error {
	log.Printf("Авторизован как %s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		go b.handleUpdate(update)
	}

	return nil
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	// Ни одно обновление не должно уронить процесс.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Паника в обработчике: %v", r)
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(update.Message)
	}
}

func (b *Bot) isAdmin(userID int64) bool {
	return config.AppConfig.Bot.IsAdmin(userID)
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Ошибка отправки сообщения в чат %d: %v", chatID, err)
	}
}

// sendPrivate пишет пользователю в личку. Доставка не гарантирована:
// пользователь мог не начинать диалог с ботом.
func (b *Bot) sendPrivate(userID int64, text string) {
	msg := tgbotapi.NewMessage(userID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Не удалось написать пользователю %d: %v", userID, err)
	}
}

func displayName(user *tgbotapi.User) string {
	if user == nil {
		return "Неизвестный"
	}

	name := user.FirstName
	if user.LastName != "" {
		name += " " + user.LastName
	}
	if name == "" && user.UserName != "" {
		name = "@" + user.UserName
	}
	if name == "" {
		name = "Неизвестный"
	}
	return name
}
