package bot

import (
	"strings"
	"testing"
	"time"

	"training-poll-bot/internal/models"
	"training-poll-bot/internal/models/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig = &config.Config{
		Training: config.TrainingConfig{
			Time:     "20:00",
			Location: "мкр. Заря",
			Kind:     "ВИИТ тренировка",
		},
	}
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestRenderPollEmpty(t *testing.T) {
	setTestConfig(t)

	text := renderPoll("2026-08-31", models.PollDay{})

	if !strings.Contains(text, "2026-08-31") {
		t.Errorf("в шапке нет даты: %q", text)
	}
	if !strings.Contains(text, "20:00") || !strings.Contains(text, "мкр. Заря") {
		t.Errorf("в шапке нет параметров тренировки: %q", text)
	}
	if !strings.Contains(text, "Пока никто не записался") {
		t.Errorf("нет заглушки пустого дня: %q", text)
	}
	if strings.Contains(text, "Придут") {
		t.Errorf("в пустом опросе не должно быть секций: %q", text)
	}
}

func TestRenderPollSections(t *testing.T) {
	setTestConfig(t)

	day := models.PollDay{
		Yes:   []string{"Иван Петров", "Мария"},
		Maybe: []string{"Олег"},
		No:    []string{"Анна"},
	}
	text := renderPoll("2026-08-31", day)

	if !strings.Contains(text, "✅ Придут (2):") {
		t.Errorf("секция \"придут\": %q", text)
	}
	if !strings.Contains(text, "1. Иван Петров") || !strings.Contains(text, "2. Мария") {
		t.Errorf("нумерация имён: %q", text)
	}
	if !strings.Contains(text, "🤔 Возможно (1):") || !strings.Contains(text, "❌ Не придут (1):") {
		t.Errorf("секции: %q", text)
	}
}

func TestFormatSubscription(t *testing.T) {
	start := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		sub  *models.Subscription
		want string
	}{
		{"нет абонемента", nil, "Абонемента нет"},
		{
			"месячный",
			&models.Subscription{Type: models.SubscriptionMonthly, Lessons: 5, StartDate: start},
			"осталось 5 занятий, действует до 19.09.2026",
		},
		{
			"разовый не использован",
			&models.Subscription{Type: models.SubscriptionSingle, Lessons: 1},
			"не использовано",
		},
		{
			"разовый использован",
			&models.Subscription{Type: models.SubscriptionSingle, Lessons: 0},
			"Разовое занятие: использовано",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatSubscription(tt.sub)
			if !strings.Contains(got, tt.want) {
				t.Errorf("formatSubscription = %q, ожидали подстроку %q", got, tt.want)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		user *tgbotapi.User
		want string
	}{
		{"nil", nil, "Неизвестный"},
		{"имя и фамилия", &tgbotapi.User{FirstName: "Иван", LastName: "Петров"}, "Иван Петров"},
		{"только имя", &tgbotapi.User{FirstName: "Иван"}, "Иван"},
		{"только username", &tgbotapi.User{UserName: "ivan"}, "@ivan"},
		{"пустой", &tgbotapi.User{}, "Неизвестный"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := displayName(tt.user); got != tt.want {
				t.Errorf("displayName = %q, ожидали %q", got, tt.want)
			}
		})
	}
}
