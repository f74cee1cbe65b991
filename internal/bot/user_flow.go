package bot

import (
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) showUserPanel(chatID int64, user *tgbotapi.User) {
	text := fmt.Sprintf("👤 Личный кабинет\n\nИмя: %s\n%s",
		displayName(user), b.subscriptionSummary(user.ID))

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = createUserPanelKeyboard()
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Ошибка отправки кабинета: %v", err)
	}
}

func (b *Bot) showMyStats(chatID int64, userID int64) {
	st, err := b.StatsService.Get(userID)
	if err != nil {
		log.Printf("Ошибка чтения статистики %d: %v", userID, err)
		b.sendMessage(chatID, msgSomethingWrong)
		return
	}
	if st == nil {
		b.sendMessage(chatID, "📊 Статистики пока нет — отметьтесь в опросе")
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 Статистика: %s\n\n", st.Name)
	fmt.Fprintf(&sb, "Всего тренировок: %d\n", st.TotalTrainings)
	fmt.Fprintf(&sb, "✅ Посещено: %d\n", st.Attended)
	fmt.Fprintf(&sb, "❌ Пропущено: %d\n", st.Missed)
	fmt.Fprintf(&sb, "🤔 Возможно: %d\n", st.Maybe)
	if st.TotalTrainings > 0 {
		fmt.Fprintf(&sb, "\nПосещаемость: %d%%\n", st.Attended*100/st.TotalTrainings)
	}
	fmt.Fprintf(&sb, "\nВпервые отметились: %s", st.FirstSeen.Format("02.01.2006"))

	b.sendMessage(chatID, sb.String())
}

func (b *Bot) showMyHistory(chatID int64, userID int64) {
	st, err := b.StatsService.Get(userID)
	if err != nil {
		log.Printf("Ошибка чтения истории %d: %v", userID, err)
		b.sendMessage(chatID, msgSomethingWrong)
		return
	}
	if st == nil || len(st.History) == 0 {
		b.sendMessage(chatID, "📖 История пока пуста")
		return
	}

	var sb strings.Builder
	sb.WriteString("📖 Последние отметки:\n\n")

	// Свежие сверху, не больше десяти.
	shown := 0
	for i := len(st.History) - 1; i >= 0 && shown < 10; i-- {
		event := st.History[i]
		fmt.Fprintf(&sb, "%s — %s\n", event.Date, actionLabel(event.Action))
		shown++
	}

	b.sendMessage(chatID, sb.String())
}

func (b *Bot) showMySubscription(chatID int64, userID int64) {
	b.sendMessage(chatID, b.subscriptionSummary(userID))
}

func (b *Bot) showSubscriptionHistory(chatID int64, userID int64) {
	st, err := b.StatsService.Get(userID)
	if err != nil {
		log.Printf("Ошибка чтения истории абонементов %d: %v", userID, err)
		b.sendMessage(chatID, msgSomethingWrong)
		return
	}
	if st == nil || len(st.SubscriptionHistory) == 0 {
		b.sendMessage(chatID, "🎫 Истории абонементов пока нет")
		return
	}

	var sb strings.Builder
	sb.WriteString("🎫 История абонементов:\n\n")
	for i, snap := range st.SubscriptionHistory {
		fmt.Fprintf(&sb, "%d. %s — остаток %d, цена %d ₽ (%s)\n",
			i+1, subTypeLabel(snap.Type), snap.Lessons, snap.Cost, snap.RecordedAt.Format("02.01.2006"))
	}

	b.sendMessage(chatID, sb.String())
}
