package bot

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"training-poll-bot/internal/models"
	payment_service "training-poll-bot/internal/service/payment"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) showAdminPanel(message *tgbotapi.Message) {
	if !b.isAdmin(message.From.ID) {
		b.sendMessage(message.Chat.ID, msgAdminsOnly)
		return
	}
	b.sendAdminPanel(message.Chat.ID)
}

func (b *Bot) handleAdminPanelCallback(callback *tgbotapi.CallbackQuery) {
	if !b.isAdmin(callback.From.ID) {
		return
	}
	b.sendAdminPanel(chatIDOf(callback))
}

func (b *Bot) sendAdminPanel(chatID int64) {
	pending := b.PaymentService.Pending()
	users, err := b.StatsService.GetAll()
	if err != nil {
		log.Printf("Ошибка чтения статистики: %v", err)
		b.sendMessage(chatID, msgSomethingWrong)
		return
	}

	text := fmt.Sprintf("🛠 Панель администратора\n\n💰 Платежей в ожидании: %d\n👥 Учеников: %d",
		len(pending), len(users))

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = createAdminPanelKeyboard()
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Ошибка отправки панели администратора: %v", err)
	}
}

func (b *Bot) handleAdminPayments(callback *tgbotapi.CallbackQuery) {
	if !b.isAdmin(callback.From.ID) {
		return
	}
	chatID := chatIDOf(callback)

	pending := b.PaymentService.Pending()
	if len(pending) == 0 {
		b.sendMessage(chatID, "💰 Ожидающих платежей нет")
		return
	}

	// Каждый платёж отдельным сообщением со своими кнопками.
	for _, payment := range pending {
		text := fmt.Sprintf("💰 %s\n%s (%d)\n%s, %d занятий — %d ₽, %s\nСтатус: %s",
			payment.ID, payment.UserName, payment.UserID,
			subTypeLabel(payment.SubscriptionType), payment.Lessons,
			payment.Amount, methodLabel(payment.Method), statusLabel(payment.Status))

		msg := tgbotapi.NewMessage(chatID, text)
		msg.ReplyMarkup = createAdminPaymentKeyboard(payment.ID)
		if _, err := b.api.Send(msg); err != nil {
			log.Printf("Ошибка отправки платежа %s: %v", payment.ID, err)
		}
	}
}

func (b *Bot) handleAdminUsers(callback *tgbotapi.CallbackQuery) {
	if !b.isAdmin(callback.From.ID) {
		return
	}
	chatID := chatIDOf(callback)

	users, err := b.StatsService.GetAll()
	if err != nil {
		log.Printf("Ошибка чтения списка учеников: %v", err)
		b.sendMessage(chatID, msgSomethingWrong)
		return
	}
	if len(users) == 0 {
		b.sendMessage(chatID, "👥 Список учеников пуст")
		return
	}

	msg := tgbotapi.NewMessage(chatID, "👥 Выберите ученика:")
	msg.ReplyMarkup = createUsersKeyboard(users)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Ошибка отправки списка учеников: %v", err)
	}
}

func (b *Bot) handleAdminUser(callback *tgbotapi.CallbackQuery, userID int64) {
	if !b.isAdmin(callback.From.ID) {
		return
	}
	chatID := chatIDOf(callback)

	st, err := b.StatsService.Get(userID)
	if err != nil {
		log.Printf("Ошибка чтения статистики %d: %v", userID, err)
		b.sendMessage(chatID, msgSomethingWrong)
		return
	}
	if st == nil {
		b.sendMessage(chatID, "Ученик не найден")
		return
	}

	sub, err := b.SubscriptionService.Get(userID)
	if err != nil {
		log.Printf("Ошибка чтения абонемента %d: %v", userID, err)
		b.sendMessage(chatID, msgSomethingWrong)
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "👤 %s (%d)\n\n", st.Name, userID)
	fmt.Fprintf(&sb, "Тренировок: %d, посещено: %d, пропущено: %d\n", st.TotalTrainings, st.Attended, st.Missed)
	fmt.Fprintf(&sb, "%s\n", formatSubscription(sub))
	fmt.Fprintf(&sb, "Активность: %s", st.LastActivity.Format("02.01.2006 15:04"))

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ReplyMarkup = createAdminUserKeyboard(userID)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Ошибка отправки карточки ученика: %v", err)
	}
}

func (b *Bot) handleAdminAddSubscription(callback *tgbotapi.CallbackQuery, userID int64) {
	if !b.isAdmin(callback.From.ID) {
		return
	}

	msg := tgbotapi.NewMessage(chatIDOf(callback), fmt.Sprintf("Какой абонемент выдать ученику %d?", userID))
	msg.ReplyMarkup = createGrantKeyboard(userID)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Ошибка отправки меню выдачи: %v", err)
	}
}

// handleAdminConfirmAddSubscription — ручная выдача в обход очереди платежей.
// Старый абонемент уходит в историю и затирается новым.
func (b *Bot) handleAdminConfirmAddSubscription(callback *tgbotapi.CallbackQuery, subType models.SubscriptionType, userID int64, discount bool) {
	if !b.isAdmin(callback.From.ID) {
		return
	}
	chatID := chatIDOf(callback)

	name := ""
	if st, err := b.StatsService.Get(userID); err == nil && st != nil {
		name = st.Name
	}

	prior, err := b.SubscriptionService.Get(userID)
	if err != nil {
		log.Printf("Ошибка чтения абонемента %d: %v", userID, err)
		b.sendMessage(chatID, msgSomethingWrong)
		return
	}
	if prior != nil {
		if err := b.StatsService.AppendSubscriptionSnapshot(userID, name, prior); err != nil {
			log.Printf("Ошибка записи истории абонементов %d: %v", userID, err)
		}
	}

	lessons, cost := payment_service.PriceFor(subType, discount)
	sub := &models.Subscription{
		Type:      subType,
		Lessons:   lessons,
		Cost:      cost,
		StartDate: time.Now(),
	}
	if err := b.SubscriptionService.Replace(userID, sub); err != nil {
		log.Printf("Ошибка выдачи абонемента %d: %v", userID, err)
		b.sendMessage(chatID, msgSomethingWrong)
		return
	}

	b.sendMessage(chatID, fmt.Sprintf("✅ Выдан абонемент: %s, %d занятий, %d ₽ (ученик %d)",
		subTypeLabel(subType), lessons, cost, userID))
	b.sendPrivate(userID, fmt.Sprintf("🎫 Вам выдан абонемент: %s, %d занятий. Хорошей тренировки! 💪",
		subTypeLabel(subType), lessons))
}

func (b *Bot) handleAdminWipeStats(callback *tgbotapi.CallbackQuery, userID int64) {
	if !b.isAdmin(callback.From.ID) {
		return
	}
	chatID := chatIDOf(callback)

	if err := b.StatsService.Wipe(userID); err != nil {
		log.Printf("Ошибка сброса статистики %d: %v", userID, err)
		b.sendMessage(chatID, msgSomethingWrong)
		return
	}
	b.sendMessage(chatID, fmt.Sprintf("🗑 Статистика ученика %d сброшена", userID))
}

func (b *Bot) handleAdminDeleteSubscriptionCallback(callback *tgbotapi.CallbackQuery, userID int64) {
	if !b.isAdmin(callback.From.ID) {
		return
	}
	chatID := chatIDOf(callback)

	if err := b.SubscriptionService.Delete(userID); err != nil {
		log.Printf("Ошибка удаления абонемента %d: %v", userID, err)
		b.sendMessage(chatID, msgSomethingWrong)
		return
	}
	b.sendMessage(chatID, fmt.Sprintf("❌ Абонемент ученика %d удалён", userID))
}

// /deletesub <id> — то же самое текстовой командой.
func (b *Bot) handleDeleteSubscription(message *tgbotapi.Message, args string) {
	if !b.isAdmin(message.From.ID) {
		b.sendMessage(message.Chat.ID, msgAdminsOnly)
		return
	}

	userID, err := strconv.ParseInt(strings.TrimSpace(args), 10, 64)
	if err != nil {
		b.sendMessage(message.Chat.ID, "Использование: /deletesub <id>")
		return
	}

	if err := b.SubscriptionService.Delete(userID); err != nil {
		log.Printf("Ошибка удаления абонемента %d: %v", userID, err)
		b.sendMessage(message.Chat.ID, msgSomethingWrong)
		return
	}
	b.sendMessage(message.Chat.ID, fmt.Sprintf("❌ Абонемент ученика %d удалён", userID))
}

// /msg <id> <text> — отправка сообщения от имени бота.
func (b *Bot) handleAdminMessage(message *tgbotapi.Message, args string) {
	if !b.isAdmin(message.From.ID) {
		b.sendMessage(message.Chat.ID, msgAdminsOnly)
		return
	}

	idPart, text, _ := strings.Cut(args, " ")
	targetID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || strings.TrimSpace(text) == "" {
		b.sendMessage(message.Chat.ID, "Использование: /msg <id> <текст>")
		return
	}

	b.sendMessage(targetID, text)
	b.sendMessage(message.Chat.ID, "✉️ Отправлено")
}

func (b *Bot) handleChatID(message *tgbotapi.Message) {
	if !b.isAdmin(message.From.ID) {
		b.sendMessage(message.Chat.ID, msgAdminsOnly)
		return
	}
	b.sendMessage(message.Chat.ID, fmt.Sprintf("ID этого чата: %d", message.Chat.ID))
}

func (b *Bot) handlePollChats(message *tgbotapi.Message) {
	if !b.isAdmin(message.From.ID) {
		b.sendMessage(message.Chat.ID, msgAdminsOnly)
		return
	}

	date := b.PollService.TodayKey()
	chats := b.PollService.ChatsWithPoll(date)
	if len(chats) == 0 {
		b.sendMessage(message.Chat.ID, "Сегодня опрос ещё нигде не публиковался")
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Чаты с опросом на %s:\n", date)
	for _, chatID := range chats {
		fmt.Fprintf(&sb, "• %d\n", chatID)
	}
	b.sendMessage(message.Chat.ID, sb.String())
}

func statusLabel(status models.PaymentStatus) string {
	if status == models.PaymentWaitingAdmin {
		return "ждёт подтверждения"
	}
	return "создан"
}
