package bot

import (
	"fmt"
	"log"
	"strings"

	"training-poll-bot/internal/models"
	"training-poll-bot/internal/models/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handlePollCommand публикует (или обновляет) сообщение опроса в чате.
func (b *Bot) handlePollCommand(message *tgbotapi.Message) {
	b.updatePollMessage(message.Chat.ID)
}

func (b *Bot) handleResponseCommand(message *tgbotapi.Message, response models.ResponseType) {
	b.applyResponse(message.Chat.ID, message.From, response)
}

func (b *Bot) handlePollCallback(callback *tgbotapi.CallbackQuery, response models.ResponseType) {
	b.applyResponse(chatIDOf(callback), callback.From, response)
}

func (b *Bot) handleCancelCommand(message *tgbotapi.Message) {
	b.applyCancel(message.Chat.ID, message.From)
}

func (b *Bot) handleCancelCallback(callback *tgbotapi.CallbackQuery) {
	b.applyCancel(chatIDOf(callback), callback.From)
}

func (b *Bot) applyResponse(chatID int64, from *tgbotapi.User, response models.ResponseType) {
	name := displayName(from)

	result, err := b.PollService.Respond(from.ID, name, response)
	if err != nil {
		log.Printf("Ошибка обработки ответа %s от %d: %v", response, from.ID, err)
		b.sendPrivate(from.ID, msgSomethingWrong)
		return
	}

	if result.Duplicate {
		b.sendPrivate(from.ID, "Вы уже отмечены этим ответом 👌")
		return
	}

	b.updatePollMessage(chatID)
	b.sendPrivate(from.ID, b.responseFollowUp(from.ID, response, result))
}

func (b *Bot) applyCancel(chatID int64, from *tgbotapi.User) {
	name := displayName(from)

	result, err := b.PollService.Cancel(from.ID, name)
	if err != nil {
		log.Printf("Ошибка отмены записи от %d: %v", from.ID, err)
		b.sendPrivate(from.ID, msgSomethingWrong)
		return
	}

	if !result.Removed {
		b.sendPrivate(from.ID, "Вы и не были записаны на сегодня 🤷")
		return
	}

	b.updatePollMessage(chatID)

	text := "🚫 Запись на сегодня отменена"
	if result.Restored {
		text += "\n" + msgLessonRestored
	}
	b.sendPrivate(from.ID, text)
}

// responseFollowUp — личное сообщение после отметки: для "приду" — статус
// абонемента, для остальных — короткое подтверждение.
func (b *Bot) responseFollowUp(userID int64, response models.ResponseType, result *models.RespondResult) string {
	switch response {
	case models.ResponseYes:
		text := "✅ Вы записаны на тренировку!"
		if result.Credit != nil && !result.Credit.Valid {
			return text + "\n⚠️ " + result.Credit.Message
		}
		return text + "\n" + b.subscriptionSummary(userID)
	case models.ResponseNo:
		text := "❌ Отметили, что вы не придёте"
		if result.Restored {
			text += "\n" + msgLessonRestored
		}
		return text
	default:
		text := "🤔 Отметили как \"возможно\""
		if result.Restored {
			text += "\n" + msgLessonRestored
		}
		return text
	}
}

// updatePollMessage редактирует сообщение опроса на месте; если не вышло —
// создаёт новое и по возможности удаляет старое.
func (b *Bot) updatePollMessage(chatID int64) {
	date := b.PollService.TodayKey()
	text := renderPoll(date, b.PollService.Day(date))

	oldID, tracked := b.PollService.MessageRef(chatID, date)
	if tracked {
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, oldID, text, createPollKeyboard())
		sent, err := b.api.Send(edit)
		if err == nil && sent.MessageID == oldID {
			return
		}
		if err != nil {
			log.Printf("Не удалось отредактировать опрос в чате %d: %v", chatID, err)
		}

		newID, ok := b.sendPollMessage(chatID, text)
		if !ok {
			return
		}
		b.PollService.SetMessageRef(chatID, date, newID)

		// Старое сообщение удаляем по возможности; дубликат не фатален.
		if _, err := b.api.Request(tgbotapi.NewDeleteMessage(chatID, oldID)); err != nil {
			log.Printf("Не удалось удалить старое сообщение опроса %d в чате %d: %v", oldID, chatID, err)
		}
		return
	}

	newID, ok := b.sendPollMessage(chatID, text)
	if !ok {
		return
	}
	b.PollService.SetMessageRef(chatID, date, newID)
}

func (b *Bot) sendPollMessage(chatID int64, text string) (int, bool) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = createPollKeyboard()
	sent, err := b.api.Send(msg)
	if err != nil {
		log.Printf("Не удалось отправить опрос в чат %d: %v", chatID, err)
		return 0, false
	}
	return sent.MessageID, true
}

// renderPoll строит текст опроса: шапка с параметрами тренировки и три
// нумерованные секции ответов.
func renderPoll(date string, day models.PollDay) string {
	training := config.AppConfig.Training

	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 Кто придёт на тренировку %s?\n", date)
	fmt.Fprintf(&sb, "🏋️ %s\n🕗 %s, 📍 %s\n", training.Kind, training.Time, training.Location)

	if day.Empty() {
		sb.WriteString("\nПока никто не записался 😔")
		return sb.String()
	}

	renderSection(&sb, "✅ Придут", day.Yes)
	renderSection(&sb, "🤔 Возможно", day.Maybe)
	renderSection(&sb, "❌ Не придут", day.No)

	return sb.String()
}

func renderSection(sb *strings.Builder, title string, names []string) {
	fmt.Fprintf(sb, "\n%s (%d):\n", title, len(names))
	for i, name := range names {
		fmt.Fprintf(sb, "%d. %s\n", i+1, name)
	}
}

// subscriptionSummary — короткий статус абонемента для лички.
func (b *Bot) subscriptionSummary(userID int64) string {
	sub, err := b.SubscriptionService.Get(userID)
	if err != nil {
		log.Printf("Ошибка чтения абонемента %d: %v", userID, err)
		return msgSomethingWrong
	}
	return formatSubscription(sub)
}

func formatSubscription(sub *models.Subscription) string {
	if sub == nil {
		return "🎫 Абонемента нет. Оформить: /купить"
	}

	switch sub.Type {
	case models.SubscriptionMonthly:
		return fmt.Sprintf("🎫 Месячный абонемент: осталось %d занятий, действует до %s",
			sub.Lessons, sub.ExpiresAt().Format("02.01.2006"))
	default:
		if sub.Lessons > 0 {
			return "🎫 Разовое занятие: не использовано"
		}
		return "🎫 Разовое занятие: использовано"
	}
}
